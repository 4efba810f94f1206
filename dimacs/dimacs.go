// Package dimacs translates between the DIMACS CNF text format and
// the cdcl package's Formula type. It has no solving logic of its own
// — it is the straightforward text↔formula translator the core
// decision procedure treats as an external collaborator.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jrnoble/cdcl/cdcl"
)

// Parse reads text in the DIMACS CNF format and builds a *cdcl.Formula.
//
// The problem line (starting with 'p') is recognized and skipped but
// never consulted: its variable and clause counts are not trusted,
// since a formula's shape is fully determined by the clauses that
// actually follow.
//
// For convenience, a few non-standard variations are accepted, as in
// the wild:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not
//     just in the preamble.
//   - The problem line may be missing, repeated, or appear after
//     clauses.
//   - A trailer after a line containing a lone '%' is ignored.
func Parse(r io.Reader) (*cdcl.Formula, error) {
	var clauseInts [][]int
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' || line[0] == 'p' {
			continue
		}
		if line == "%" {
			break
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid token %q: %w", field, err)
			}
			if n == 0 {
				clauseInts = append(clauseInts, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauseInts = append(clauseInts, clause)
	}

	return buildFormula(clauseInts), nil
}

func buildFormula(clauseInts [][]int) *cdcl.Formula {
	clauses := make([][]cdcl.Literal, len(clauseInts))
	for i, cls := range clauseInts {
		lits := make([]cdcl.Literal, len(cls))
		for j, n := range cls {
			lits[j] = cdcl.LitFromInt(n)
		}
		clauses[i] = lits
	}
	return cdcl.NewFormula(clauses)
}

// Write renders f back to DIMACS CNF text, including a problem line.
// It is the inverse of Parse up to comment loss, line layout, and the
// problem line, whose counts Write recomputes from f; clause and
// literal order are kept, and Write always emits one clause per line.
func Write(w io.Writer, f *cdcl.Formula) error {
	clauses := f.Clauses()
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.NumVars(), len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		parts := make([]string, 0, c.Len()+1)
		for _, l := range c.Lits() {
			parts = append(parts, strconv.Itoa(l.Int()))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
