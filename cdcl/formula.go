package cdcl

import "sort"

// A Formula owns every clause the solver knows about: the original
// input clauses followed, in discovery order, by clauses learnt
// during search. Mutation is append-only — clauses are never removed,
// so a clause's index into Clauses stays stable for the lifetime of a
// solve, and every *Clause held as an antecedent (see
// Assignments.Antecedent) remains part of the formula.
type Formula struct {
	clauses []*Clause
	nOrig   int
	vars    map[int]struct{}
}

// NewFormula builds a Formula from a list of clauses, each given as a
// list of Literals. Each clause is deduplicated per NewClause.
// Tautological clauses are kept, not pruned.
func NewFormula(clauses [][]Literal) *Formula {
	f := &Formula{
		clauses: make([]*Clause, 0, len(clauses)),
		vars:    make(map[int]struct{}),
	}
	for _, lits := range clauses {
		c := NewClause(lits)
		f.clauses = append(f.clauses, c)
		for _, l := range c.Lits() {
			f.vars[l.Var()] = struct{}{}
		}
	}
	f.nOrig = len(f.clauses)
	return f
}

// Clauses returns every clause in the formula, original clauses first
// followed by learnt clauses in the order they were added. The caller
// must not modify the returned slice.
func (f *Formula) Clauses() []*Clause { return f.clauses }

// NumOriginal returns the number of clauses present at construction,
// before any learning.
func (f *Formula) NumOriginal() int { return f.nOrig }

// AddLearnt appends a learnt clause to the formula and returns its
// index, stable for the remainder of the search.
func (f *Formula) AddLearnt(c *Clause) int {
	f.clauses = append(f.clauses, c)
	return len(f.clauses) - 1
}

// Vars returns the sorted set of variables appearing in any clause of
// the original formula.
func (f *Formula) Vars() []int {
	out := make([]int, 0, len(f.vars))
	for v := range f.vars {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// NumVars returns the number of distinct variables in the formula.
func (f *Formula) NumVars() int { return len(f.vars) }
