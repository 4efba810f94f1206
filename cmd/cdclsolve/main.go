// Command cdclsolve reads a DIMACS CNF file and reports satisfiability.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jrnoble/cdcl/cdcl"
	"github.com/jrnoble/cdcl/dimacs"
)

func main() {
	log.SetFlags(0)

	var seed int64
	var trace bool

	cmd := &cobra.Command{
		Use:   "cdclsolve [input.cnf]",
		Short: "A conflict-driven clause learning SAT solver",
		Long: `cdclsolve: a conflict-driven clause learning SAT solver.

cdclsolve reads a single problem specification in the DIMACS CNF
format from the given path and reports satisfiability. On success it
prints "Formula is SAT with assignments:" followed by the value of
every variable; on failure it prints "Formula is UNSAT."

The --seed flag fixes the pseudo-random source the branching
heuristic draws from, so that a run is reproducible. The --trace flag
writes a line to standard error for every decision, propagation step,
conflict, and backjump.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], seed, trace)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the branching heuristic's random source")
	cmd.Flags().BoolVar(&trace, "trace", false, "write a decision/propagation/conflict trace to stderr")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, seed int64, trace bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading input file as DIMACS CNF: %w", err)
	}
	defer f.Close()

	formula, err := dimacs.Parse(f)
	if err != nil {
		return fmt.Errorf("reading input file as DIMACS CNF: %w", err)
	}

	opts := cdcl.Options{Seed: seed}
	if trace {
		opts.Trace = os.Stderr
	}

	res := cdcl.Solve(formula, opts)
	if !res.SAT {
		fmt.Println("Formula is UNSAT.")
		return nil
	}

	fmt.Println("Formula is SAT with assignments:")
	vars := make([]int, 0, len(res.Assignment))
	for v := range res.Assignment {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	for _, v := range vars {
		fmt.Printf("%d = %v\n", v, res.Assignment[v])
	}
	return nil
}
