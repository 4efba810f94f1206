package cdcl

import "sort"

// Stats reports purely informational counters about a solve; the set
// of fields may grow over time and callers should not depend on any
// particular field being the sole source of truth about solver
// behavior.
type Stats struct {
	Decisions     int64
	Propagations  int64
	Conflicts     int64
	LearntClauses int64
}

// Result is the outcome of a solve.
type Result struct {
	SAT bool
	// Assignment maps every variable in the formula to its truth
	// value. Only meaningful when SAT is true.
	Assignment map[int]bool
	Stats      Stats
}

// Solve decides whether f is satisfiable. On success it returns a
// total assignment of every variable appearing in f; on failure it
// reports UNSAT. opts configures the branching heuristic, its seed,
// and optional tracing; the zero Options is a valid, reproducible
// default.
func Solve(f *Formula, opts Options) Result {
	a := NewAssignments()
	w := BuildWatchIndex(f)
	brancher := opts.brancher()
	stats := Stats{}

	seeded, seedOK := seedUnitClauses(f, a)
	if !seedOK {
		return Result{SAT: false, Stats: stats}
	}

	propOK, _, implied := Propagate(a, w, seeded)
	stats.Propagations += int64(implied)
	opts.tracef("propagate at dl=%d: %d implied\n", a.DecisionLevel(), implied)
	if !propOK {
		return Result{SAT: false, Stats: stats}
	}

	for a.NumAssigned() < f.NumVars() {
		v, polarity, pickOK := brancher.Pick(f, a)
		if !pickOK {
			break // every variable assigned; loop condition will exit
		}
		a.NewDecisionLevel()
		lit := NewLiteral(v, !polarity)
		a.Assign(lit, nil)
		stats.Decisions++
		opts.tracef("decide %s at dl=%d\n", lit, a.DecisionLevel())

		pending := []Literal{lit}
		for {
			propOK, conflict, implied := Propagate(a, w, pending)
			stats.Propagations += int64(implied)
			opts.tracef("propagate at dl=%d: %d implied\n", a.DecisionLevel(), implied)
			if propOK {
				break
			}
			stats.Conflicts++
			opts.tracef("conflict in clause %v at dl=%d\n", conflict.Lits(), a.DecisionLevel())

			b, learnt, uip := Analyze(a, conflict)
			if b < 0 {
				return Result{SAT: false, Stats: stats}
			}
			installLearnt(f, a, w, learnt)
			stats.LearntClauses++
			opts.tracef("learnt %v, backjump to dl=%d\n", learnt.Lits(), b)

			a.UnassignAbove(b)
			a.Assign(uip, learnt)
			pending = []Literal{uip}
		}
	}

	return Result{
		SAT:        true,
		Assignment: totalAssignment(f, a),
		Stats:      stats,
	}
}

// seedUnitClauses assigns every unit clause in f's original clauses at
// decision level 0, with that clause as antecedent, deduplicating
// repeated variables. It returns the resulting worklist and false if
// an immediate contradiction (including a literally empty clause) is
// found.
func seedUnitClauses(f *Formula, a *Assignments) ([]Literal, bool) {
	var worklist []Literal
	for _, c := range f.Clauses()[:f.NumOriginal()] {
		if c.Len() == 0 {
			return nil, false
		}
		if !c.Unit() {
			continue
		}
		lit := c.Watched()[0]
		if value, assigned := a.Value(lit); assigned {
			if !value {
				return nil, false
			}
			continue
		}
		a.Assign(lit, c)
		worklist = append(worklist, lit)
	}
	return worklist, true
}

// installLearnt appends learnt to f and registers it in w, choosing
// its watched pair as the two literals with the highest decision
// level under the current (pre-backjump) assignment. A unit learnt
// clause keeps the single watch NewClause already gave it.
func installLearnt(f *Formula, a *Assignments, w *WatchIndex, learnt *Clause) {
	if learnt.Len() >= 2 {
		lits := append([]Literal(nil), learnt.Lits()...)
		sort.Slice(lits, func(i, j int) bool {
			return a.DecisionLevelOf(lits[i].Var()) > a.DecisionLevelOf(lits[j].Var())
		})
		learnt.SetWatches(lits[0], lits[1])
	}
	f.AddLearnt(learnt)
	w.watch(learnt)
}

// totalAssignment reads off the final value of every variable in f.
func totalAssignment(f *Formula, a *Assignments) map[int]bool {
	out := make(map[int]bool, f.NumVars())
	for _, v := range f.Vars() {
		if !a.Assigned(v) {
			panic("cdcl: Solve reported SAT with an unassigned variable (invariant violation)")
		}
		out[v] = a.VarValue(v)
	}
	return out
}
