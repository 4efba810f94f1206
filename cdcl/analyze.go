package cdcl

import "sort"

// Analyze performs conflict-driven resolution up to the first unique
// implication point (1-UIP), given a clause conflict that is
// falsified under the current assignment at the current decision
// level.
//
// It returns (-1, nil, Literal{}) if the current decision level is 0 —
// the conflict holds under forced (non-decision) assignments alone,
// so the formula is UNSAT. Otherwise it returns (b, learnt, asserting),
// the backjump level, a learnt clause that, once the trail is rewound
// to level b, is unit, and the one literal of that clause whose
// variable is unassigned after the rewind (every other literal is
// false).
func Analyze(a *Assignments, conflict *Clause) (backjumpLevel int, learnt *Clause, asserting Literal) {
	dl := a.DecisionLevel()
	if dl == 0 {
		return -1, nil, Literal{}
	}

	lits := make(map[Literal]struct{}, conflict.Len())
	for _, l := range conflict.Lits() {
		lits[l] = struct{}{}
	}

	var uip Literal
	for {
		atCurrent := literalsAtLevel(a, lits, dl)
		if len(atCurrent) <= 1 {
			uip = atCurrent[0]
			break
		}
		pick, ante, ok := pickImplied(a, atCurrent)
		if !ok {
			panic("cdcl: conflict analysis stalled at dl>0 with no implied literal left to resolve on (invariant violation)")
		}
		resolveInto(lits, pick, ante)
	}

	learntLits := make([]Literal, 0, len(lits))
	for l := range lits {
		learntLits = append(learntLits, l)
	}
	return backjumpLevelOf(a, learntLits), NewClause(learntLits), uip
}

// literalsAtLevel returns the literals of lits assigned at decision
// level dl.
func literalsAtLevel(a *Assignments, lits map[Literal]struct{}, dl int) []Literal {
	var out []Literal
	for l := range lits {
		if a.DecisionLevelOf(l.Var()) == dl {
			out = append(out, l)
		}
	}
	return out
}

// pickImplied finds a literal among candidates (all at the current
// decision level) whose variable was forced by propagation rather
// than decided, along with its antecedent.
func pickImplied(a *Assignments, candidates []Literal) (Literal, *Clause, bool) {
	for _, l := range candidates {
		if ante := a.Antecedent(l.Var()); ante != nil {
			return l, ante, true
		}
	}
	return Literal{}, nil, false
}

// resolveInto resolves lits (in place) against ante on pick's
// variable: pick is removed from lits, and every literal of ante
// sharing pick's variable (i.e. ¬pick) is skipped, with the rest
// unioned in. This is standard propositional resolution applied
// destructively to the accumulating set.
func resolveInto(lits map[Literal]struct{}, pick Literal, ante *Clause) {
	delete(lits, pick)
	for _, l := range ante.Lits() {
		if l.Var() == pick.Var() {
			continue
		}
		lits[l] = struct{}{}
	}
}

// backjumpLevelOf returns the second-largest decision level among the
// decision levels of lits, or 0 if lits spans only one decision level
// (a unit learnt clause).
func backjumpLevelOf(a *Assignments, lits []Literal) int {
	seen := make(map[int]struct{})
	for _, l := range lits {
		seen[a.DecisionLevelOf(l.Var())] = struct{}{}
	}
	levels := make([]int, 0, len(seen))
	for lv := range seen {
		levels = append(levels, lv)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	if len(levels) <= 1 {
		return 0
	}
	return levels[1]
}
