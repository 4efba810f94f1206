package cdcl

// An assignmentEntry records, for one variable, the value it was
// given, the clause that forced it (nil for a decision), and the
// decision level at which it was assigned.
type assignmentEntry struct {
	value      bool
	antecedent *Clause
	dl         int
}

// Assignments is the solver's trail: a mapping from variable to its
// current assignment, plus the chronological order assignments were
// made in (needed to find and unwind entries with dl > b on
// backjump) and the current decision level.
type Assignments struct {
	entries map[int]assignmentEntry
	order   []int // variables in assignment order
	dl      int
}

// NewAssignments returns an empty trail at decision level 0.
func NewAssignments() *Assignments {
	return &Assignments{entries: make(map[int]assignmentEntry)}
}

// DecisionLevel returns the current decision level.
func (a *Assignments) DecisionLevel() int { return a.dl }

// NewDecisionLevel increments and returns the current decision level.
// Called by the driver immediately before recording a decision.
func (a *Assignments) NewDecisionLevel() int {
	a.dl++
	return a.dl
}

// Assigned reports whether v currently has a value.
func (a *Assignments) Assigned(v int) bool {
	_, ok := a.entries[v]
	return ok
}

// Value returns the truth value of l under the current assignment and
// whether l's variable is assigned at all.
func (a *Assignments) Value(l Literal) (value bool, ok bool) {
	e, ok := a.entries[l.Var()]
	if !ok {
		return false, false
	}
	if l.Negated() {
		return !e.value, true
	}
	return e.value, true
}

// VarValue returns the raw (unnegated) value assigned to variable v.
// Precondition: v is assigned.
func (a *Assignments) VarValue(v int) bool {
	e, ok := a.entries[v]
	if !ok {
		panic("cdcl: VarValue on unassigned variable")
	}
	return e.value
}

// DecisionLevelOf returns the decision level at which v was assigned.
// Precondition: v is assigned.
func (a *Assignments) DecisionLevelOf(v int) int {
	e, ok := a.entries[v]
	if !ok {
		panic("cdcl: DecisionLevelOf on unassigned variable")
	}
	return e.dl
}

// Antecedent returns the clause that forced v's assignment, or nil if
// v was a decision. Precondition: v is assigned.
func (a *Assignments) Antecedent(v int) *Clause {
	e, ok := a.entries[v]
	if !ok {
		panic("cdcl: Antecedent on unassigned variable")
	}
	return e.antecedent
}

// Assign records that l is now true, with the given antecedent (nil
// for a decision), at the current decision level. Precondition: l's
// variable is currently unassigned.
func (a *Assignments) Assign(l Literal, antecedent *Clause) {
	v := l.Var()
	if a.Assigned(v) {
		panic("cdcl: Assign called on an already-assigned variable")
	}
	a.entries[v] = assignmentEntry{
		value:      !l.Negated(),
		antecedent: antecedent,
		dl:         a.dl,
	}
	a.order = append(a.order, v)
}

// UnassignAbove removes every assignment made at a decision level
// greater than b, and resets the current decision level to b. Used
// only by backjump. Returns the literals that were unassigned, most
// recently assigned first, so the caller can return them to an
// unassigned-variable pool.
func (a *Assignments) UnassignAbove(b int) []Literal {
	var undone []Literal
	i := len(a.order)
	for i > 0 {
		v := a.order[i-1]
		e := a.entries[v]
		if e.dl <= b {
			break
		}
		lit := Literal{variable: v, negated: !e.value}
		undone = append(undone, lit)
		delete(a.entries, v)
		i--
	}
	a.order = a.order[:i]
	a.dl = b
	return undone
}

// NumAssigned returns how many variables currently have a value.
func (a *Assignments) NumAssigned() int { return len(a.entries) }

// Satisfies reports whether every clause of f evaluates to true under
// the current assignment. Used for post-hoc verification of a SAT
// result. A clause counts as satisfied when at least one of its
// literals is assigned true; unassigned variables are not otherwise
// checked, so a partial assignment that already makes every clause
// true also satisfies f.
func (a *Assignments) Satisfies(f *Formula) bool {
	for _, c := range f.Clauses() {
		ok := false
		for _, l := range c.Lits() {
			v, assigned := a.Value(l)
			if assigned && v {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
