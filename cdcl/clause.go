package cdcl

// A Clause is an ordered, mutable sequence of Literals: a disjunction.
// Construction removes duplicate (variable, polarity) pairs but does
// not prune tautologies (a clause containing both x and ¬x is kept
// as-is).
//
// A clause with two or more literals starts out watching the literals
// at its first two positions (see WatchIndex); a unit clause's sole
// literal is its only watched literal. The watched pair is kept in the
// clause's own watch field, so moving a watch later does not reorder
// the literals. Callers must not rely on any other ordering of a
// clause's literals.
type Clause struct {
	lits []Literal

	// watch holds the current watched literals: both set for a clause
	// with 2+ literals, only watch[0] meaningful for a unit clause.
	watch [2]Literal
}

// NewClause builds a Clause from lits, deduplicating repeated
// (variable, polarity) pairs in first-occurrence order. It does not
// reject tautologies or empty input; an empty lits yields the empty
// clause, which callers treat as UNSAT-by-construction.
func NewClause(lits []Literal) *Clause {
	seen := make(map[Literal]struct{}, len(lits))
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	c := &Clause{lits: out}
	switch len(out) {
	case 0:
		// Empty clause: no watches.
	case 1:
		c.watch[0] = out[0]
	default:
		c.watch[0] = out[0]
		c.watch[1] = out[1]
	}
	return c
}

// Lits returns the clause's literals. The caller must not modify the
// returned slice.
func (c *Clause) Lits() []Literal { return c.lits }

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Unit reports whether the clause has exactly one literal.
func (c *Clause) Unit() bool { return len(c.lits) == 1 }

// Watched returns the clause's watched literals. For a unit clause,
// only the first element is meaningful.
func (c *Clause) Watched() [2]Literal { return c.watch }

// Other returns the clause's watched literal that is not l. l must be
// one of the clause's two watched literals in a non-unit clause.
func (c *Clause) Other(l Literal) Literal {
	if c.watch[0] == l {
		return c.watch[1]
	}
	return c.watch[0]
}

// SetWatches overrides the clause's watched pair directly. Both
// literals must already be among the clause's literals. Used when
// installing a learnt clause, which picks its watched pair by
// decision level rather than by position — ordinary
// clauses never need this, since NewClause's default positions 0/1
// already satisfy the watch invariant.
func (c *Clause) SetWatches(first, second Literal) {
	if c.Len() < 2 {
		panic("cdcl: SetWatches requires a clause with at least two literals")
	}
	c.watch = [2]Literal{first, second}
}

// setWatch replaces the watched literal equal to old with replacement.
func (c *Clause) setWatch(old, replacement Literal) {
	if c.watch[0] == old {
		c.watch[0] = replacement
		return
	}
	if c.watch[1] == old {
		c.watch[1] = replacement
		return
	}
	panic("cdcl: setWatch called with a literal that isn't currently watched")
}
