// Package cdcl implements a conflict-driven clause learning (CDCL)
// decision procedure for Boolean satisfiability over CNF formulae.
//
// The package owns the search loop: the trail of assignments, the
// two-watched-literal propagation engine, conflict analysis by
// resolution up to the first unique implication point (1-UIP),
// non-chronological backjumping, and learnt-clause management. It
// does not know how to parse DIMACS text or print a result; callers
// build a *Formula and get back a Result.
package cdcl

import "fmt"

// A Literal is a variable together with a polarity. Variables are
// positive, caller-supplied integers (DIMACS convention: 1-indexed,
// but any nonzero positive int works). Negation flips only the
// polarity.
//
// Literal is value-typed, comparable, and hashable, so it can be used
// directly as a map key.
type Literal struct {
	variable int
	negated  bool
}

// NewLiteral builds a Literal for v with the given polarity. v must be
// a positive integer; NewLiteral panics otherwise, since a zero or
// negative variable number is always a caller bug (DIMACS's "0" is a
// clause terminator, never a literal).
func NewLiteral(v int, negated bool) Literal {
	if v <= 0 {
		panic(fmt.Sprintf("cdcl: invalid variable %d", v))
	}
	return Literal{variable: v, negated: negated}
}

// LitFromInt builds a Literal from a signed DIMACS-style integer: a
// negative n denotes ¬|n|, a positive n denotes n. n must be nonzero.
func LitFromInt(n int) Literal {
	if n == 0 {
		panic("cdcl: literal 0 is not valid (0 terminates a DIMACS clause)")
	}
	if n < 0 {
		return Literal{variable: -n, negated: true}
	}
	return Literal{variable: n, negated: false}
}

// Var returns the literal's variable.
func (l Literal) Var() int { return l.variable }

// Negated reports whether the literal is the negation of its variable.
func (l Literal) Negated() bool { return l.negated }

// Not returns the negation of l.
func (l Literal) Not() Literal {
	return Literal{variable: l.variable, negated: !l.negated}
}

// Int renders the literal in DIMACS signed-integer form.
func (l Literal) Int() int {
	if l.negated {
		return -l.variable
	}
	return l.variable
}

func (l Literal) String() string {
	if l.negated {
		return fmt.Sprintf("¬%d", l.variable)
	}
	return fmt.Sprintf("%d", l.variable)
}
