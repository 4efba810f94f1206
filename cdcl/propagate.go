package cdcl

// Propagate runs two-watched-literal unit propagation to a fixed
// point. worklist holds literals that have just been assigned true;
// propagation consumes it and may grow it with further implications.
//
// It returns (true, nil, n) once no further propagation is possible,
// with n the number of new assignments made by implication, or
// (false, c, n) where c is a clause that is falsified under the
// current assignment. On conflict, propagation stops immediately —
// the remaining worklist and any not-yet-examined watchers are left
// as is, since the driver is about to analyze the conflict and rewind
// the trail.
func Propagate(a *Assignments, w *WatchIndex, worklist []Literal) (ok bool, conflict *Clause, implied int) {
	for len(worklist) > 0 {
		lit := worklist[0]
		worklist = worklist[1:]

		neg := lit.Not()
		for _, c := range w.Watchers(neg) {
			if replaced := findReplacementWatch(a, w, c, neg); replaced {
				continue
			}

			if c.Unit() {
				// Its sole watched literal is neg, now false.
				return false, c, implied
			}

			other := c.Other(neg)
			value, assigned := a.Value(other)
			switch {
			case !assigned:
				a.Assign(other, c)
				worklist = append(worklist, other)
				implied++
			case value:
				// Already satisfied by the other watch.
			default:
				return false, c, implied
			}
		}
	}
	return true, nil, implied
}

// findReplacementWatch looks for a literal in c, other than its two
// watched literals, that is not assigned false, and moves c's watch
// from falseWatch to it. It reports whether a replacement was found.
func findReplacementWatch(a *Assignments, w *WatchIndex, c *Clause, falseWatch Literal) bool {
	other := c.Other(falseWatch)
	for _, m := range c.Lits() {
		if m == falseWatch || m == other {
			continue
		}
		if value, assigned := a.Value(m); assigned && !value {
			continue // m is false, not a valid replacement
		}
		w.move(c, falseWatch, m)
		return true
	}
	return false
}
