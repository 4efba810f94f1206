package cdcl

import "math/rand"

// A Brancher picks the next variable to branch on, along with the
// polarity to try first. It is consulted only when propagation has
// reached a fixed point with at least one unassigned variable
// remaining. Pick returns ok=false if every variable in f is already
// assigned.
//
// Brancher is the one place search strategy is pluggable without
// touching the propagator or conflict analyzer; this package ships
// only a uniform-random implementation, deliberately forgoing
// activity-based heuristics like VSIDS.
type Brancher interface {
	Pick(f *Formula, a *Assignments) (variable int, polarity bool, ok bool)
}

// RandomBrancher selects an unassigned variable and a polarity, both
// uniformly at random, backed by a caller-seeded source so runs are
// reproducible rather than depending on process-wide randomness.
type RandomBrancher struct {
	rng *rand.Rand
}

// NewRandomBrancher returns a RandomBrancher seeded with seed.
func NewRandomBrancher(seed int64) *RandomBrancher {
	return &RandomBrancher{rng: rand.New(rand.NewSource(seed))}
}

// Pick implements Brancher.
func (b *RandomBrancher) Pick(f *Formula, a *Assignments) (int, bool, bool) {
	var unassigned []int
	for _, v := range f.Vars() {
		if !a.Assigned(v) {
			unassigned = append(unassigned, v)
		}
	}
	if len(unassigned) == 0 {
		return 0, false, false
	}
	v := unassigned[b.rng.Intn(len(unassigned))]
	polarity := b.rng.Intn(2) == 1
	return v, polarity, true
}
