package cdcl

// WatchIndex is the bipartite relation between literals and the
// clauses currently watching them. It is built once from the initial
// formula (BuildWatchIndex) and extended every time a learnt clause is
// installed (watch).
//
// The two sides — lit→clauses here, and each Clause's own watch pair
// (clause.go) — must always agree: c is in byLit[l] iff l is one of
// c's watched literals. Apart from registering learnt clauses,
// Propagate is the only code that changes this relation after
// construction: it moves watches from one literal to another.
type WatchIndex struct {
	byLit map[Literal][]*Clause
}

// NewWatchIndex returns an empty watch index.
func NewWatchIndex() *WatchIndex {
	return &WatchIndex{byLit: make(map[Literal][]*Clause)}
}

// BuildWatchIndex constructs a watch index for every clause in f,
// using each clause's already-assigned watch pair (positions 0 and 1,
// or the sole literal of a unit clause — see NewClause).
func BuildWatchIndex(f *Formula) *WatchIndex {
	w := NewWatchIndex()
	for _, c := range f.Clauses() {
		w.watch(c)
	}
	return w
}

// watch registers c under its current watched literal(s).
func (w *WatchIndex) watch(c *Clause) {
	switch c.Len() {
	case 0:
		// The empty clause watches nothing; callers handle it as an
		// immediate conflict before it ever reaches propagation.
	case 1:
		wl := c.watch[0]
		w.byLit[wl] = append(w.byLit[wl], c)
	default:
		w.byLit[c.watch[0]] = append(w.byLit[c.watch[0]], c)
		w.byLit[c.watch[1]] = append(w.byLit[c.watch[1]], c)
	}
}

// Watchers returns a snapshot slice of the clauses currently watching
// l. Callers that mutate the index while iterating (Propagate does)
// must iterate this snapshot, not the live slice, since moving a
// watch mutates byLit[l] in place.
func (w *WatchIndex) Watchers(l Literal) []*Clause {
	src := w.byLit[l]
	out := make([]*Clause, len(src))
	copy(out, src)
	return out
}

// move transfers c's watch from old to replacement: old is removed
// from byLit[old], replacement is added to byLit[replacement], and
// c's own watch pair is updated to match.
func (w *WatchIndex) move(c *Clause, old, replacement Literal) {
	lst := w.byLit[old]
	for i, cc := range lst {
		if cc == c {
			lst[i] = lst[len(lst)-1]
			lst = lst[:len(lst)-1]
			break
		}
	}
	w.byLit[old] = lst
	c.setWatch(old, replacement)
	w.byLit[replacement] = append(w.byLit[replacement], c)
}
