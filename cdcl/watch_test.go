package cdcl

import "testing"

func TestBuildWatchIndexUnitAndLong(t *testing.T) {
	f := NewFormula([][]Literal{
		{LitFromInt(1)},
		{LitFromInt(-1), LitFromInt(2), LitFromInt(3)},
	})
	w := BuildWatchIndex(f)

	unit := f.Clauses()[0]
	if got := w.Watchers(LitFromInt(1)); len(got) != 1 || got[0] != unit {
		t.Fatalf("watchers of unit clause's literal = %v; want [unit clause]", got)
	}

	long := f.Clauses()[1]
	if got := w.Watchers(LitFromInt(-1)); len(got) != 1 || got[0] != long {
		t.Fatalf("watchers of long clause's first watch = %v", got)
	}
	if got := w.Watchers(LitFromInt(2)); len(got) != 1 || got[0] != long {
		t.Fatalf("watchers of long clause's second watch = %v", got)
	}
	if got := w.Watchers(LitFromInt(3)); len(got) != 0 {
		t.Fatalf("clause's third literal should not be watched initially: %v", got)
	}
}

func TestWatchIndexMoveKeepsBothSidesInSync(t *testing.T) {
	f := NewFormula([][]Literal{
		{LitFromInt(-1), LitFromInt(2), LitFromInt(3)},
	})
	w := BuildWatchIndex(f)
	c := f.Clauses()[0]

	w.move(c, LitFromInt(-1), LitFromInt(3))

	if got := w.Watchers(LitFromInt(-1)); len(got) != 0 {
		t.Fatalf("old watch list should be empty after move: %v", got)
	}
	if got := w.Watchers(LitFromInt(3)); len(got) != 1 || got[0] != c {
		t.Fatalf("new watch list should contain the clause: %v", got)
	}
	wl := c.Watched()
	if wl[0] != LitFromInt(3) && wl[1] != LitFromInt(3) {
		t.Fatalf("clause's own watch pair was not updated: %v", wl)
	}
}
