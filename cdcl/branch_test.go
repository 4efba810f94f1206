package cdcl

import "testing"

func TestRandomBrancherDeterministicUnderSeed(t *testing.T) {
	f := NewFormula([][]Literal{
		{LitFromInt(1), LitFromInt(2), LitFromInt(3), LitFromInt(4), LitFromInt(5)},
	})

	run := func(seed int64) []int {
		a := NewAssignments()
		b := NewRandomBrancher(seed)
		var picks []int
		for {
			v, polarity, ok := b.Pick(f, a)
			if !ok {
				break
			}
			picks = append(picks, v)
			if a.DecisionLevel() == 0 {
				a.NewDecisionLevel()
			}
			a.Assign(NewLiteral(v, !polarity), nil)
		}
		return picks
	}

	a1 := run(42)
	a2 := run(42)
	if len(a1) != len(a2) {
		t.Fatalf("two runs with the same seed picked different counts: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatalf("two runs with the same seed diverged at pick %d: %d vs %d", i, a1[i], a2[i])
		}
	}
}

func TestRandomBrancherCoversAllUnassignedVariables(t *testing.T) {
	f := NewFormula([][]Literal{
		{LitFromInt(1), LitFromInt(2), LitFromInt(3)},
	})
	a := NewAssignments()
	b := NewRandomBrancher(1)

	seen := make(map[int]bool)
	for i := 0; i < 3; i++ {
		v, polarity, ok := b.Pick(f, a)
		if !ok {
			t.Fatalf("Pick reported no candidate with %d variables still unassigned", 3-i)
		}
		seen[v] = true
		a.Assign(NewLiteral(v, !polarity), nil)
	}
	for _, v := range []int{1, 2, 3} {
		if !seen[v] {
			t.Fatalf("variable %d was never picked across an exhaustive run", v)
		}
	}

	if _, _, ok := b.Pick(f, a); ok {
		t.Fatal("Pick should report ok=false once every variable is assigned")
	}
}

func TestRandomBrancherSkipsAssignedVariables(t *testing.T) {
	f := NewFormula([][]Literal{
		{LitFromInt(1), LitFromInt(2)},
	})
	a := NewAssignments()
	a.Assign(LitFromInt(1), nil)

	b := NewRandomBrancher(7)
	v, _, ok := b.Pick(f, a)
	if !ok || v != 2 {
		t.Fatalf("Pick() = (%d, ok=%v); want (2, true)", v, ok)
	}
}
