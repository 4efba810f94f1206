package cdcl

import "testing"

func TestAssignmentsBasic(t *testing.T) {
	a := NewAssignments()
	if a.DecisionLevel() != 0 {
		t.Fatalf("initial DecisionLevel() = %d; want 0", a.DecisionLevel())
	}

	a.Assign(LitFromInt(1), nil)
	if !a.Assigned(1) {
		t.Fatal("variable 1 should be assigned")
	}
	v, ok := a.Value(LitFromInt(1))
	if !ok || !v {
		t.Fatalf("Value(1) = (%v, %v); want (true, true)", v, ok)
	}
	v, ok = a.Value(LitFromInt(-1))
	if !ok || v {
		t.Fatalf("Value(-1) = (%v, %v); want (false, true)", v, ok)
	}
	if a.Antecedent(1) != nil {
		t.Fatal("a decision's antecedent must be nil")
	}
}

func TestAssignmentsUnassignAbove(t *testing.T) {
	a := NewAssignments()
	a.Assign(LitFromInt(1), nil) // dl 0
	a.NewDecisionLevel()         // dl 1
	a.Assign(LitFromInt(2), nil)
	a.NewDecisionLevel() // dl 2
	a.Assign(LitFromInt(3), nil)
	c := NewClause([]Literal{LitFromInt(-3), LitFromInt(4)})
	a.Assign(LitFromInt(4), c)

	undone := a.UnassignAbove(1)
	if a.DecisionLevel() != 1 {
		t.Fatalf("DecisionLevel() after UnassignAbove(1) = %d; want 1", a.DecisionLevel())
	}
	if a.Assigned(3) || a.Assigned(4) {
		t.Fatal("variables assigned above level 1 should be unassigned")
	}
	if !a.Assigned(1) || !a.Assigned(2) {
		t.Fatal("variables assigned at or below level 1 should remain assigned")
	}
	if len(undone) != 2 {
		t.Fatalf("UnassignAbove returned %d literals; want 2", len(undone))
	}
}

func TestAssignDoubleAssignPanics(t *testing.T) {
	a := NewAssignments()
	a.Assign(LitFromInt(1), nil)
	defer func() {
		if recover() == nil {
			t.Fatal("want panic on double assignment")
		}
	}()
	a.Assign(LitFromInt(1), nil)
}

func TestSatisfies(t *testing.T) {
	f := NewFormula([][]Literal{
		{LitFromInt(1), LitFromInt(2)},
		{LitFromInt(-1), LitFromInt(2)},
	})
	a := NewAssignments()
	a.Assign(LitFromInt(2), nil)
	a.Assign(LitFromInt(-1), nil)
	if !a.Satisfies(f) {
		t.Fatal("assignment should satisfy both clauses via variable 2")
	}
}
