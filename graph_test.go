package sid

import "testing"

func TestNewFactorGraph(t *testing.T) {
	// (x1 ∨ ¬x2) ∧ (x2 ∨ x3)
	fg := NewFactorGraph([][]int{{1, -2}, {2, 3}})

	if got, want := len(fg.Variables), 3; got != want {
		t.Fatalf("len(Variables) = %d, want %d", got, want)
	}
	if got, want := len(fg.Clauses), 2; got != want {
		t.Fatalf("len(Clauses) = %d, want %d", got, want)
	}
	if got, want := len(fg.Edges), 4; got != want {
		t.Fatalf("len(Edges) = %d, want %d", got, want)
	}
	if got, want := fg.UnassignedCount(), 3; got != want {
		t.Fatalf("UnassignedCount() = %d, want %d", got, want)
	}

	// Variable 0 (x1) should have exactly one positive edge into clause 0.
	v0 := fg.Variables[0]
	if len(v0.Edges) != 1 {
		t.Fatalf("x1 has %d edges, want 1", len(v0.Edges))
	}
	e := fg.Edges[v0.Edges[0]]
	if e.Clause != 0 || !e.Type {
		t.Fatalf("x1's edge = %+v, want clause 0, positive", e)
	}

	// Variable 1 (x2) appears negated in clause 0 and positive in clause 1.
	v1 := fg.Variables[1]
	if len(v1.Edges) != 2 {
		t.Fatalf("x2 has %d edges, want 2", len(v1.Edges))
	}
}

func TestFactorGraphNonContiguousVars(t *testing.T) {
	// Variables need not be contiguous or start at 1.
	fg := NewFactorGraph([][]int{{5, -9}, {9}})
	if got, want := len(fg.Variables), 2; got != want {
		t.Fatalf("len(Variables) = %d, want %d", got, want)
	}
	if got, want := len(fg.Clauses), 2; got != want {
		t.Fatalf("len(Clauses) = %d, want %d", got, want)
	}
}

func TestFactorGraphEnabledEnumeration(t *testing.T) {
	fg := NewFactorGraph([][]int{{1, 2}, {-1, 3}})
	if got, want := len(fg.EnabledClauses()), 2; got != want {
		t.Fatalf("EnabledClauses() len = %d, want %d", got, want)
	}
	fg.Clauses[0].Enabled = false
	if got, want := len(fg.EnabledClauses()), 1; got != want {
		t.Fatalf("EnabledClauses() len after disabling = %d, want %d", got, want)
	}
	if fg.IsSAT() {
		t.Fatal("IsSAT() = true, but clause 1 is still enabled")
	}
	fg.Clauses[1].Enabled = false
	if !fg.IsSAT() {
		t.Fatal("IsSAT() = false, but every clause is disabled")
	}
}

func TestFactorGraphUnassignedVariables(t *testing.T) {
	fg := NewFactorGraph([][]int{{1, 2, 3}})
	fg.Variables[1].Assignment = True
	fg.unassigned--

	got := fg.UnassignedVariables()
	if len(got) != 2 {
		t.Fatalf("UnassignedVariables() = %v, want 2 entries", got)
	}
	for _, id := range got {
		if id == 1 {
			t.Fatalf("UnassignedVariables() included assigned variable 1")
		}
	}
}
