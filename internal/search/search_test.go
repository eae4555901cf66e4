package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wsw1206/satcore/internal/satcore"
)

func newState(t *testing.T, numVars int, clauses [][]int) *satcore.SATState {
	t.Helper()
	b := &satcore.Builder{}
	for i := 0; i < numVars; i++ {
		b.AddVariable()
	}
	for _, c := range clauses {
		if err := b.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %s", c, err)
		}
	}
	return b.Build()
}

func TestSolve_forcedModel(t *testing.T) {
	s := NewDefaultSolver(newState(t, 3, [][]int{{1}, {-1, 2}, {-2, 3}}))

	if got := s.Solve(); got != Sat {
		t.Fatalf("Solve() = %s, want SAT", got)
	}
	if diff := cmp.Diff([]bool{true, true, true}, s.Model); diff != "" {
		t.Errorf("Model mismatch (-want +got):\n%s", diff)
	}
	if s.TotalDecisions != 0 {
		t.Errorf("TotalDecisions = %d, want 0: the model is forced by propagation alone", s.TotalDecisions)
	}
}

func TestSolve_topLevelConflict(t *testing.T) {
	s := NewDefaultSolver(newState(t, 1, [][]int{{1}, {-1}}))

	if got := s.Solve(); got != Unsat {
		t.Errorf("Solve() = %s, want UNSAT", got)
	}
}

func TestSolve_learnsToUnsat(t *testing.T) {
	// Three pigeons, two holes: unsatisfiable, but only after learning.
	s := NewDefaultSolver(newState(t, 6, [][]int{
		{1, 2}, {3, 4}, {5, 6},
		{-1, -3}, {-1, -5}, {-3, -5},
		{-2, -4}, {-2, -6}, {-4, -6},
	}))

	if got := s.Solve(); got != Unsat {
		t.Fatalf("Solve() = %s, want UNSAT", got)
	}
	if s.TotalConflicts == 0 {
		t.Error("TotalConflicts = 0, want at least one learned conflict")
	}
	if s.TotalBacktracks == 0 {
		t.Error("TotalBacktracks = 0, want at least one assertion-level backtrack")
	}
}

func TestSolve_modelSatisfiesInstance(t *testing.T) {
	clauses := [][]int{{-1, 2}, {-1, 3}, {-2, -3, 4}, {-4}}
	state := newState(t, 4, clauses)
	s := NewDefaultSolver(state)

	if got := s.Solve(); got != Sat {
		t.Fatalf("Solve() = %s, want SAT", got)
	}
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			if (l > 0) == s.Model[abs(l)-1] {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("clause %v not satisfied by model %v", c, s.Model)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Sat, "SAT"},
		{Unsat, "UNSAT"},
		{Unknown, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
