package main

import (
	"path/filepath"
	"testing"

	"github.com/wsw1206/satcore/internal/satcore"
	"github.com/wsw1206/satcore/internal/search"
	"github.com/wsw1206/satcore/parsers"
)

// TestSolve runs the demonstration driver over every testdata/*.cnf
// instance and checks its verdict against the instance's reference models,
// stored next to it in a ".cnf.models" file (one model per line, written
// with the instance's literals, pre-computed by enumeration). An instance
// with no reference models must come back UNSAT; any other instance must
// come back SAT with a model from the reference set.
func TestSolve(t *testing.T) {
	instances, err := filepath.Glob(filepath.Join("testdata", "*.cnf"))
	if err != nil {
		t.Fatalf("listing instances: %s", err)
	}
	if len(instances) == 0 {
		t.Fatal("no instances under testdata")
	}

	for _, path := range instances {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()

			want, err := parsers.ReadModels(path + ".models")
			if err != nil {
				t.Fatalf("reading models: %s", err)
			}
			b := &satcore.Builder{}
			if err := parsers.LoadDIMACS(path, b); err != nil {
				t.Fatalf("reading instance: %s", err)
			}
			state := b.Build()
			s := search.NewDefaultSolver(state)

			switch status := s.Solve(); {
			case len(want) == 0:
				if status != search.Unsat {
					t.Errorf("Solve() = %s, want UNSAT", status)
				}
			case status != search.Sat:
				t.Errorf("Solve() = %s, want SAT", status)
			case !containsModel(want, s.Model):
				t.Errorf("model %v is not one of the %d reference models", s.Model, len(want))
			}
		})
	}
}

// containsModel reports whether got appears among the reference models. A
// reference model may carry a trailing entry for its line's 0 terminator;
// only the first len(got) values are compared.
func containsModel(models [][]bool, got []bool) bool {
	for _, m := range models {
		if len(m) < len(got) {
			continue
		}
		match := true
		for i := range got {
			if m[i] != got[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
