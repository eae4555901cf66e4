package ordering

import (
	"testing"

	"github.com/wsw1206/satcore/internal/satcore"
)

func newState(t *testing.T, numVars int) *satcore.SATState {
	t.Helper()
	b := &satcore.Builder{}
	for i := 0; i < numVars; i++ {
		b.AddVariable()
	}
	return b.Build()
}

func TestNextDecision(t *testing.T) {
	s := newState(t, 3)
	vo := NewVarOrder(0.95)
	for i := 0; i < 3; i++ {
		vo.AddVar(0)
	}

	vo.BumpScore(s.IndexToVar(2))
	lit, ok := vo.NextDecision(s)
	if !ok || lit.ID() != 2 {
		t.Fatalf("NextDecision() = (%v, %t), want literal 2 after bumping variable 2", lit, ok)
	}

	// An instantiated variable must be skipped even if it has the highest
	// score.
	if conflict := s.Decide(s.IndexToLiteral(3)); conflict != nil {
		t.Fatalf("Decide(3) = %v, want no conflict", conflict.Literals())
	}
	vo.BumpScore(s.IndexToVar(3))
	vo.BumpScore(s.IndexToVar(3))
	lit, ok = vo.NextDecision(s)
	if !ok || lit.ID() != 1 {
		t.Fatalf("NextDecision() = (%v, %t), want literal 1", lit, ok)
	}

	// Reinserting a variable makes it a candidate again.
	vo.Reinsert(s.IndexToVar(2))
	lit, ok = vo.NextDecision(s)
	if !ok || lit.ID() != 2 {
		t.Fatalf("NextDecision() = (%v, %t), want literal 2 after Reinsert", lit, ok)
	}

	if lit, ok := vo.NextDecision(s); ok {
		t.Fatalf("NextDecision() = %v, want exhausted order", lit)
	}
}

func TestDecayKeepsRelativeOrder(t *testing.T) {
	s := newState(t, 2)
	vo := NewVarOrder(0.5)
	vo.AddVar(0)
	vo.AddVar(0)

	vo.BumpScore(s.IndexToVar(2))
	for i := 0; i < 400; i++ {
		vo.DecayScores()
	}
	vo.BumpScore(s.IndexToVar(2)) // the decays above already forced a rescale

	lit, ok := vo.NextDecision(s)
	if !ok || lit.ID() != 2 {
		t.Fatalf("NextDecision() = (%v, %t), want literal 2 to stay first across rescaling", lit, ok)
	}
}
