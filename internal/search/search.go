// Package search implements a minimal CDCL search loop over the decision
// core: pick an uninstantiated variable, decide it, and on conflict learn
// the asserting clause after backtracking to its assertion level. It is the
// demonstration driver that turns the core into a runnable solver; none of
// its policy choices are part of the core's contract.
package search

import (
	"github.com/wsw1206/satcore/internal/ordering"
	"github.com/wsw1206/satcore/internal/satcore"
)

// Status is the outcome of a search.
type Status uint8

const (
	Unknown Status = iota
	Sat
	Unsat
)

func (st Status) String() string {
	switch st {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Solver drives a SATState to a verdict. A Solver owns its state for the
// duration of Solve and must not share it.
type Solver struct {
	state *satcore.SATState
	order *ordering.VarOrder

	// Search statistics.
	TotalDecisions  int64
	TotalConflicts  int64
	TotalBacktracks int64

	// Model found by the last successful Solve, one value per variable in
	// index order. Nil unless Solve returned Sat.
	Model []bool
}

// Options configures a Solver.
type Options struct {
	VariableDecay float64
}

var DefaultOptions = Options{
	VariableDecay: 0.95,
}

// NewSolver returns a solver over the given state. The state must be
// freshly constructed: no decision may have been made on it yet.
func NewSolver(state *satcore.SATState, ops Options) *Solver {
	order := ordering.NewVarOrder(ops.VariableDecay)
	for i := 1; i <= state.VarCount(); i++ {
		order.AddVar(float64(state.IndexToVar(i).Occurrences()))
	}
	return &Solver{state: state, order: order}
}

// NewDefaultSolver returns a solver configured with default options. This
// is equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver(state *satcore.SATState) *Solver {
	return NewSolver(state, DefaultOptions)
}

// Solve runs the search to completion and returns Sat or Unsat. On Sat,
// Model holds a satisfying assignment.
func (s *Solver) Solve() Status {
	if !s.state.UnitResolution() {
		return Unsat // conflict with no decision pending
	}

	for {
		lit, ok := s.order.NextDecision(s.state)
		if !ok {
			s.saveModel()
			return Sat
		}
		s.TotalDecisions++
		if status := s.resolveConflicts(s.state.Decide(lit)); status != Unknown {
			return status
		}
	}
}

// resolveConflicts learns asserting clauses until propagation reaches
// quiescence, backtracking to each clause's assertion level before adding
// it. It returns Unsat on a top-level conflict and Unknown otherwise.
func (s *Solver) resolveConflicts(conflict *satcore.Clause) Status {
	for conflict != nil {
		s.TotalConflicts++
		if conflict.Size() == 0 {
			return Unsat
		}

		for _, l := range s.state.ClauseLiterals(conflict) {
			s.order.BumpScore(l.Var())
		}
		s.order.DecayScores()

		for !s.state.AtAssertionLevel(conflict) {
			s.TotalBacktracks++
			for _, l := range s.state.UndoDecide() {
				s.order.Reinsert(l.Var())
			}
		}
		conflict = s.state.AssertClause(conflict)
	}
	return Unknown
}

func (s *Solver) saveModel() {
	s.Model = make([]bool, s.state.VarCount())
	for i := range s.Model {
		s.Model[i] = s.state.IndexToVar(i + 1).Positive().Implied()
	}
}
