// Package ordering provides an activity-based variable order for drivers
// built on top of the decision core. The core itself has no branching
// heuristic; this package is the demonstration driver's answer to "which
// literal do I decide next".
package ordering

import (
	"github.com/rhartert/yagh"

	"github.com/wsw1206/satcore/internal/satcore"
)

// VarOrder maintains the order in which variables should be decided.
type VarOrder struct {
	// Binary heap to access the next variable with the highest score. The heap
	// breaks ties using the index of its elements which will correspond to the
	// order in which variables are declared with AddVar.
	order *yagh.IntMap[float64]

	scores     []float64 // in [0, 1e100)
	scoreInc   float64   // in (0, 1e100)
	scoreDecay float64   // in (0, 1]
}

// NewVarOrder returns a new initialized VarOrder.
func NewVarOrder(decay float64) *VarOrder {
	return &VarOrder{
		order:      yagh.New[float64](0),
		scoreInc:   1,
		scoreDecay: decay,
	}
}

// AddVar adds a new variable with the given initial score. Variables must
// be added in index order: the i'th call to AddVar registers the variable
// with 1-based index i.
func (vo *VarOrder) AddVar(initScore float64) {
	varID := len(vo.scores)

	vo.scores = append(vo.scores, initScore)

	vo.order.GrowBy(1)
	vo.order.Put(varID, -initScore)
}

// Reinsert adds variable v back to the set of candidates to be selected.
// This function must be called by the driver whenever v is being unassigned
// (e.g. when a backtrack occurs).
func (vo *VarOrder) Reinsert(v *satcore.Var) {
	id := v.ID() - 1
	vo.order.Put(id, -vo.scores[id])
}

// DecayScores slightly decreases the scores of the variables. This is used
// to give more importance to variables that have had their scores increased
// recently compared to variables that had their scores increased in the past.
func (vo *VarOrder) DecayScores() {
	vo.scoreInc /= vo.scoreDecay // decay activities by bumping increment
	if vo.scoreInc > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

// BumpScore increases the score of the given variable. Note that this
// operation might trigger a rescaling of all variables scores if the score
// of v exceeds a given threshold. The rescaling is done in a way that
// conserves the relative importance of each variable when compared to each
// other.
func (vo *VarOrder) BumpScore(v *satcore.Var) {
	id := v.ID() - 1
	newScore := vo.scores[id] + vo.scoreInc
	vo.scores[id] = newScore
	if vo.order.Contains(id) {
		vo.order.Put(id, -newScore)
	}
	if newScore > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

// NextDecision returns the next uninstantiated literal to be decided true,
// or false if every variable is already instantiated. Decisions are always
// positive literals: the core's Decide takes a fully-formed literal, so
// there is no saved phase to restore.
func (vo *VarOrder) NextDecision(s *satcore.SATState) (*satcore.Literal, bool) {
	for {
		next, ok := vo.order.Pop()
		if !ok {
			return nil, false
		}
		v := s.IndexToVar(next.Elem + 1)
		if v.Instantiated() {
			continue // already assigned
		}
		return v.Positive(), true
	}
}

func (vo *VarOrder) rescaleScoresAndIncrement() {
	vo.scoreInc *= 1e-100 // important to keep proportions
	for v, s := range vo.scores {
		newScore := s * 1e-100
		vo.scores[v] = newScore
		if vo.order.Contains(v) {
			vo.order.Put(v, -newScore)
		}
	}
}
