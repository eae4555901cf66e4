// Package satcore implements a CDCL decision core: a CNF knowledge base,
// the evolving partial assignment, and the unit-resolution and
// conflict-analysis machinery needed to drive a DPLL-style search. The
// package deliberately stops short of being a solver: it has no branching
// heuristic, restarts, clause deletion, or proof logging. The demonstration
// driver (internal/search and the root command) adds a branching order on
// top of it and none of the rest.
package satcore

import (
	"fmt"

	"github.com/wsw1206/satcore/internal/dimacs"
)

// SATState is the decision core's arena: every Var, Literal, and Clause it
// hands out is valid for the state's lifetime and is never reallocated or
// moved. A SATState is exclusively owned by its driver; nothing here is
// safe for concurrent use.
type SATState struct {
	vars  []Var
	plits []Literal
	nlits []Literal

	kb []*Clause // original clauses, input order; len(kb) == ClauseCount()
	lc []*Clause // learned clauses, assertion order

	ds []int // decision stack (literal ids)
	il []int // implication trail (literal ids)
	s  []int // merged trail (literal ids): an order-preserving merge of ds and il

	q  []*Clause // propagation queue
	ac *Clause   // asserting clause produced by the last conflict, if any
}

// NewSATState constructs a SATState from a DIMACS CNF file (optionally
// gzip-compressed, detected from a ".gz" suffix). It returns an error if
// the file cannot be opened or its header cannot be parsed.
//
// The returned state has not yet run unit resolution: a driver must call
// UnitResolution once before making its first decision, to resolve any
// unit clauses present in the input.
func NewSATState(path string) (*SATState, error) {
	inst, err := dimacs.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("satcore: %w", err)
	}
	return build(inst.NumVars, inst.Clauses), nil
}

// build assembles a SATState's arena from a variable count and a set of
// clauses given as signed literal ids, the same representation DIMACS and
// ad hoc in-memory test fixtures both use.
func build(numVars int, clauses [][]int) *SATState {
	s := &SATState{
		vars:  make([]Var, numVars),
		plits: make([]Literal, numVars),
		nlits: make([]Literal, numVars),
	}
	for i := 0; i < numVars; i++ {
		id := i + 1
		s.vars[i] = Var{id: id}
		s.plits[i] = Literal{id: id, v: &s.vars[i]}
		s.nlits[i] = Literal{id: -id, v: &s.vars[i]}
		s.vars[i].pos = &s.plits[i]
		s.vars[i].neg = &s.nlits[i]
	}

	s.kb = make([]*Clause, 0, len(clauses))
	s.q = make([]*Clause, 0, len(clauses))
	for i, lits := range clauses {
		c := &Clause{index: i + 1, literals: append([]int(nil), lits...)}
		s.kb = append(s.kb, c)
		s.q = append(s.q, c)
	}
	for _, c := range s.kb {
		for _, id := range c.literals {
			v := s.literal(id).v
			if len(v.mentions) == 0 || v.mentions[len(v.mentions)-1] != c {
				v.mentions = append(v.mentions, c)
			}
		}
	}

	return s
}

// Close releases any resources held by s. Parsing already closes the
// backing file once the instance is loaded, so Close is a no-op, kept for
// symmetry with constructing from a file; Go's garbage collector reclaims
// the rest of the arena once s becomes unreachable.
func (s *SATState) Close() error { return nil }

// VarCount returns the number of variables in the knowledge base (N).
func (s *SATState) VarCount() int { return len(s.vars) }

// ClauseCount returns the number of original clauses (M).
func (s *SATState) ClauseCount() int { return len(s.kb) }

// LearnedClauseCount returns the number of clauses learned so far.
func (s *SATState) LearnedClauseCount() int { return len(s.lc) }

// DecisionLevel returns the current decision level: 1 before any decision
// has been made, and |ds|+1 once decisions are pending.
func (s *SATState) DecisionLevel() int { return len(s.ds) + 1 }

// IndexToVar returns the variable with 1-based index i.
func (s *SATState) IndexToVar(i int) *Var { return &s.vars[i-1] }

// IndexToLiteral returns the literal with signed id. It returns nil for the
// invalid id 0.
func (s *SATState) IndexToLiteral(id int) *Literal {
	if id == 0 {
		return nil
	}
	return s.literal(id)
}

func (s *SATState) literal(id int) *Literal {
	if id > 0 {
		return &s.plits[id-1]
	}
	return &s.nlits[-id-1]
}

// IndexToClause returns the clause with 1-based combined index i, spanning
// original clauses (1..ClauseCount()) followed by learned ones.
func (s *SATState) IndexToClause(i int) *Clause {
	return s.combinedClause(i - 1)
}

func (s *SATState) combinedClause(k int) *Clause {
	if k < len(s.kb) {
		return s.kb[k]
	}
	return s.lc[k-len(s.kb)]
}

// TopDecision returns the most recently decided literal, or nil if no
// decision is currently pending. It lets a driver identify which variable
// is about to be unassigned before calling UndoDecide.
func (s *SATState) TopDecision() *Literal {
	if len(s.ds) == 0 {
		return nil
	}
	return s.literal(s.ds[len(s.ds)-1])
}

// AssertingClause returns the asserting clause produced by the last
// conflict, or nil if propagation last reached quiescence.
func (s *SATState) AssertingClause() *Clause { return s.ac }
