package satcore

// Decide sets lit true as a new decision, advances the decision level, and
// runs unit resolution to fixpoint. It returns the asserting clause
// produced by a conflict, or nil once propagation reaches quiescence.
//
// Precondition: lit must not already be implied.
func (s *SATState) Decide(lit *Literal) *Clause {
	lit.implied = true
	s.ds = append(s.ds, lit.id)
	s.s = append(s.s, lit.id)
	lit.v.level = len(s.ds) + 1

	if s.UnitResolution() {
		return nil
	}
	return s.ac
}

// UndoDecide pops the most recent decision together with every implication
// it produced, restoring each in turn, and returns to the previous decision
// level. It returns the literals that were unassigned, in the order they
// were unassigned: the decision first, then its implications from the
// most recently implied back, so a driver can make the corresponding variables
// eligible for branching again.
//
// Precondition: a decision must be pending (DecisionLevel() > 1).
func (s *SATState) UndoDecide() []*Literal {
	lit := s.literal(s.ds[len(s.ds)-1])
	restored := []*Literal{lit}

	s.restoreLiteral(lit)
	s.ds = s.ds[:len(s.ds)-1]
	s.s = s.s[:len(s.s)-1]

	restored = append(restored, s.undoUnitResolution()...)
	return restored
}

// undoUnitResolution pops every trail entry produced by propagation whose
// variable's level now exceeds the current decision level, restoring each.
func (s *SATState) undoUnitResolution() []*Literal {
	var restored []*Literal
	for len(s.il) > 0 {
		lit := s.literal(s.il[len(s.il)-1])
		if lit.v.level <= len(s.ds)+1 {
			break
		}
		s.restoreLiteral(lit)
		restored = append(restored, lit)
		s.il = s.il[:len(s.il)-1]
		s.s = s.s[:len(s.s)-1]
	}
	return restored
}

// restoreLiteral clears lit's implied flag and re-queues every clause
// mentioning its variable that is no longer subsumed as a result, so unit
// resolution can rediscover them. Original and learned mentions are walked
// as two separate passes, each re-testing subsumption before recomputing it,
// to mirror how a variable's occurrence lists are built incrementally as
// clauses are asserted.
func (s *SATState) restoreLiteral(lit *Literal) {
	lit.implied = false
	v := lit.v

	for _, c := range v.mentions {
		if c.subsumed {
			c.subsumed = s.checkSubsumed(c)
			if !c.subsumed {
				s.q = append(s.q, c)
			}
		}
	}
	for _, c := range v.mentionsLC {
		if c.subsumed {
			c.subsumed = s.checkSubsumed(c)
			if !c.subsumed {
				s.q = append(s.q, c)
			}
		}
	}
}

// AssertClause adds clause, a clause returned by Decide or a prior
// AssertClause, to the set of learned clauses and runs unit resolution. It
// returns the next asserting clause on conflict, or nil otherwise.
//
// Precondition: AtAssertionLevel(clause) must hold, and clause must not be
// empty (an empty clause signals top-level unsatisfiability and is never
// asserted).
func (s *SATState) AssertClause(c *Clause) *Clause {
	c.index = s.ClauseCount() + s.LearnedClauseCount() + 1
	for _, id := range c.literals {
		v := s.literal(id).v
		if len(v.mentionsLC) == 0 || v.mentionsLC[len(v.mentionsLC)-1] != c {
			v.mentionsLC = append(v.mentionsLC, c)
		}
	}
	s.lc = append(s.lc, c)
	s.q = append(s.q, c)

	if s.UnitResolution() {
		return nil
	}
	return s.ac
}

// AtAssertionLevel reports whether the state's current decision level
// equals c's assertion level: the second-highest decision level among c's
// literals. That is the level a driver must first backtrack to (via
// UndoDecide) before calling AssertClause(c).
func (s *SATState) AtAssertionLevel(c *Clause) bool {
	h1, h2 := 1, 1
	for _, id := range c.literals {
		level := s.literal(id).v.level
		if level >= h1 {
			h2 = h1
			h1 = level
		} else if level >= h2 {
			h2 = level
		}
	}
	return h2 == len(s.ds)+1
}
