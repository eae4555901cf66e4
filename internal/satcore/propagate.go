package satcore

// UnitResolution runs the unit-resolution fixpoint against the current
// propagation queue. On success it returns true once the queue has been
// drained of every clause with zero or one unresolved literals. The moment
// a clause is found with zero unresolved literals, it stops, synthesizes
// the asserting clause into s.ac via conflict analysis, and returns false.
//
// The queue is scanned back to front on every pass, so clauses can be
// removed from it mid-scan; a pass that resolves no clause at all ends the
// fixpoint.
func (s *SATState) UnitResolution() bool {
	more := true
	for more {
		more = false
		for i := len(s.q); i >= 1; i-- {
			c := s.q[i-1]
			c.subsumed = s.checkSubsumed(c)
			if c.subsumed {
				s.qErase(i - 1)
				continue
			}

			unresolved := 0
			pos := -1
			for j, id := range c.literals {
				if !s.literal(-id).implied {
					unresolved++
					pos = j
					if unresolved == 2 {
						break
					}
				}
			}

			switch unresolved {
			case 0:
				s.analyze(c.index - 1)
				return false
			case 1:
				lit := s.literal(c.literals[pos])
				lit.implied = true
				lit.locate = c.index - 1
				lit.v.level = len(s.ds) + 1
				s.il = append(s.il, lit.id)
				s.s = append(s.s, lit.id)
				c.subsumed = true
				s.qErase(i - 1)
				more = true
			}
		}
	}
	return true
}

func (s *SATState) qErase(i int) {
	s.q = append(s.q[:i], s.q[i+1:]...)
}
