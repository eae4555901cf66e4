package satcore

// analyze implements 1-UIP conflict analysis. It is invoked by
// UnitResolution the instant a clause with zero unresolved literals is
// found; k0 is that clause's combined 0-based index. The result is stored
// in s.ac.
//
// If no decision is currently pending, the conflict can never be resolved
// above the start level: s.ac is left empty, signalling top-level
// unsatisfiability.
func (s *SATState) analyze(k0 int) {
	ac := &Clause{}

	if len(s.ds) > 0 {
		for i := range s.vars {
			s.vars[i].seen = s.vars[i].level <= 1
		}

		m := 0
		p := len(s.s) - 1
		clauseIdx := k0

		for {
			c := s.combinedClause(clauseIdx)
			for _, id := range c.literals {
				v := s.literal(id).v
				if v.seen {
					continue
				}
				v.seen = true
				if v.level < len(s.ds)+1 {
					ac.literals = append(ac.literals, id)
				} else {
					m++
				}
			}

			if p < 0 {
				break
			}
			lit := s.literal(s.s[p])
			for !lit.v.seen {
				p--
				if p < 0 {
					break
				}
				lit = s.literal(s.s[p])
			}
			if p < 0 {
				break
			}

			if m == 1 {
				ac.literals = append(ac.literals, -lit.id)
				break
			}

			clauseIdx = lit.locate
			m--
			p--
		}
	}

	s.ac = ac
}
