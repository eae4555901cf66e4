package satcore

// Clause is an unordered collection of literal ids. Clauses are arena
// allocated: an original clause lives for the whole lifetime of the
// SATState that owns it, and a learned clause is appended and never
// removed once asserted.
type Clause struct {
	index    int // 1-based: 1..ClauseCount() for original clauses, beyond that for learned ones
	literals []int
	subsumed bool
	mark     bool
}

// Index returns c's 1-based combined index.
func (c *Clause) Index() int { return c.index }

// Size returns the number of literals in c.
func (c *Clause) Size() int { return len(c.literals) }

// Literals returns c's literal ids, in the order they were added. Callers
// must not mutate the returned slice.
func (c *Clause) Literals() []int { return c.literals }

// Subsumed reports whether some literal of c is currently implied true, as
// of the last time c was examined by unit resolution.
func (c *Clause) Subsumed() bool { return c.subsumed }

// Marked reports whether c carries the caller-owned mark.
func (c *Clause) Marked() bool { return c.mark }

// Mark sets the caller-owned mark on c.
func (c *Clause) Mark() { c.mark = true }

// Unmark clears the caller-owned mark on c.
func (c *Clause) Unmark() { c.mark = false }

// checkSubsumed recomputes, from scratch, whether any literal of c is
// currently implied. It does not read or write c.subsumed.
func (s *SATState) checkSubsumed(c *Clause) bool {
	for _, id := range c.literals {
		if s.literal(id).implied {
			return true
		}
	}
	return false
}

// ClauseLiterals returns the actual *Literal for each of c's literal ids.
func (s *SATState) ClauseLiterals(c *Clause) []*Literal {
	lits := make([]*Literal, len(c.literals))
	for i, id := range c.literals {
		lits[i] = s.literal(id)
	}
	return lits
}
