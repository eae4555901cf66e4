// Package parsers bridges the decision core to an external DIMACS reader.
// It covers the two strictly formatted inputs the repository deals with:
// well-formed CNF instances and reference model files. Noise-tolerant
// instance parsing lives in the core's own loader instead.
package parsers

import (
	"fmt"

	"github.com/rhartert/dimacs"

	cnf "github.com/wsw1206/satcore/internal/dimacs"
)

// SATBuilder receives the variables and clauses of an instance as it is
// read. Clauses arrive as signed DIMACS literal ids.
type SATBuilder interface {
	AddVariable() int
	AddClause(lits []int) error
}

// LoadDIMACS reads a strict DIMACS CNF file (gzip-decompressed when path
// ends in ".gz") and feeds its formula to sb.
func LoadDIMACS(path string, sb SATBuilder) error {
	r, err := cnf.OpenFile(path)
	if err != nil {
		return fmt.Errorf("parsers: %w", err)
	}
	defer r.Close()

	if err := dimacs.ReadBuilder(r, instanceBuilder{sb}); err != nil {
		return fmt.Errorf("parsers: reading %q: %w", path, err)
	}
	return nil
}

// instanceBuilder adapts a SATBuilder to dimacs.Builder. The header
// declares the variables; clause lines pass through unchanged since the
// consumer speaks signed literal ids natively.
type instanceBuilder struct {
	sb SATBuilder
}

func (b instanceBuilder) Problem(kind string, nVars, nClauses int) error {
	if kind != "cnf" {
		return fmt.Errorf("unsupported problem kind %q", kind)
	}
	for v := 0; v < nVars; v++ {
		b.sb.AddVariable()
	}
	return nil
}

func (b instanceBuilder) Clause(lits []int) error {
	return b.sb.AddClause(lits)
}

func (b instanceBuilder) Comment(string) error { return nil }

// ReadModels loads the reference models stored alongside a test instance:
// one model per line, written with the instance's literals. A models file
// carries no problem line.
func ReadModels(path string) ([][]bool, error) {
	r, err := cnf.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsers: %w", err)
	}
	defer r.Close()

	mb := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, mb); err != nil {
		return nil, fmt.Errorf("parsers: reading %q: %w", path, err)
	}
	return mb.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(string, int, int) error {
	return fmt.Errorf("unexpected problem line in a models file")
}

func (b *modelBuilder) Clause(lits []int) error {
	m := make([]bool, len(lits))
	for i, l := range lits {
		m[i] = l > 0
	}
	b.models = append(b.models, m)
	return nil
}

func (b *modelBuilder) Comment(string) error { return nil }
