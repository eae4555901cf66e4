// Package dimacs parses DIMACS CNF files for the decision core, following
// the format's traditional scanf-based recovery rules rather than
// rejecting anything that isn't perfectly formed: lines preceding the
// header are skipped, non-numeric noise between literal tokens is drained
// to end of line, and a clause that begins with a literal 0 is treated as
// noise and skipped rather than counted.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Instance is the in-memory result of parsing a DIMACS CNF file: the
// variable and clause counts from the header, and the raw signed-literal
// clauses exactly as read from the file.
type Instance struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int
}

// Parse reads the CNF file at path (transparently gzip-decompressed when
// path ends in ".gz") into an Instance.
func Parse(path string) (*Instance, error) {
	r, err := OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", path, err)
	}
	defer r.Close()

	br := bufio.NewReader(r)
	if err := skipToHeader(br); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}

	nVars, nClauses, err := readHeader(br)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}

	inst := &Instance{NumVars: nVars, NumClauses: nClauses}
	for len(inst.Clauses) < nClauses {
		clause, ok, err := readClause(br)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("dimacs: %w", err)
		}
		if !ok {
			// The clause began with a literal 0: noise, keep scanning at the
			// next line.
			if err := drainLine(br); err != nil {
				if err == io.EOF {
					break
				}
				return nil, fmt.Errorf("dimacs: %w", err)
			}
			continue
		}
		inst.Clauses = append(inst.Clauses, clause)
	}
	return inst, nil
}

// OpenFile opens path for reading, transparently gzip-decompressing when
// path ends in ".gz". The caller owns the returned ReadCloser.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipFile{gz, f}, nil
	}
	return f, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// skipToHeader drains input until it finds a line starting with 'p',
// leaving the reader positioned right after that byte.
func skipToHeader(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return fmt.Errorf("header line not found: %w", err)
		}
		if b == 'p' {
			return nil
		}
		if b == '\n' {
			continue // an empty line: the next byte starts a new line
		}
		if err := drainLine(br); err != nil && err != io.EOF {
			return err
		}
	}
}

func drainLine(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

func readHeader(br *bufio.Reader) (nVars int, nClauses int, err error) {
	n, err := fmt.Fscanf(br, " cnf %d %d", &nVars, &nClauses)
	if err != nil || n != 2 {
		return 0, 0, fmt.Errorf("malformed header: %w", err)
	}
	return nVars, nClauses, nil
}

// readClause reads one 0-terminated sequence of signed integers, draining
// any non-numeric noise to end of line. It reports ok=false, with no error,
// if the clause began with a literal 0: the caller should keep scanning
// without counting a clause.
func readClause(br *bufio.Reader) (lits []int, ok bool, err error) {
	first := true
	for {
		lit, err := readSignedInt(br)
		if err != nil {
			return nil, false, err
		}
		if lit == 0 {
			if first {
				return nil, false, nil
			}
			return lits, true, nil
		}
		first = false
		lits = append(lits, lit)
	}
}

// readSignedInt skips whitespace and drains non-numeric noise to end of
// line until it can parse a signed integer token.
func readSignedInt(br *bufio.Reader) (int, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			continue
		case b == '-' || (b >= '0' && b <= '9'):
			return scanInt(br, b)
		default:
			if err := drainLine(br); err != nil {
				return 0, err
			}
		}
	}
}

func scanInt(br *bufio.Reader, first byte) (int, error) {
	neg := first == '-'
	digits := make([]byte, 0, 8)
	if !neg {
		digits = append(digits, first)
	}
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		if b < '0' || b > '9' {
			br.UnreadByte()
			break
		}
		digits = append(digits, b)
	}
	if len(digits) == 0 {
		return 0, fmt.Errorf("expected digits after '-'")
	}
	v := 0
	for _, d := range digits {
		v = v*10 + int(d-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}
