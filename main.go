// Command satcore solves a DIMACS CNF instance with the decision core and
// prints a competition-style verdict: comment lines with search counters,
// an "s" status line, and a "v" model line for satisfiable instances.
//
// Usage:
//
//	satcore [flags] instance.cnf[.gz]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/wsw1206/satcore/internal/satcore"
	"github.com/wsw1206/satcore/internal/search"
)

var (
	flagCPUProfile = flag.String("cpuprofile", "", "write a pprof CPU profile to `file`")
	flagMemProfile = flag.String("memprofile", "", "write a pprof heap profile to `file`")
	flagNoModel    = flag.Bool("nomodel", false, "do not print the model of a satisfiable instance")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("satcore: ")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: satcore [flags] instance.cnf[.gz]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := solve(os.Stdout, flag.Arg(0)); err != nil {
		log.Fatal(err)
	}

	if *flagMemProfile != "" {
		f, err := os.Create(*flagMemProfile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
		f.Close()
	}
}

func solve(w io.Writer, path string) error {
	state, err := satcore.NewSATState(path)
	if err != nil {
		return err
	}
	defer state.Close()

	s := search.NewDefaultSolver(state)

	start := time.Now()
	status := s.Solve()
	elapsed := time.Since(start)

	fmt.Fprintf(w, "c instance  %s\n", path)
	fmt.Fprintf(w, "c parsed    %d variables, %d clauses\n", state.VarCount(), state.ClauseCount())
	fmt.Fprintf(w, "c search    %d decisions, %d conflicts, %d backtracks\n",
		s.TotalDecisions, s.TotalConflicts, s.TotalBacktracks)
	fmt.Fprintf(w, "c learned   %d clauses\n", state.LearnedClauseCount())
	fmt.Fprintf(w, "c time      %.3fs\n", elapsed.Seconds())

	switch status {
	case search.Sat:
		fmt.Fprintln(w, "s SATISFIABLE")
		if !*flagNoModel {
			fmt.Fprintln(w, modelLine(s.Model))
		}
	case search.Unsat:
		fmt.Fprintln(w, "s UNSATISFIABLE")
	default:
		fmt.Fprintln(w, "s UNKNOWN")
	}
	return nil
}

// modelLine renders a model as a DIMACS "v" line: one signed literal per
// variable, 0-terminated.
func modelLine(model []bool) string {
	var b strings.Builder
	b.WriteString("v")
	for i, val := range model {
		if val {
			fmt.Fprintf(&b, " %d", i+1)
		} else {
			fmt.Fprintf(&b, " -%d", i+1)
		}
	}
	b.WriteString(" 0")
	return b.String()
}
