// Command sid reads a DIMACS CNF file and attempts to satisfy it using
// Survey Inspired Decimation, falling back to WalkSAT when SP hands off.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/mkessler/sid"
	"github.com/mkessler/sid/internal/walksat"
)

func main() {
	log.SetFlags(0)

	var (
		configPath = flag.String("config", "", "path to a YAML config file overlaying the defaults")
		fraction   = flag.Float64("fraction", 0.05, "fraction of unassigned variables to fix per SID iteration")
		seed       = flag.Int64("seed", 0, "RNG seed (0 draws from entropy)")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `sid: a Survey Inspired Decimation SAT solver.

Usage:

  sid [flags] [input.cnf]

sid reads a single problem specification in the DIMACS CNF format. It
writes the output in the conventional way: either the first line is UNSAT,
or else the first line is SAT and the second line gives the assignment in
the same format as an input clause. Variables are numbered 1..n in
ascending order of the input's variable numbers, which matches the input
only when it uses every variable from 1 to n.

If no input file is given, sid reads from standard input.

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := sid.DefaultConfig()
	if *configPath != "" {
		loaded, err := sid.LoadConfig(*configPath)
		if err != nil {
			log.Fatalln("loading config:", err)
		}
		cfg = *loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	var r io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	fg, err := sid.ParseDIMACS(r)
	if err != nil {
		log.Fatalln("error reading input file as DIMACS CNF:", err)
	}

	solver := sid.NewSolver(cfg)
	ctx := context.Background()
	result := solver.SID(ctx, fg, *fraction)

	switch result {
	case sid.SAT:
		printAssignment(fg)
	case sid.WALKSAT:
		maxFlips := cfg.WalkSATFlipFactor * len(fg.Variables)
		rng := rand.New(rand.NewSource(cfg.ResolveSeed()))
		if assignment, ok := walksat.Solve(ctx, fg, maxFlips, cfg.WalkProbability, rng); ok {
			printWalkSATAssignment(fg, assignment)
		} else {
			fmt.Println("UNSAT")
			log.Println("walksat exhausted its flip budget without finding a satisfying assignment")
		}
	case sid.CONTRADICTION:
		fmt.Println("UNSAT")
	default:
		fmt.Println("UNSAT")
		log.Println("SID returned", result)
	}
}

func printAssignment(fg *sid.FactorGraph) {
	fmt.Println("SAT")
	for i, v := range fg.Variables {
		if i > 0 {
			fmt.Print(" ")
		}
		lit := v.ID + 1
		if v.Assignment == sid.False {
			lit = -lit
		}
		fmt.Print(lit)
	}
	fmt.Println()
}

func printWalkSATAssignment(fg *sid.FactorGraph, assignment []bool) {
	fmt.Println("SAT")
	for i, v := range fg.Variables {
		if i > 0 {
			fmt.Print(" ")
		}
		lit := v.ID + 1
		if !assignment[i] {
			lit = -lit
		}
		fmt.Print(lit)
	}
	fmt.Println()
}
