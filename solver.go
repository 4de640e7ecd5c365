package sid

import (
	"context"
	"math/rand"
)

// AlgorithmResult is the terminal outcome of a SID solve.
type AlgorithmResult int

const (
	SAT AlgorithmResult = iota
	CONTRADICTION
	UNCONVERGED
	WALKSAT
	CANCELLED
)

func (r AlgorithmResult) String() string {
	switch r {
	case SAT:
		return "SAT"
	case CONTRADICTION:
		return "CONTRADICTION"
	case UNCONVERGED:
		return "UNCONVERGED"
	case WALKSAT:
		return "WALKSAT"
	case CANCELLED:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Solver owns the RNG and configuration for one or more SID solves. It is
// not safe for concurrent use: the core is single-threaded and strictly
// sequential (see spec §5).
type Solver struct {
	Config Config
	rng    *rand.Rand
}

// NewSolver returns a Solver with cfg's seed resolved (drawing one from
// entropy if cfg.Seed == 0) and its RNG seeded exactly once.
func NewSolver(cfg Config) *Solver {
	seed := cfg.ResolveSeed()
	return &Solver{
		Config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// SID runs Survey Inspired Decimation on graph, fixing `fraction` of the
// remaining unassigned variables (by descending bias) per iteration. It
// owns graph for the lifetime of the call; on SAT, graph's Variables carry
// the satisfying assignment. ctx is polled at SP sweep boundaries; a nil
// ctx is treated as context.Background().
func (s *Solver) SID(ctx context.Context, graph *FactorGraph, fraction float64) AlgorithmResult {
	if ctx == nil {
		ctx = context.Background()
	}
	if fraction <= 0 || fraction > 1 {
		panic("sid: fraction must be in (0, 1]")
	}

	for i := range graph.Edges {
		graph.Edges[i].Survey = s.rng.Float64()
	}

	cfg := s.Config
	cfg.Fraction = fraction
	sp := NewSPDriver(graph, &cfg, s.rng)
	dec := NewDecimator(graph, &cfg, sp)

	cancelled := func() bool { return ctx.Err() != nil }

	for {
		switch dec.Step(cancelled) {
		case DecimateSAT:
			return SAT
		case DecimateContradiction:
			return CONTRADICTION
		case DecimateUnconverged:
			return UNCONVERGED
		case DecimateWalkSAT:
			return WALKSAT
		case DecimateCancelled:
			return CANCELLED
		case DecimateContinue:
			// loop
		}
	}
}
