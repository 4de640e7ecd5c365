package sid

import "math/rand"

// SPResult is the outcome of running SPDriver to completion.
type SPResult int

const (
	// SPConverged means the sweep loop reached a max-survey-delta at or
	// below spEpsilon without meeting the SPTrivial test.
	SPConverged SPResult = iota
	// SPTrivial means the fixpoint is the all-zero-survey state: SP
	// carries no structural information and WalkSAT should be used.
	SPTrivial
	// SPUnconverged means spMaxIt sweeps elapsed without the delta
	// dropping below spEpsilon.
	SPUnconverged
	// SPCancelled means the caller's cancellation signal fired between
	// sweeps.
	SPCancelled
)

// SPDriver iterates SPUpdater over every enabled clause, in a freshly
// shuffled order each sweep, until convergence, triviality, the iteration
// cap, or cancellation.
type SPDriver struct {
	fg      *FactorGraph
	cache   *SubproductCache
	updater *SPUpdater
	cfg     *Config
	rng     *rand.Rand
}

// NewSPDriver returns a driver bound to fg, using cfg's parameters and rng
// for the per-sweep clause permutation.
func NewSPDriver(fg *FactorGraph, cfg *Config, rng *rand.Rand) *SPDriver {
	cache := NewSubproductCache(fg, cfg.ZeroEpsilon)
	return &SPDriver{
		fg:      fg,
		cache:   cache,
		updater: NewSPUpdater(fg, cache, cfg.ZeroEpsilon),
		cfg:     cfg,
		rng:     rng,
	}
}

// cancelFunc is polled at each sweep boundary; nil means never cancel.
type cancelFunc func() bool

// Run performs up to cfg.SPMaxIterations sweeps over the factor graph's
// enabled clauses, recomputing the subproduct cache from scratch first
// (§4.2: required because decimation may have disabled edges without
// touching subproducts).
func (d *SPDriver) Run(cancelled cancelFunc) SPResult {
	d.cache.RecomputeAll()

	for it := 0; it < d.cfg.SPMaxIterations; it++ {
		if cancelled != nil && cancelled() {
			return SPCancelled
		}

		clauses := d.fg.EnabledClauses()
		d.rng.Shuffle(len(clauses), func(i, j int) {
			clauses[i], clauses[j] = clauses[j], clauses[i]
		})

		maxDelta := 0.0
		for _, cid := range clauses {
			delta := d.updater.Update(cid)
			if delta > maxDelta {
				maxDelta = delta
			}
		}
		logSweep(d.fg, it, maxDelta)

		if maxDelta <= d.cfg.SPEpsilon {
			if maxDelta < d.cfg.ZeroEpsilon && d.allSurveysZero() {
				return SPTrivial
			}
			return SPConverged
		}
	}
	return SPUnconverged
}

// allSurveysZero reports whether every enabled edge's survey is below
// zeroEpsilon, confirming the all-zero-survey paramagnetic fixpoint.
func (d *SPDriver) allSurveysZero() bool {
	for _, e := range d.fg.Edges {
		if e.Enabled && e.Survey >= d.cfg.ZeroEpsilon {
			return false
		}
	}
	return true
}
