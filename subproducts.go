package sid

// SubproductCache maintains, per unassigned variable, the incremental
// products p = prod(1-survey) over enabled positive edges and m over
// enabled negative edges, plus pzero/mzero counts of edges whose survey has
// saturated to 1 (within zeroEpsilon of 1). This is invariant I1.
//
// The cache is not a separate data structure: it lives directly on
// FactorGraph.Variables (fields P, M, PZero, MZero) so that SPUpdater can
// patch it in place without a second lookup. This type exists to group the
// two operations that maintain I1: a from-scratch recompute (needed once
// per SPDriver run, since decimation may have disabled edges without
// touching subproducts) and an incremental patch (the performance-critical
// path, invoked once per edge per SPUpdater call).
type SubproductCache struct {
	fg          *FactorGraph
	zeroEpsilon float64
}

// NewSubproductCache returns a cache bound to fg, using zeroEpsilon as the
// saturation threshold on (1 - survey).
func NewSubproductCache(fg *FactorGraph, zeroEpsilon float64) *SubproductCache {
	return &SubproductCache{fg: fg, zeroEpsilon: zeroEpsilon}
}

// RecomputeAll recomputes P, M, PZero, MZero from scratch for every
// unassigned variable, establishing I1 unconditionally. Must be called
// before the first SP sweep of a run, since prior decimation may have
// disabled edges without updating subproducts.
func (c *SubproductCache) RecomputeAll() {
	for i := range c.fg.Variables {
		v := &c.fg.Variables[i]
		if v.Assignment != Unassigned {
			continue
		}
		v.P, v.M = 1.0, 1.0
		v.PZero, v.MZero = 0, 0
		for _, eid := range v.Edges {
			e := &c.fg.Edges[eid]
			if !e.Enabled {
				continue
			}
			if e.Type {
				if 1.0-e.Survey > c.zeroEpsilon {
					v.P *= 1.0 - e.Survey
				} else {
					v.PZero++
				}
			} else {
				if 1.0-e.Survey > c.zeroEpsilon {
					v.M *= 1.0 - e.Survey
				} else {
					v.MZero++
				}
			}
		}
	}
}

// Patch updates variable v's subproduct (selected by edge polarity
// positive) in place to account for an edge's survey changing from oldS to
// newS, preserving I1. This is the §4.1 four-case update:
//
//	(no sat -> no sat):  multiply by (1-new)/(1-old)
//	(no sat -> sat):     divide by (1-old), zero-count++
//	(sat -> no sat):     multiply by (1-new), zero-count--
//	(sat -> sat):        no-op
func (c *SubproductCache) Patch(varID int, positive bool, oldS, newS float64) {
	v := &c.fg.Variables[varID]
	prod, zero := &v.P, &v.PZero
	if !positive {
		prod, zero = &v.M, &v.MZero
	}

	oldSat := 1.0-oldS <= c.zeroEpsilon
	newSat := 1.0-newS <= c.zeroEpsilon

	switch {
	case !oldSat && !newSat:
		*prod *= (1.0 - newS) / (1.0 - oldS)
	case !oldSat && newSat:
		*prod /= 1.0 - oldS
		*zero++
	case oldSat && !newSat:
		*prod *= 1.0 - newS
		*zero--
	default: // oldSat && newSat: no-op
	}
}
