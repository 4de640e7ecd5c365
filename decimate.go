package sid

import "sort"

// DecimateResult is the outcome of one Decimator.Step call.
type DecimateResult int

const (
	// DecimateContinue means a batch of variables was fixed and the
	// graph is not yet fully satisfied; the caller should loop.
	DecimateContinue DecimateResult = iota
	DecimateSAT
	DecimateContradiction
	DecimateWalkSAT
	DecimateUnconverged
	DecimateCancelled
)

// Decimator performs one SID iteration: run SPDriver, evaluate biases,
// detect a paramagnetic state, fix the top fraction of unassigned
// variables by |Hp-Hm|, and simplify.
type Decimator struct {
	fg   *FactorGraph
	cfg  *Config
	bias *BiasEvaluator
	simp *Simplifier
	sp   *SPDriver
}

// NewDecimator returns a decimator bound to fg, driven by sp for the SP
// phase and cfg for thresholds.
func NewDecimator(fg *FactorGraph, cfg *Config, sp *SPDriver) *Decimator {
	return &Decimator{
		fg:   fg,
		cfg:  cfg,
		bias: NewBiasEvaluator(fg),
		simp: NewSimplifier(fg),
		sp:   sp,
	}
}

// Step runs one full SID iteration.
func (d *Decimator) Step(cancelled cancelFunc) DecimateResult {
	switch d.sp.Run(cancelled) {
	case SPTrivial:
		return DecimateWalkSAT
	case SPUnconverged:
		return DecimateUnconverged
	case SPCancelled:
		return DecimateCancelled
	}
	// SPConverged: fall through.

	unassigned := d.fg.UnassignedVariables()
	if len(unassigned) == 0 {
		return DecimateSAT
	}

	var sumMaxBias float64
	for _, id := range unassigned {
		d.bias.Evaluate(id)
		v := &d.fg.Variables[id]
		if v.Hp > v.Hm {
			sumMaxBias += v.Hp
		} else {
			sumMaxBias += v.Hm
		}
	}
	if sumMaxBias/float64(len(unassigned)) < d.cfg.ParamagneticThreshold {
		return DecimateWalkSAT
	}

	sort.Slice(unassigned, func(i, j int) bool {
		return d.fg.Variables[unassigned[i]].EvalValue > d.fg.Variables[unassigned[j]].EvalValue
	})

	k := int(float64(len(unassigned)) * d.cfg.Fraction)
	if k < 1 {
		k = 1
	}

	fixed := 0
	for _, id := range unassigned {
		if fixed >= k {
			break
		}
		v := &d.fg.Variables[id]
		if v.Assignment != Unassigned {
			// A prior assignment in this batch's unit propagation
			// already fixed this one; it doesn't count toward k.
			continue
		}
		// Re-evaluate: earlier fixings in this batch changed the graph.
		d.bias.Evaluate(id)
		value := v.Hp > v.Hm
		if !d.simp.Assign(id, value) {
			return DecimateContradiction
		}
		fixed++
	}

	if d.fg.IsSAT() {
		return DecimateSAT
	}
	return DecimateContinue
}
