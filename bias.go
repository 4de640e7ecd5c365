package sid

// BiasEvaluator derives per-variable biases from the current subproduct
// cache: Hp (bias toward true), Hm (bias toward false), Hz (bias toward
// "don't care"), normalized to sum to 1, plus a scalar evalValue used to
// rank variables for decimation.
type BiasEvaluator struct {
	fg *FactorGraph
}

// NewBiasEvaluator returns an evaluator bound to fg.
func NewBiasEvaluator(fg *FactorGraph) *BiasEvaluator {
	return &BiasEvaluator{fg: fg}
}

// Evaluate recomputes Hp, Hm, Hz, and EvalValue for variable varID from its
// current P/M/PZero/MZero. The variable must be unassigned and have at
// least one enabled edge (so the normalizing sum is positive).
func (b *BiasEvaluator) Evaluate(varID int) {
	v := &b.fg.Variables[varID]

	p := v.P
	if v.PZero > 0 {
		p = 0
	}
	m := v.M
	if v.MZero > 0 {
		m = 0
	}

	hz := p * m
	hp := m - hz
	hm := p - hz

	sum := hp + hm + hz
	v.Hz = hz / sum
	v.Hp = hp / sum
	v.Hm = hm / sum

	v.EvalValue = v.Hp - v.Hm
	if v.EvalValue < 0 {
		v.EvalValue = -v.EvalValue
	}
}

// EvaluateAll evaluates biases for every currently unassigned variable and
// returns the mean of each variable's max(Hp, Hm), used by the Decimator to
// detect a paramagnetic SP fixpoint.
func (b *BiasEvaluator) EvaluateAll() (meanMaxBias float64) {
	unassigned := b.fg.UnassignedVariables()
	if len(unassigned) == 0 {
		return 0
	}
	var sum float64
	for _, id := range unassigned {
		b.Evaluate(id)
		v := &b.fg.Variables[id]
		if v.Hp > v.Hm {
			sum += v.Hp
		} else {
			sum += v.Hm
		}
	}
	return sum / float64(len(unassigned))
}
