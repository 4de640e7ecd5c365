package sid

import (
	"math/rand"
	"testing"
)

func TestDecimatorReachesSATOnSingleVar(t *testing.T) {
	fg := NewFactorGraph([][]int{{1}})
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	for i := range fg.Edges {
		fg.Edges[i].Survey = rng.Float64()
	}
	sp := NewSPDriver(fg, &cfg, rng)
	dec := NewDecimator(fg, &cfg, sp)

	var result DecimateResult
	for i := 0; i < 10; i++ {
		result = dec.Step(nil)
		if result != DecimateContinue {
			break
		}
	}
	if result != DecimateSAT {
		t.Fatalf("Step() sequence ended in %v, want DecimateSAT", result)
	}
	if fg.Variables[0].Assignment != True {
		t.Fatalf("x1.Assignment = %v, want True", fg.Variables[0].Assignment)
	}
}

func TestDecimatorMonotonicUnassignedCount(t *testing.T) {
	// P5: |unassigned| strictly decreases across iterations that return to
	// the top of the loop (DecimateContinue).
	fg := NewFactorGraph([][]int{
		{1, 2, 3}, {-1, 2, 4}, {1, -3, -4}, {-2, -3, 1}, {2, 3, -4}, {1, -2, 4},
	})
	cfg := DefaultConfig()
	cfg.Fraction = 0.5
	rng := rand.New(rand.NewSource(3))
	for i := range fg.Edges {
		fg.Edges[i].Survey = rng.Float64()
	}
	sp := NewSPDriver(fg, &cfg, rng)
	dec := NewDecimator(fg, &cfg, sp)

	prev := fg.UnassignedCount()
	for i := 0; i < 20; i++ {
		result := dec.Step(nil)
		if result != DecimateContinue {
			break
		}
		got := fg.UnassignedCount()
		if got >= prev {
			t.Fatalf("iteration %d: unassigned count did not decrease (%d -> %d)", i, prev, got)
		}
		prev = got
	}
}
