package sid

import (
	"math/rand"
	"testing"
)

func TestSPDriverConvergesOnSimpleFormula(t *testing.T) {
	fg := NewFactorGraph([][]int{{1, 2, 3}, {-1, 2}, {1, -3}, {-2, -3, 1}})
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	for i := range fg.Edges {
		fg.Edges[i].Survey = rng.Float64()
	}
	driver := NewSPDriver(fg, &cfg, rng)

	result := driver.Run(nil)
	if result != SPConverged && result != SPTrivial && result != SPUnconverged {
		t.Fatalf("Run() = %v, want one of SPConverged/SPTrivial/SPUnconverged", result)
	}
}

func TestSPDriverCancellation(t *testing.T) {
	fg := NewFactorGraph([][]int{{1, 2, 3}, {-1, 2}, {1, -3}})
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	driver := NewSPDriver(fg, &cfg, rng)

	calls := 0
	cancelled := func() bool {
		calls++
		return true
	}
	if got := driver.Run(cancelled); got != SPCancelled {
		t.Fatalf("Run() = %v, want SPCancelled", got)
	}
	if calls == 0 {
		t.Fatal("cancellation func was never polled")
	}
}

func TestSPDriverDeterministic(t *testing.T) {
	build := func(seed int64) SPResult {
		fg := NewFactorGraph([][]int{{1, 2, 3}, {-1, 2, 4}, {1, -3, -4}, {-2, -3, 1}, {2, 3, -4}})
		cfg := DefaultConfig()
		rng := rand.New(rand.NewSource(seed))
		for i := range fg.Edges {
			fg.Edges[i].Survey = rng.Float64()
		}
		driver := NewSPDriver(fg, &cfg, rng)
		return driver.Run(nil)
	}

	r1 := build(99)
	r2 := build(99)
	if r1 != r2 {
		t.Fatalf("two runs with seed 99 diverged: %v vs %v", r1, r2)
	}
}
