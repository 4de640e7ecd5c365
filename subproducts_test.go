package sid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubproductCacheRecomputeAll(t *testing.T) {
	fg := NewFactorGraph([][]int{{1, 2}, {-1, 2}, {1, -2}})
	cache := NewSubproductCache(fg, 1e-16)
	for i := range fg.Edges {
		fg.Edges[i].Survey = 0.25
	}
	cache.RecomputeAll()

	v0 := fg.Variables[0] // x1: one positive edge (clause 0), one positive (clause 2), one negative (clause 1)
	wantP := (1 - 0.25) * (1 - 0.25)
	if math.Abs(v0.P-wantP) > 1e-12 {
		t.Errorf("x1.P = %v, want %v", v0.P, wantP)
	}
	wantM := 1 - 0.25
	if math.Abs(v0.M-wantM) > 1e-12 {
		t.Errorf("x1.M = %v, want %v", v0.M, wantM)
	}
}

func TestSubproductCacheRecomputeAllSaturation(t *testing.T) {
	fg := NewFactorGraph([][]int{{1}, {1}})
	cache := NewSubproductCache(fg, 1e-9)
	fg.Edges[0].Survey = 1.0
	fg.Edges[1].Survey = 0.5
	cache.RecomputeAll()

	v := fg.Variables[0]
	if v.PZero != 1 {
		t.Fatalf("PZero = %d, want 1 (one saturated edge)", v.PZero)
	}
	if math.Abs(v.P-0.5) > 1e-12 {
		t.Fatalf("P = %v, want 0.5 (only the unsaturated edge contributes)", v.P)
	}
}

// TestSubproductPatchAgreesWithRecompute is the §8 fuzz property: patching
// incrementally must agree with a from-scratch recompute to high precision,
// across a variety of survey transitions including saturation crossings.
func TestSubproductPatchAgreesWithRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const eps = 1e-16

	for trial := 0; trial < 50; trial++ {
		numVars := 3 + rng.Intn(5)
		numClauses := 5 + rng.Intn(10)
		var clauses [][]int
		for i := 0; i < numClauses; i++ {
			size := 1 + rng.Intn(3)
			var cls []int
			for j := 0; j < size; j++ {
				v := 1 + rng.Intn(numVars)
				if rng.Intn(2) == 1 {
					v = -v
				}
				cls = append(cls, v)
			}
			clauses = append(clauses, cls)
		}
		fg := NewFactorGraph(clauses)
		cache := NewSubproductCache(fg, eps)

		for i := range fg.Edges {
			fg.Edges[i].Survey = rng.Float64()
		}
		cache.RecomputeAll()

		// Apply a batch of random survey mutations via Patch, occasionally
		// pushing a survey to exactly 1 to exercise the saturation branch.
		for i := range fg.Edges {
			e := &fg.Edges[i]
			old := e.Survey
			var next float64
			if rng.Intn(4) == 0 {
				next = 1.0
			} else {
				next = rng.Float64()
			}
			cache.Patch(e.Variable, e.Type, old, next)
			e.Survey = next
		}

		patched := make([]Variable, len(fg.Variables))
		copy(patched, fg.Variables)

		cache.RecomputeAll()

		for i, v := range fg.Variables {
			if v.Assignment != Unassigned {
				continue
			}
			p, m := patched[i], v
			require.InDeltaf(t, m.P, p.P, 1e-9, "trial %d var %d: P", trial, i)
			require.InDeltaf(t, m.M, p.M, 1e-9, "trial %d var %d: M", trial, i)
			require.Equalf(t, m.PZero, p.PZero, "trial %d var %d: PZero", trial, i)
			require.Equalf(t, m.MZero, p.MZero, "trial %d var %d: MZero", trial, i)
		}
	}
}
