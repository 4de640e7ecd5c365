// Package walksat implements the WalkSAT local-search fallback the core
// hands off to when Survey Propagation converges trivially or the formula
// is in a paramagnetic regime. It is an external collaborator by contract
// (see the sid package's AlgorithmResult.WALKSAT): it only ever sees the
// residual factor graph after the Simplifier has disabled satisfied
// clauses and falsified edges, and it never mutates the graph it is given.
package walksat

import (
	"context"
	"math/rand"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mkessler/sid"
)

// Solve runs randomized local search over fg's currently-enabled clauses,
// starting from a random total assignment of fg's unassigned variables
// (already-assigned variables are held fixed at their current value). It
// returns the full assignment (indexed by variable id) and true on success,
// or nil and false if maxFlips is exhausted with unsatisfied clauses
// remaining -- a timeout signal, not a proof of unsatisfiability.
//
// ctx is polled every 256 flips so a caller can enforce a wall-clock
// budget without per-flip overhead. rng is the caller's seeded source, so
// that a fixed seed reproduces an identical run byte-for-byte.
func Solve(ctx context.Context, fg *sid.FactorGraph, maxFlips int, walkProbability float64, rng *rand.Rand) ([]bool, bool) {
	assignment := initialAssignment(fg, rng)
	broken := brokenClauses(fg, assignment)

	for flip := 0; flip < maxFlips; flip++ {
		if flip%256 == 0 && ctx.Err() != nil {
			return nil, false
		}
		if broken.Cardinality() == 0 {
			return assignment, true
		}

		clauseID := pickRandom(broken, rng)
		var varID int
		if rng.Float64() < walkProbability {
			varID = randomVarInClause(fg, clauseID, rng)
		} else {
			varID = greedyVarInClause(fg, clauseID, assignment, rng)
		}
		flip1(fg, varID, assignment, broken)
	}
	return nil, false
}

func initialAssignment(fg *sid.FactorGraph, rng *rand.Rand) []bool {
	assignment := make([]bool, len(fg.Variables))
	for _, v := range fg.Variables {
		switch v.Assignment {
		case sid.True:
			assignment[v.ID] = true
		case sid.Unassigned:
			assignment[v.ID] = rng.Intn(2) == 1
		}
	}
	return assignment
}

// satisfyingEdges counts clauseID's enabled edges whose literal is true
// under assignment.
func satisfyingEdges(fg *sid.FactorGraph, clauseID int, assignment []bool) int {
	n := 0
	for _, eid := range fg.Clauses[clauseID].Edges {
		e := fg.Edges[eid]
		if e.Enabled && assignment[e.Variable] == e.Type {
			n++
		}
	}
	return n
}

func brokenClauses(fg *sid.FactorGraph, assignment []bool) mapset.Set[int] {
	broken := mapset.NewSet[int]()
	for _, c := range fg.Clauses {
		if c.Enabled && satisfyingEdges(fg, c.ID, assignment) == 0 {
			broken.Add(c.ID)
		}
	}
	return broken
}

// breakCount is the number of currently-satisfied enabled clauses that
// would become broken if varID were flipped: those where varID's edge is
// the clause's unique satisfying literal.
func breakCount(fg *sid.FactorGraph, varID int, assignment []bool) int {
	n := 0
	for _, eid := range fg.Variables[varID].Edges {
		e := fg.Edges[eid]
		if !e.Enabled || !fg.Clauses[e.Clause].Enabled {
			continue
		}
		if assignment[varID] == e.Type && satisfyingEdges(fg, e.Clause, assignment) == 1 {
			n++
		}
	}
	return n
}

func randomVarInClause(fg *sid.FactorGraph, clauseID int, rng *rand.Rand) int {
	edges := fg.EnabledEdges(clauseID)
	e := fg.Edges[edges[rng.Intn(len(edges))]]
	return e.Variable
}

// greedyVarInClause picks the variable in clauseID whose flip breaks the
// fewest currently-satisfied clauses, tie-broken uniformly at random among
// the minimizers (GSAT-style).
func greedyVarInClause(fg *sid.FactorGraph, clauseID int, assignment []bool, rng *rand.Rand) int {
	edges := fg.EnabledEdges(clauseID)
	best := -1
	var candidates []int
	for _, eid := range edges {
		v := fg.Edges[eid].Variable
		bc := breakCount(fg, v, assignment)
		switch {
		case best == -1 || bc < best:
			best = bc
			candidates = []int{v}
		case bc == best:
			candidates = append(candidates, v)
		}
	}
	return candidates[rng.Intn(len(candidates))]
}

// flip1 toggles varID's assignment and updates broken's membership for
// every enabled clause incident to varID.
func flip1(fg *sid.FactorGraph, varID int, assignment []bool, broken mapset.Set[int]) {
	assignment[varID] = !assignment[varID]
	for _, eid := range fg.Variables[varID].Edges {
		e := fg.Edges[eid]
		if !e.Enabled || !fg.Clauses[e.Clause].Enabled {
			continue
		}
		if satisfyingEdges(fg, e.Clause, assignment) == 0 {
			broken.Add(e.Clause)
		} else {
			broken.Remove(e.Clause)
		}
	}
}

// pickRandom returns a uniformly random element of s. mapset's ToSlice
// order follows Go map iteration, which is randomized per process; sort
// first so that a fixed rng seed reproduces the same pick across runs.
func pickRandom(s mapset.Set[int], rng *rand.Rand) int {
	ids := s.ToSlice()
	sort.Ints(ids)
	return ids[rng.Intn(len(ids))]
}
