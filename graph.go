// Package sid implements a SAT solver based on Survey Inspired Decimation
// (SID), a message-passing technique from statistical physics applied to
// random k-SAT instances near the satisfiability threshold.
package sid

import "sort"

// Assignment is the truth value of a Variable.
type Assignment uint8

const (
	Unassigned Assignment = iota
	True
	False
)

func (a Assignment) String() string {
	switch a {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// Variable is a propositional variable in the factor graph, identified by a
// stable index into FactorGraph.Variables.
type Variable struct {
	ID         int
	Assignment Assignment

	// Subproducts maintained incrementally by SPUpdater; see SubproductCache.
	P, M         float64
	PZero, MZero int

	// Biases produced by BiasEvaluator.
	Hp, Hm, Hz float64
	EvalValue  float64

	// Edges incident to this variable, by id into FactorGraph.Edges.
	Edges []int
}

// Clause is a disjunction of literals, identified by a stable index into
// FactorGraph.Clauses. A disabled clause is known satisfied.
type Clause struct {
	ID      int
	Enabled bool

	// Edges incident to this clause, by id into FactorGraph.Edges, in the
	// order the clause's literals were declared. SPUpdater's subsurvey
	// collection and survey writeback both use this order.
	Edges []int
}

// Edge connects exactly one Variable to exactly one Clause. Type is true if
// the variable appears positively in the clause, false if negated.
type Edge struct {
	ID        int
	Variable  int
	Clause    int
	Type      bool
	Enabled   bool
	Survey    float64
}

// FactorGraph owns every Variable, Clause, and Edge for one solve. All other
// components hold indices into it; there are no pointers between graph
// entities, so there are no ownership cycles.
type FactorGraph struct {
	Variables []Variable
	Clauses   []Clause
	Edges     []Edge

	unassigned int // live count, maintained by Assign
}

// NewFactorGraph builds a factor graph from a CNF formula given as a slice
// of clauses, each a slice of nonzero literals (negative means negated).
// Variables are taken from the set of distinct |literal| values appearing in
// clauses; they need not be contiguous or start at 1, but internally they
// are remapped to a dense [0, n) id space in ascending order of variable
// number, so id i is variable i+1 whenever every variable from 1 to n
// appears.
func NewFactorGraph(clauses [][]int) *FactorGraph {
	varIndex := make(map[int]int)
	var order []int
	for _, cls := range clauses {
		for _, lit := range cls {
			v := lit
			if v < 0 {
				v = -v
			}
			if _, ok := varIndex[v]; !ok {
				varIndex[v] = len(order)
				order = append(order, v)
			}
		}
	}
	sort.Ints(order)
	for i, v := range order {
		varIndex[v] = i
	}

	fg := &FactorGraph{
		Variables: make([]Variable, len(order)),
		Clauses:   make([]Clause, len(clauses)),
	}
	for i := range fg.Variables {
		fg.Variables[i] = Variable{ID: i}
	}
	fg.unassigned = len(fg.Variables)

	for ci, cls := range clauses {
		fg.Clauses[ci] = Clause{ID: ci, Enabled: true}
		for _, lit := range cls {
			v := lit
			positive := true
			if v < 0 {
				v = -v
				positive = false
			}
			vi := varIndex[v]
			eid := len(fg.Edges)
			fg.Edges = append(fg.Edges, Edge{
				ID:       eid,
				Variable: vi,
				Clause:   ci,
				Type:     positive,
				Enabled:  true,
			})
			fg.Variables[vi].Edges = append(fg.Variables[vi].Edges, eid)
			fg.Clauses[ci].Edges = append(fg.Clauses[ci].Edges, eid)
		}
	}
	return fg
}

// EnabledClauses returns the ids of currently enabled clauses.
func (fg *FactorGraph) EnabledClauses() []int {
	ids := make([]int, 0, len(fg.Clauses))
	for _, c := range fg.Clauses {
		if c.Enabled {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// EnabledEdges returns the ids of a clause's currently enabled edges.
func (fg *FactorGraph) EnabledEdges(clauseID int) []int {
	cls := fg.Clauses[clauseID]
	ids := make([]int, 0, len(cls.Edges))
	for _, eid := range cls.Edges {
		if fg.Edges[eid].Enabled {
			ids = append(ids, eid)
		}
	}
	return ids
}

// IsSAT reports whether every clause in the graph is disabled (known
// satisfied).
func (fg *FactorGraph) IsSAT() bool {
	for _, c := range fg.Clauses {
		if c.Enabled {
			return false
		}
	}
	return true
}

// UnassignedCount returns the number of variables not yet assigned.
func (fg *FactorGraph) UnassignedCount() int {
	return fg.unassigned
}

// UnassignedVariables returns the ids of variables not yet assigned.
func (fg *FactorGraph) UnassignedVariables() []int {
	ids := make([]int, 0, fg.unassigned)
	for i := range fg.Variables {
		if fg.Variables[i].Assignment == Unassigned {
			ids = append(ids, i)
		}
	}
	return ids
}
