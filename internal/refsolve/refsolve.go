// Package refsolve wraps two independent, real SAT solvers as test
// oracles: gini and gophersat. Neither participates in the SID solving
// path; they exist only so property tests can cross-check Solver.SID's
// SAT/UNSAT verdicts against solvers that don't share any code with this
// module's core.
package refsolve

import (
	"github.com/crillab/gophersat/solver"
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Gini reports satisfiability of clauses (DIMACS-style: 1-indexed
// variables, negative for negation) using the gini solver, along with a
// satisfying model when sat is true. model[i] is the truth value of
// variable i+1.
func Gini(numVars int, clauses [][]int) (sat bool, model []bool) {
	g := gini.NewV(numVars)
	for _, cls := range clauses {
		for _, lit := range cls {
			if lit > 0 {
				g.Add(z.Var(lit).Pos())
			} else {
				g.Add(z.Var(-lit).Neg())
			}
		}
		g.Add(0)
	}

	if g.Solve() != 1 {
		return false, nil
	}
	model = make([]bool, numVars)
	for v := 1; v <= numVars; v++ {
		model[v-1] = g.Value(z.Var(v).Pos())
	}
	return true, model
}

// Gophersat reports satisfiability of clauses using the gophersat solver,
// along with a satisfying model when sat is true, in the same convention
// as Gini.
func Gophersat(numVars int, clauses [][]int) (sat bool, model []bool) {
	pb := solver.ParseSlice(clauses)
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return false, nil
	}
	m := s.Model()
	model = make([]bool, numVars)
	copy(model, m)
	return true, model
}
