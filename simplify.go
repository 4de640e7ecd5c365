package sid

// Simplifier assigns variables and propagates the consequences: disabling
// satisfied clauses, disabling falsified edges, and running recursive unit
// propagation to a fixpoint.
type Simplifier struct {
	fg *FactorGraph
}

// NewSimplifier returns a simplifier bound to fg.
func NewSimplifier(fg *FactorGraph) *Simplifier {
	return &Simplifier{fg: fg}
}

// boolToAssignment maps a literal truth value to the Assignment that
// satisfies it.
func boolToAssignment(value bool) Assignment {
	if value {
		return True
	}
	return False
}

// Assign fixes variable varID to value (true/false) and propagates. It
// returns false if the assignment contradicts an existing assignment or if
// propagation derives an empty clause.
func (s *Simplifier) Assign(varID int, value bool) bool {
	v := &s.fg.Variables[varID]
	want := boolToAssignment(value)

	if v.Assignment != Unassigned && v.Assignment != want {
		return false
	}
	if v.Assignment == Unassigned {
		v.Assignment = want
		s.fg.unassigned--
	}
	return s.cleanGraph(varID, value)
}

// cleanGraph processes every enabled edge of a newly assigned variable:
// edges whose literal is satisfied disable their clause; edges whose
// literal is falsified are disabled and trigger unit propagation on their
// clause, which may recursively assign further variables.
func (s *Simplifier) cleanGraph(varID int, value bool) bool {
	v := &s.fg.Variables[varID]
	// Edges is read up front: cleanGraph never adds edges to this
	// variable, only disables clauses/edges elsewhere in the graph.
	edges := append([]int(nil), v.Edges...)
	for _, eid := range edges {
		e := &s.fg.Edges[eid]
		if !e.Enabled {
			continue
		}
		if e.Type == value {
			s.fg.Clauses[e.Clause].Enabled = false
		} else {
			e.Enabled = false
			if !s.unitPropagation(e.Clause) {
				return false
			}
		}
	}
	return true
}

// unitPropagation checks whether clause clauseID has become unit (exactly
// one enabled edge) or empty (zero enabled edges) after an edge was just
// disabled, and if unit, forces the surviving literal via a recursive
// Assign. Recursion depth is bounded by the number of variables.
func (s *Simplifier) unitPropagation(clauseID int) bool {
	cls := &s.fg.Clauses[clauseID]
	if !cls.Enabled {
		return true
	}
	enabled := s.fg.EnabledEdges(clauseID)
	switch len(enabled) {
	case 0:
		return false
	case 1:
		e := s.fg.Edges[enabled[0]]
		return s.Assign(e.Variable, e.Type)
	default:
		return true
	}
}
