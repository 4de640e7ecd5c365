package sid

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
)

// verbose gates the pretty-printed state dumps below, in the same spirit as
// the DPLL predecessor's own verbose const: flip it on locally when chasing
// a subproduct-consistency bug, never in committed code.
const verbose = false

// DebugState renders a summary of fg's current variables and clauses using
// kr/pretty, for use in ad hoc debugging sessions (verbose-gated call sites
// below; callers may also invoke it directly and log the result themselves).
func (fg *FactorGraph) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "variables (%d, %d unassigned):\n", len(fg.Variables), fg.unassigned)
	for _, v := range fg.Variables {
		if v.Assignment != Unassigned {
			fmt.Fprintf(&b, "  v%d = %s\n", v.ID, v.Assignment)
			continue
		}
		fmt.Fprintf(&b, "  v%d: %# v\n", v.ID, pretty.Formatter(v))
	}
	fmt.Fprintf(&b, "clauses (%d):\n", len(fg.Clauses))
	for _, c := range fg.Clauses {
		state := "enabled"
		if !c.Enabled {
			state = "disabled"
		}
		fmt.Fprintf(&b, "  c%d: %s, edges=%v\n", c.ID, state, c.Edges)
	}
	return b.String()
}

// logSweep is called at sweep boundaries by SPDriver when verbose is true;
// a no-op build-time constant keeps this out of hot-path benchmarks.
func logSweep(fg *FactorGraph, sweep int, maxDelta float64) {
	if !verbose {
		return
	}
	fmt.Printf("sweep %d: maxDelta=%g\n%s", sweep, maxDelta, fg.DebugState())
}
