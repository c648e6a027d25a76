package fleet

import "github.com/larkspur-ops/reliefgrid/timewindow"

// Zone is an affected delivery zone's mutable dispatch state: resource
// needs, population, and whether it has already been supplied. Mutated
// only by the Executor (spec §5).
type Zone struct {
	ID         string
	NodeKey    string
	Population float64
	Priority   timewindow.Priority
	Needs      map[string]float64
	Density    string // "High", "Normal", "Low" — mirrors worldgraph.Density.String()
	Supplied   bool
	Window     timewindow.Window
}

// NeedsTotal sums every resource-kind quantity the zone still requires.
func (z Zone) NeedsTotal() float64 {
	total := 0.0
	for _, v := range z.Needs {
		total += v
	}

	return total
}

// Reset clears Supplied so the zone can be re-dispatched. Exists for
// tests/tooling; normal dispatch and cycle code never call this (spec §9's
// resolved Open Question: "supplied" flips back only through this explicit
// reset, never automatically).
func (z *Zone) Reset() {
	z.Supplied = false
}
