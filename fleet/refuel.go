package fleet

import (
	"sort"

	"github.com/larkspur-ops/reliefgrid/access"
	"github.com/larkspur-ops/reliefgrid/pathfind"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// RefuelPlan is the outcome of the Refuel Planner (spec §4.9): the chosen
// station and the route to it.
type RefuelPlan struct {
	Station string
	Path    pathfind.Path
}

// PlanRefuel enumerates g's RefuelStation nodes reachable from v's current
// location, keeps those whose route cost is within the safety fraction of
// v's current fuel, and returns the minimum-cost one. ok is false if no
// station qualifies.
func PlanRefuel(g *worldgraph.Graph, v Vehicle, safetyFraction float64) (RefuelPlan, bool) {
	avoid := access.Forbidden(v.Kind)

	var best RefuelPlan
	bestCost := v.Fuel*safetyFraction + 1 // sentinel above any admissible cost
	found := false

	for _, station := range refuelStations(g) {
		oracle := pathfind.NewOracle(g, station)
		path, ok, err := pathfind.AStarStrategy{}.Find(g, oracle, v.Location, station, avoid)
		if err != nil || !ok {
			continue
		}
		if path.Cost > safetyFraction*v.Fuel {
			continue
		}
		if !found || path.Cost < bestCost {
			best = RefuelPlan{Station: station, Path: path}
			bestCost = path.Cost
			found = true
		}
	}

	return best, found
}

func refuelStations(g *worldgraph.Graph) []string {
	out := make([]string, 0)
	for _, key := range g.Nodes() {
		n, err := g.Node(key)
		if err != nil {
			continue
		}
		if n.Kind == worldgraph.RefuelStation {
			out = append(out, key)
		}
	}
	sort.Strings(out)

	return out
}
