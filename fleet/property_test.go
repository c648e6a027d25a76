package fleet

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/larkspur-ops/reliefgrid/access"
	"github.com/larkspur-ops/reliefgrid/pathfind"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// TestExecuteNeverLeavesFuelOutOfBounds exercises spec §8's `0 ≤ fuel ≤
// range` invariant over random starting fuel, vehicle range, and per-edge
// base cost, regardless of whether the dispatch ultimately succeeds or is
// rejected partway through.
func TestExecuteNeverLeavesFuelOutOfBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("fuel stays within [0, range] after Execute", prop.ForAll(
		func(vehicleRange, fuelFraction, edgeCost float64) bool {
			g := simpleRouteGraph(t, edgeCost)
			wm, hm, seededRNG := freshManagers(t, g, 1)

			fuel := vehicleRange * fuelFraction // never starts above its own range
			v := &Vehicle{ID: "v1", Kind: access.Truck, Location: "base-1", Capacity: 50, Range: vehicleRange, Fuel: fuel}
			z := openZone(0, 1000)
			path := pathfind.Path{Nodes: []string{"base-1", "hub-1", "zone-a"}, Cost: edgeCost * 2, Time: edgeCost}

			Execute(g, v, path, &z, wm, hm, 0, seededRNG)

			return v.Fuel >= 0 && v.Fuel <= v.Range
		},
		gen.Float64Range(1, 200),
		gen.Float64Range(0, 1),
		gen.Float64Range(0.1, 30),
	))

	properties.TestingRun(t)
}

func simpleRouteGraph(t *testing.T, edgeCost float64) *worldgraph.Graph {
	t.Helper()
	b := worldgraph.NewBuilder()
	_ = b.AddNode(worldgraph.Node{Key: "base-1", Kind: worldgraph.Base, Region: "r"})
	_ = b.AddNode(worldgraph.Node{Key: "hub-1", Kind: worldgraph.Hub, Region: "r", Terrain: worldgraph.Urban})
	_ = b.AddNode(worldgraph.Node{Key: "zone-a", Kind: worldgraph.Delivery, Region: "r", Terrain: worldgraph.Urban})
	_ = b.AddEdge("base-1", "hub-1", edgeCost, 1)
	_ = b.AddEdge("hub-1", "zone-a", edgeCost, 1)

	return b.Build()
}

// applyLeg is exercised directly too: debiting legCost from fuel, or
// resetting to range at a RefuelStation, must never push fuel negative
// (the caller already guarantees legCost fits before calling).
func TestApplyLegNeverDebitsBelowZero(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("applyLeg keeps fuel non-negative when legCost fits the safety margin", prop.ForAll(
		func(fuel, legCost float64) bool {
			if fuelSafetyMargin*legCost > fuel {
				return true // precondition the caller is required to check first
			}
			g := worldgraph.NewBuilder()
			_ = g.AddNode(worldgraph.Node{Key: "base-1", Kind: worldgraph.Base})
			_ = g.AddNode(worldgraph.Node{Key: "hub-1", Kind: worldgraph.Hub})
			_ = g.AddEdge("base-1", "hub-1", legCost, 1)
			graph := g.Build()

			v := &Vehicle{ID: "v1", Kind: access.Truck, Location: "base-1", Range: 1000, Fuel: fuel}
			applyLeg(graph, v, []string{"base-1", "hub-1"}, legCost)

			return v.Fuel >= 0
		},
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 50),
	))

	properties.TestingRun(t)
}
