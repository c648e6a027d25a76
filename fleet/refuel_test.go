package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkspur-ops/reliefgrid/access"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

func twoStationGraph(t *testing.T) *worldgraph.Graph {
	t.Helper()
	b := worldgraph.NewBuilder()
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "base-1", Kind: worldgraph.Base}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "near", Kind: worldgraph.RefuelStation}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "far", Kind: worldgraph.RefuelStation}))
	require.NoError(t, b.AddEdge("base-1", "near", 2, 2))
	require.NoError(t, b.AddEdge("base-1", "far", 8, 8))

	return b.Build()
}

func TestPlanRefuelPicksCheapestStation(t *testing.T) {
	g := twoStationGraph(t)
	v := Vehicle{ID: "v1", Kind: access.Truck, Location: "base-1", Range: 100, Fuel: 50}

	plan, ok := PlanRefuel(g, v, 0.9)
	require.True(t, ok)
	assert.Equal(t, "near", plan.Station)
}

func TestPlanRefuelRejectsStationsBeyondSafetyFraction(t *testing.T) {
	g := twoStationGraph(t)
	v := Vehicle{ID: "v1", Kind: access.Truck, Location: "base-1", Range: 100, Fuel: 5}

	// safetyFraction*Fuel = 4.5, between the two station costs (2 fits, 8 does not)
	plan, ok := PlanRefuel(g, v, 0.9)
	require.True(t, ok)
	assert.Equal(t, "near", plan.Station)

	// now make Fuel so low that even "near" (cost 2) doesn't fit
	v.Fuel = 1
	_, ok = PlanRefuel(g, v, 0.9)
	assert.False(t, ok)
}

func TestPlanRefuelHonorsVehicleAccessPolicy(t *testing.T) {
	b := worldgraph.NewBuilder()
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "base-1", Kind: worldgraph.Base}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "mid", Kind: worldgraph.Delivery, Terrain: worldgraph.Mountain}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "station-1", Kind: worldgraph.RefuelStation}))
	require.NoError(t, b.AddEdge("base-1", "mid", 1, 1))
	require.NoError(t, b.AddEdge("mid", "station-1", 1, 1))
	g := b.Build()

	// Truck forbids Mountain, so the only route to station-1 is blocked off.
	v := Vehicle{ID: "v1", Kind: access.Truck, Location: "base-1", Range: 100, Fuel: 50}
	_, ok := PlanRefuel(g, v, 0.9)
	assert.False(t, ok)
}

func TestLowFuelTrigger(t *testing.T) {
	v := Vehicle{Range: 100, Fuel: 59}
	assert.True(t, v.LowFuel(0.6))

	v.Fuel = 61
	assert.False(t, v.LowFuel(0.6))
}

func TestZoneNeedsTotalAndReset(t *testing.T) {
	z := Zone{Needs: map[string]float64{"water": 10, "food": 5}, Supplied: true}
	assert.Equal(t, 15.0, z.NeedsTotal())

	z.Reset()
	assert.False(t, z.Supplied)
}
