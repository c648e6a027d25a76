package weather

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

func buildGraph(t *testing.T) *worldgraph.Graph {
	t.Helper()
	b := worldgraph.NewBuilder()
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "base-1", Kind: worldgraph.Base, Region: "north"}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "zone-a", Kind: worldgraph.Delivery, Region: "north"}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "zone-b", Kind: worldgraph.Delivery, Region: "south"}))
	require.NoError(t, b.AddEdge("base-1", "zone-a", 10, 5))
	require.NoError(t, b.AddEdge("base-1", "zone-b", 8, 4))

	return b.Build()
}

func TestNewManagerInitializesNormalAndAppliesIdentityMultiplier(t *testing.T) {
	g := buildGraph(t)
	m := NewManager(g, rand.New(rand.NewSource(1)))

	assert.Equal(t, Normal, m.State("north"))
	assert.Equal(t, Normal, m.State("south"))

	o, err := g.Overlay("base-1", "zone-a")
	require.NoError(t, err)
	assert.Equal(t, 10.0, o.Cost)
	assert.Equal(t, 5.0, o.Time)
	assert.False(t, o.Blocked)
}

func TestStepIsDeterministicForFixedSeed(t *testing.T) {
	g1 := buildGraph(t)
	g2 := buildGraph(t)
	m1 := NewManager(g1, rand.New(rand.NewSource(7)))
	m2 := NewManager(g2, rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		m1.Step()
		m2.Step()
	}

	assert.Equal(t, m1.State("north"), m2.State("north"))
	assert.Equal(t, m1.State("south"), m2.State("south"))

	o1, err := g1.Overlay("base-1", "zone-a")
	require.NoError(t, err)
	o2, err := g2.Overlay("base-1", "zone-a")
	require.NoError(t, err)
	assert.Equal(t, o1, o2)
}

func TestApplyToGraphResetsBeforeScaling(t *testing.T) {
	g := buildGraph(t)
	m := NewManager(g, rand.New(rand.NewSource(3)))

	m.states["north"] = Storm
	m.applyToGraph()

	o, err := g.Overlay("base-1", "zone-a")
	require.NoError(t, err)
	mult := MultiplierFor(Storm)
	if !o.Blocked {
		assert.InDelta(t, 10.0*mult.CostMult, o.Cost, 1e-9)
		assert.InDelta(t, 5.0*mult.TimeMult, o.Time, 1e-9)
	}
}

func TestAdverseWeatherDetectsSevereStates(t *testing.T) {
	g := buildGraph(t)
	m := NewManager(g, rand.New(rand.NewSource(5)))
	m.states["south"] = Storm

	assert.True(t, m.AdverseWeather([]string{"base-1", "zone-b"}))
	assert.False(t, m.AdverseWeather([]string{"base-1", "zone-a"}))
}

func TestAllStatesReachableFromTransitionTable(t *testing.T) {
	reached := map[State]bool{Normal: true}
	frontier := []State{Normal}
	for len(frontier) > 0 {
		s := frontier[0]
		frontier = frontier[1:]
		for next := range transition[s] {
			if !reached[next] {
				reached[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	for _, s := range []State{Normal, LightRain, HeavyRain, Fog, Storm, Snow} {
		assert.True(t, reached[s], "state %s should be reachable", s)
	}
}
