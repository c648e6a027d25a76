package worldgraph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSmallGraph(t *testing.T) *Graph {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, b.AddNode(Node{Key: "base-1", Kind: Base, Region: "north"}))
	require.NoError(t, b.AddNode(Node{Key: "hub-1", Kind: Hub, Region: "north"}))
	require.NoError(t, b.AddNode(Node{Key: "zone-a", Kind: Delivery, Region: "north"}))
	require.NoError(t, b.AddNode(Node{Key: "zone-b", Kind: Delivery, Region: "north"}))
	require.NoError(t, b.AddEdge("base-1", "hub-1", 10, 5))
	require.NoError(t, b.AddEdge("hub-1", "zone-a", 4, 2))
	require.NoError(t, b.AddEdge("hub-1", "zone-b", 6, 3))

	return b.Build()
}

func TestAddNodeRejectsEmptyKeyAndDuplicates(t *testing.T) {
	g := NewGraph()
	assert.ErrorIs(t, g.AddNode(Node{Key: ""}), ErrEmptyNodeKey)
	require.NoError(t, g.AddNode(Node{Key: "x"}))
	assert.ErrorIs(t, g.AddNode(Node{Key: "x"}), ErrNodeExists)
}

func TestAddEdgeValidation(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(Node{Key: "a"}))
	require.NoError(t, g.AddNode(Node{Key: "b"}))

	assert.ErrorIs(t, g.AddEdge("a", "a", 1, 1), ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("a", "missing", 1, 1), ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("a", "b", -1, 1), ErrNegativeWeight)

	require.NoError(t, g.AddEdge("a", "b", 1, 1))
	assert.ErrorIs(t, g.AddEdge("a", "b", 1, 1), ErrEdgeExists)
}

func TestNeighborIDsSortedDeterministic(t *testing.T) {
	g := buildSmallGraph(t)
	ids, err := g.NeighborIDs("hub-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"zone-a", "zone-b"}, ids)
}

func TestNodesAndEdgesSorted(t *testing.T) {
	g := buildSmallGraph(t)
	assert.Equal(t, []string{"base-1", "hub-1", "zone-a", "zone-b"}, g.Nodes())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "base-1", edges[0].From)
	assert.Equal(t, "hub-1", edges[1].From)
}

func TestSetNodeTerrainAndAssignDefaultTerrainIsDeterministicForSeed(t *testing.T) {
	g1 := buildSmallGraph(t)
	g2 := buildSmallGraph(t)

	need := map[string]bool{"hub-1": true, "zone-a": true, "zone-b": true}

	b1 := &Builder{g: g1}
	b2 := &Builder{g: g2}
	require.NoError(t, b1.AssignDefaultTerrain(rand.New(rand.NewSource(42)), need))
	require.NoError(t, b2.AssignDefaultTerrain(rand.New(rand.NewSource(42)), need))

	for _, key := range []string{"hub-1", "zone-a", "zone-b"} {
		n1, err := g1.Node(key)
		require.NoError(t, err)
		n2, err := g2.Node(key)
		require.NoError(t, err)
		assert.Equal(t, n1.Terrain, n2.Terrain)
	}
}

func TestAssignDefaultTerrainGivesBaseUrban(t *testing.T) {
	g := buildSmallGraph(t)
	b := &Builder{g: g}
	require.NoError(t, b.AssignDefaultTerrain(rand.New(rand.NewSource(1)), map[string]bool{"base-1": true}))
	n, err := g.Node("base-1")
	require.NoError(t, err)
	assert.Equal(t, Urban, n.Terrain)
}
