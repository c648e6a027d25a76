package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// diamond builds a 4-node diamond: start has two routes to goal, one
// cheaper (through "low") and one dearer (through "high"). Only A* is
// expected to return the cheap route; BFS, DFS and Greedy reach goal
// through "high" first.
func diamond(t *testing.T) *worldgraph.Graph {
	t.Helper()
	b := worldgraph.NewBuilder()
	for _, key := range []string{"start", "low", "high", "goal"} {
		require.NoError(t, b.AddNode(worldgraph.Node{Key: key, Kind: worldgraph.Delivery, Region: "r"}))
	}
	require.NoError(t, b.AddEdge("start", "low", 1, 1))
	require.NoError(t, b.AddEdge("start", "high", 5, 5))
	require.NoError(t, b.AddEdge("low", "goal", 1, 1))
	require.NoError(t, b.AddEdge("high", "goal", 1, 1))

	return b.Build()
}

func allStrategies() []Strategy {
	return []Strategy{BFSStrategy{}, DFSStrategy{}, GreedyStrategy{}, AStarStrategy{}}
}

func TestAllStrategiesFindAPath(t *testing.T) {
	g := diamond(t)
	for _, s := range allStrategies() {
		oracle := NewOracle(g, "goal")
		path, found, err := s.Find(g, oracle, "start", "goal", nil)
		require.NoError(t, err, s.Name())
		require.True(t, found, s.Name())
		assert.Equal(t, "start", path.Nodes[0], s.Name())
		assert.Equal(t, "goal", path.Nodes[len(path.Nodes)-1], s.Name())
	}
}

func TestAStarFindsOptimalCost(t *testing.T) {
	g := diamond(t)
	oracle := NewOracle(g, "goal")
	path, found, err := AStarStrategy{}.Find(g, oracle, "start", "goal", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"start", "low", "goal"}, path.Nodes)
	assert.Equal(t, 2.0, path.Cost)
}

func TestBlockedEdgeNeverAppearsInPath(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.Block("low", "goal"))

	for _, s := range allStrategies() {
		oracle := NewOracle(g, "goal")
		path, found, err := s.Find(g, oracle, "start", "goal", nil)
		require.NoError(t, err, s.Name())
		if found {
			for i := 0; i < len(path.Nodes)-1; i++ {
				assert.False(t, path.Nodes[i] == "low" && path.Nodes[i+1] == "goal", s.Name())
			}
		}
	}
}

func TestAvoidSetExcludesTerrain(t *testing.T) {
	b := worldgraph.NewBuilder()
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "start", Kind: worldgraph.Delivery, Terrain: worldgraph.Urban}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "mid", Kind: worldgraph.Delivery, Terrain: worldgraph.Mountain}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "goal", Kind: worldgraph.Delivery, Terrain: worldgraph.Urban}))
	require.NoError(t, b.AddEdge("start", "mid", 1, 1))
	require.NoError(t, b.AddEdge("mid", "goal", 1, 1))
	g := b.Build()

	avoid := map[worldgraph.Terrain]bool{worldgraph.Mountain: true}
	for _, s := range allStrategies() {
		oracle := NewOracle(g, "goal")
		_, found, err := s.Find(g, oracle, "start", "goal", avoid)
		require.NoError(t, err, s.Name())
		assert.False(t, found, s.Name())
	}
}

func TestDeterministicAcrossRepeatedCalls(t *testing.T) {
	g := diamond(t)
	for _, s := range allStrategies() {
		oracle := NewOracle(g, "goal")
		p1, _, err := s.Find(g, oracle, "start", "goal", nil)
		require.NoError(t, err)
		p2, _, err := s.Find(g, oracle, "start", "goal", nil)
		require.NoError(t, err)
		assert.Equal(t, p1, p2, s.Name())
	}
}

func TestOracleUnreachableNodeIsInfinite(t *testing.T) {
	b := worldgraph.NewBuilder()
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "a"}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "isolated"}))
	g := b.Build()

	oracle := NewOracle(g, "a")
	assert.True(t, oracle.H("isolated") > 1e300)
}

func TestNoRouteFoundWhenGraphDisconnected(t *testing.T) {
	b := worldgraph.NewBuilder()
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "start"}))
	require.NoError(t, b.AddNode(worldgraph.Node{Key: "goal"}))
	g := b.Build()

	for _, s := range allStrategies() {
		oracle := NewOracle(g, "goal")
		_, found, err := s.Find(g, oracle, "start", "goal", nil)
		require.NoError(t, err, s.Name())
		assert.False(t, found, s.Name())
	}
}
