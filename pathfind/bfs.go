package pathfind

import (
	"sort"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// BFSStrategy is a FIFO frontier search: explores nodes in non-decreasing
// hop count from start, with neighbors visited in lexicographic order for
// determinism (spec §4.6).
type BFSStrategy struct{}

func (BFSStrategy) Name() string { return "BFS" }

// bfsState keys the explored set by (node, parent) so the same node may be
// re-entered along a different incoming edge, per spec §4.6.
type bfsState struct {
	node, parent string
}

func (BFSStrategy) Find(g *worldgraph.Graph, _ *Oracle, start, goal string, avoidSet map[worldgraph.Terrain]bool) (Path, bool, error) {
	type frontierItem struct {
		node string
		path []string
		cost float64
		time float64
	}

	explored := make(map[bfsState]bool)
	queue := []frontierItem{{node: start, path: []string{start}}}
	explored[bfsState{node: start, parent: ""}] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.node == goal {
			return Path{Nodes: cur.path, Cost: cur.cost, Time: cur.time}, true, nil
		}

		edges, err := g.NeighborEdges(cur.node)
		if err != nil {
			return Path{}, false, err
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

		for _, e := range edges {
			if e.Overlay.Infinite() {
				continue
			}
			n, err := g.Node(e.To)
			if err != nil || !admissible(n, avoidSet) {
				continue
			}
			key := bfsState{node: e.To, parent: cur.node}
			if explored[key] {
				continue
			}
			explored[key] = true

			nextPath := make([]string, len(cur.path)+1)
			copy(nextPath, cur.path)
			nextPath[len(cur.path)] = e.To

			queue = append(queue, frontierItem{
				node: e.To,
				path: nextPath,
				cost: cur.cost + e.Overlay.Cost,
				time: cur.time + e.Overlay.Time,
			})
		}
	}

	return Path{}, false, nil
}
