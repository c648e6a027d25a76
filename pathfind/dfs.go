package pathfind

import (
	"sort"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// DFSStrategy is a stack-based frontier search with neighbors visited in
// reverse-lexicographic order, otherwise identical to BFSStrategy (spec
// §4.6: "as BFS but frontier is a stack and neighbors sorted in reverse").
type DFSStrategy struct{}

func (DFSStrategy) Name() string { return "DFS" }

func (DFSStrategy) Find(g *worldgraph.Graph, _ *Oracle, start, goal string, avoidSet map[worldgraph.Terrain]bool) (Path, bool, error) {
	type frontierItem struct {
		node string
		path []string
		cost float64
		time float64
	}

	explored := make(map[bfsState]bool)
	stack := []frontierItem{{node: start, path: []string{start}}}
	explored[bfsState{node: start, parent: ""}] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.node == goal {
			return Path{Nodes: cur.path, Cost: cur.cost, Time: cur.time}, true, nil
		}

		edges, err := g.NeighborEdges(cur.node)
		if err != nil {
			return Path{}, false, err
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i].To > edges[j].To })

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

			stack = append(stack, frontierItem{
				node: e.To,
				path: nextPath,
				cost: cur.cost + e.Overlay.Cost,
				time: cur.time + e.Overlay.Time,
			})
		}
	}

	return Path{}, false, nil
}
