package pathfind

import (
	"container/heap"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// AStarStrategy orders its open set by g(n)+h(n), ties broken
// lexicographically, and re-opens a closed node only if a strictly smaller
// g is found for it later (spec §4.6). Paths are reconstructed from a
// parent-chain map rather than carried on each heap entry.
type AStarStrategy struct{}

func (AStarStrategy) Name() string { return "AStar" }

type aStarItem struct {
	node string
	f    float64
}

type aStarPQ []*aStarItem

func (pq aStarPQ) Len() int { return len(pq) }
func (pq aStarPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].node < pq[j].node
}
func (pq aStarPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *aStarPQ) Push(x interface{}) { *pq = append(*pq, x.(*aStarItem)) }
func (pq *aStarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func (AStarStrategy) Find(g *worldgraph.Graph, oracle *Oracle, start, goal string, avoidSet map[worldgraph.Terrain]bool) (Path, bool, error) {
	if oracle == nil {
		oracle = NewOracle(g, goal)
	}

	gScore := map[string]float64{start: 0}
	tScore := map[string]float64{start: 0}
	parent := make(map[string]string)
	closed := make(map[string]bool)

	pq := make(aStarPQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &aStarItem{node: start, f: oracle.H(start)})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*aStarItem)
		if closed[cur.node] {
			continue
		}

		if cur.node == goal {
			return reconstructPath(parent, start, goal, gScore[goal], tScore[goal]), true, nil
		}
		closed[cur.node] = true

		edges, err := g.NeighborEdges(cur.node)
		if err != nil {
			return Path{}, false, err
		}

		for _, e := range edges {
			if e.Overlay.Infinite() {
				continue
			}
			n, err := g.Node(e.To)
			if err != nil || !admissible(n, avoidSet) {
				continue
			}

			candG := gScore[cur.node] + e.Overlay.Cost
			existingG, known := gScore[e.To]
			if known && candG >= existingG {
				continue
			}

			gScore[e.To] = candG
			tScore[e.To] = tScore[cur.node] + e.Overlay.Time
			parent[e.To] = cur.node
			delete(closed, e.To) // re-open on strictly smaller g

			heap.Push(&pq, &aStarItem{node: e.To, f: candG + oracle.H(e.To)})
		}
	}

	return Path{}, false, nil
}

func reconstructPath(parent map[string]string, start, goal string, cost, time float64) Path {
	nodes := []string{goal}
	cur := goal
	for cur != start {
		p, ok := parent[cur]
		if !ok {
			break
		}
		nodes = append(nodes, p)
		cur = p
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Cost: cost, Time: time}
}
