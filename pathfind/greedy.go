package pathfind

import (
	"container/heap"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// GreedyStrategy orders its open set purely by oracle.H(node), breaking
// ties lexicographically by node key (spec §4.6).
type GreedyStrategy struct{}

func (GreedyStrategy) Name() string { return "GreedyBestFirst" }

type greedyItem struct {
	node string
	h    float64
	path []string
	cost float64
	time float64
}

type greedyPQ []*greedyItem

func (pq greedyPQ) Len() int { return len(pq) }
func (pq greedyPQ) Less(i, j int) bool {
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].node < pq[j].node
}
func (pq greedyPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *greedyPQ) Push(x interface{}) { *pq = append(*pq, x.(*greedyItem)) }
func (pq *greedyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func (GreedyStrategy) Find(g *worldgraph.Graph, oracle *Oracle, start, goal string, avoidSet map[worldgraph.Terrain]bool) (Path, bool, error) {
	if oracle == nil {
		oracle = NewOracle(g, goal)
	}

	visited := make(map[string]bool)
	pq := make(greedyPQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &greedyItem{node: start, h: oracle.H(start), path: []string{start}})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*greedyItem)
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true

		if cur.node == goal {
			return Path{Nodes: cur.path, Cost: cur.cost, Time: cur.time}, true, nil
		}

		edges, err := g.NeighborEdges(cur.node)
		if err != nil {
			return Path{}, false, err
		}

		for _, e := range edges {
			if visited[e.To] || e.Overlay.Infinite() {
				continue
			}
			n, err := g.Node(e.To)
			if err != nil || !admissible(n, avoidSet) {
				continue
			}

			nextPath := make([]string, len(cur.path)+1)
			copy(nextPath, cur.path)
			nextPath[len(cur.path)] = e.To

			heap.Push(&pq, &greedyItem{
				node: e.To,
				h:    oracle.H(e.To),
				path: nextPath,
				cost: cur.cost + e.Overlay.Cost,
				time: cur.time + e.Overlay.Time,
			})
		}
	}

	return Path{}, false, nil
}
