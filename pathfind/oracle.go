package pathfind

import (
	"container/heap"
	"math"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// Oracle is the Heuristic Oracle (spec §4.5): for a fixed goal, the
// shortest-path cost from every node to goal over the graph's current
// overlay weights, computed once via Dijkstra on the reversed graph and
// cached for the lifetime of a single dispatch call.
type Oracle struct {
	goal string
	dist map[string]float64
}

// NewOracle computes h(node) for every node in g relative to goal, using
// the live overlay. Unreachable nodes map to +Inf.
func NewOracle(g *worldgraph.Graph, goal string) *Oracle {
	o := &Oracle{goal: goal, dist: make(map[string]float64)}

	incoming := reverseAdjacency(g)
	for _, key := range g.Nodes() {
		o.dist[key] = math.Inf(1)
	}
	if _, ok := o.dist[goal]; !ok {
		return o
	}
	o.dist[goal] = 0

	pq := make(distPQ, 0, len(o.dist))
	heap.Init(&pq)
	heap.Push(&pq, &distItem{id: goal, dist: 0})
	visited := make(map[string]bool, len(o.dist))

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		for _, pred := range incoming[item.id] {
			overlay, err := g.Overlay(pred, item.id)
			if err != nil || overlay.Infinite() {
				continue
			}
			cand := item.dist + overlay.Cost
			if cand < o.dist[pred] {
				o.dist[pred] = cand
				heap.Push(&pq, &distItem{id: pred, dist: cand})
			}
		}
	}

	return o
}

// H returns the estimated shortest-path cost from node to the oracle's
// goal. +Inf if unreachable or unknown.
func (o *Oracle) H(node string) float64 {
	d, ok := o.dist[node]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// reverseAdjacency builds a predecessor map (to -> []from) from g's current
// edge set, needed to run Dijkstra backward from a goal.
func reverseAdjacency(g *worldgraph.Graph) map[string][]string {
	out := make(map[string][]string)
	for _, e := range g.Edges() {
		out[e.To] = append(out[e.To], e.From)
	}

	return out
}

type distItem struct {
	id   string
	dist float64
}

type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
