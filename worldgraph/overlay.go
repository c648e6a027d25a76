package worldgraph

import "math"

// ResetOverlay restores every edge's overlay to (BaseCost, BaseTime, false).
// Called by the Weather Manager at the start of every tick before applying
// weather multipliers; this is the single source of truth for the overlay
// snapshot (spec §4.1). Complexity: O(E).
func (g *Graph) ResetOverlay() {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	for key, e := range g.edges {
		g.overlay[key] = Overlay{Cost: e.BaseCost, Time: e.BaseTime, Blocked: false}
	}
}

// Overlay returns the current transient overlay for edge from→to.
// Returns ErrEdgeNotFound if the edge does not exist.
func (g *Graph) Overlay(from, to string) (Overlay, error) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	o, ok := g.overlay[edgeKey(from, to)]
	if !ok {
		return Overlay{}, ErrEdgeNotFound
	}

	return o, nil
}

// SetOverlay replaces the overlay for edge from→to wholesale. The weather
// and hazard managers write the overlay through ResetOverlay, ScaleOverlay
// and Block instead; Pathfinder, Oracle, and the Dispatch Executor never
// call it, treating the overlay as read-only for the duration of a dispatch.
func (g *Graph) SetOverlay(from, to string, o Overlay) error {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	key := edgeKey(from, to)
	if _, ok := g.edges[key]; !ok {
		return ErrEdgeNotFound
	}
	g.overlay[key] = o

	return nil
}

// ScaleOverlay multiplies the current overlay's cost and time by costMult
// and timeMult respectively. A no-op on an already-blocked edge (whose cost
// and time are already +Inf and stay that way under multiplication by any
// positive factor). Composes cumulatively across repeated calls within the
// same tick, matching the cumulative multiplier semantics of spec §4.2.
func (g *Graph) ScaleOverlay(from, to string, costMult, timeMult float64) error {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	key := edgeKey(from, to)
	o, ok := g.overlay[key]
	if !ok {
		return ErrEdgeNotFound
	}
	o.Cost *= costMult
	o.Time *= timeMult
	g.overlay[key] = o

	return nil
}

// Block marks edge from→to as blocked, driving its effective cost and time
// to +Inf per spec §3's world invariant.
func (g *Graph) Block(from, to string) error {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	key := edgeKey(from, to)
	if _, ok := g.overlay[key]; !ok {
		return ErrEdgeNotFound
	}
	g.overlay[key] = Overlay{Cost: math.Inf(1), Time: math.Inf(1), Blocked: true}

	return nil
}

// OverlayEdge pairs an Edge with its current Overlay; a convenience value
// the Pathfinder strategies use when expanding a node's neighbors.
type OverlayEdge struct {
	Edge
	Overlay
}

// NeighborEdges returns, for each outgoing neighbor of key, the base Edge
// paired with its live Overlay. Returns ErrNodeNotFound if key is absent.
func (g *Graph) NeighborEdges(key string) ([]OverlayEdge, error) {
	ids, err := g.NeighborIDs(key)
	if err != nil {
		return nil, err
	}
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]OverlayEdge, 0, len(ids))
	for _, to := range ids {
		ek := edgeKey(key, to)
		out = append(out, OverlayEdge{Edge: *g.edges[ek], Overlay: g.overlay[ek]})
	}

	return out, nil
}
