package weather

import (
	"math/rand"
	"sort"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// Manager owns the per-region weather state and is the single source of
// truth for resetting and rewriting the World Graph overlay at the start of
// a weather tick (spec §4.1). It keeps no reference to the base-weight
// snapshot itself; Graph.ResetOverlay already owns that.
type Manager struct {
	graph  *worldgraph.Graph
	rng    *rand.Rand
	states map[worldgraph.RegionTag]State
}

// NewManager builds a Manager over g, initializing every region present in
// g's nodes to Normal, and applies that initial state to the overlay once
// so a Manager is immediately consistent before any Step call.
func NewManager(g *worldgraph.Graph, rng *rand.Rand) *Manager {
	m := &Manager{
		graph:  g,
		rng:    rng,
		states: make(map[worldgraph.RegionTag]State),
	}
	for _, key := range g.Nodes() {
		n, err := g.Node(key)
		if err != nil {
			continue
		}
		if _, ok := m.states[n.Region]; !ok {
			m.states[n.Region] = Normal
		}
	}
	m.applyToGraph()

	return m
}

// State returns the current weather state of region.
func (m *Manager) State(region worldgraph.RegionTag) State {
	return m.states[region]
}

// Step advances every region's weather state by one sample from the
// transition table, then rewrites the overlay from scratch (spec §4.1:
// "owns the base-weight snapshot and is the single source of truth for
// resetting the overlay at tick start"). Regions are visited in sorted
// order so RNG draws happen in a documented, reproducible sequence.
func (m *Manager) Step() {
	regions := make([]worldgraph.RegionTag, 0, len(m.states))
	for r := range m.states {
		regions = append(regions, r)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })

	for _, r := range regions {
		m.states[r] = m.nextState(m.states[r])
	}
	m.applyToGraph()
}

func (m *Manager) nextState(current State) State {
	row, ok := transition[current]
	if !ok {
		return current
	}
	options := make([]State, 0, len(row))
	for s := range row {
		options = append(options, s)
	}
	sort.Slice(options, func(i, j int) bool { return options[i] < options[j] })

	total := 0.0
	for _, s := range options {
		total += row[s]
	}
	draw := m.rng.Float64() * total
	acc := 0.0
	for _, s := range options {
		acc += row[s]
		if draw < acc {
			return s
		}
	}

	return options[len(options)-1]
}

// applyToGraph resets the overlay to base weights, then for every edge
// scales cost/time by its From-region's multiplier and rolls the
// corresponding block probability. Edges are visited in sorted (From, To)
// order so the block-probability RNG draws are reproducible for a seed.
func (m *Manager) applyToGraph() {
	m.graph.ResetOverlay()

	for _, e := range m.graph.Edges() {
		fromNode, err := m.graph.Node(e.From)
		if err != nil {
			continue
		}
		mult := MultiplierFor(m.states[fromNode.Region])
		_ = m.graph.ScaleOverlay(e.From, e.To, mult.CostMult, mult.TimeMult)

		if m.rng.Float64() < mult.BlockProb {
			_ = m.graph.Block(e.From, e.To)
		}
	}
}

// AdverseWeather reports whether any node along route sits in a region
// currently experiencing HeavyRain, Storm, or Snow (spec §7's
// AdverseWeather rejection candidate). Nodes with no region are skipped.
func (m *Manager) AdverseWeather(route []string) bool {
	for _, key := range route {
		n, err := m.graph.Node(key)
		if err != nil {
			continue
		}
		if n.Region == "" {
			continue
		}
		switch m.states[n.Region] {
		case HeavyRain, Storm, Snow:
			return true
		}
	}

	return false
}
