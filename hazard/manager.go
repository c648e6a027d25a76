package hazard

import (
	"math"
	"math/rand"
	"sort"

	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// densityMultipliers mirrors the original source's multiplicadores_densidade.
var densityMultipliers = map[worldgraph.Density]densityMultiplier{
	worldgraph.DensityHigh:   {CostMult: 1.3, TimeMult: 1.2},
	worldgraph.DensityNormal: {CostMult: 1.0, TimeMult: 1.0},
	worldgraph.DensityLow:    {CostMult: 0.8, TimeMult: 0.9},
}

// Manager owns the active obstacle/event maps and applies their effects to
// a worldgraph.Graph overlay on top of whatever the Weather Manager already
// wrote this tick (spec §4.2: "Multipliers compose multiplicatively with
// weather").
type Manager struct {
	graph *worldgraph.Graph
	rng   *rand.Rand

	obstacles map[string]*Obstacle       // keyed by node
	events    map[[2]string]*Event       // keyed by (from, to)
	pSpawn    float64
}

// NewManager builds an empty Manager over g with the default spawn
// probability of 0.3 (spec §4.2).
func NewManager(g *worldgraph.Graph, rng *rand.Rand) *Manager {
	return &Manager{
		graph:     g,
		rng:       rng,
		obstacles: make(map[string]*Obstacle),
		events:    make(map[[2]string]*Event),
		pSpawn:    0.3,
	}
}

// SetSpawnProbability overrides the default pSpawn for tests or scenario
// tuning.
func (m *Manager) SetSpawnProbability(p float64) {
	m.pSpawn = p
}

// Step runs one full Event Manager tick: decrement/expire existing hazards,
// spawn new ones, then reapply every active hazard's effect to the
// overlay. Matches the three-step contract of spec §4.2.
func (m *Manager) Step() {
	m.decrementAndExpire()
	m.spawnRandom()
	m.applyEffects()
}

func (m *Manager) decrementAndExpire() {
	nodes := make([]string, 0, len(m.obstacles))
	for n := range m.obstacles {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	for _, n := range nodes {
		o := m.obstacles[n]
		o.Countdown--
		if o.Countdown <= 0 {
			profile := obstacleProfiles[o.Kind]
			if m.rng.Float64() < profile.RemovalProb {
				delete(m.obstacles, n)
			} else {
				o.Countdown = 1
			}
		}
	}

	edges := make([][2]string, 0, len(m.events))
	for e := range m.events {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	for _, e := range edges {
		ev := m.events[e]
		ev.Countdown--
		if ev.Countdown <= 0 {
			profile := eventProfiles[ev.Kind]
			if m.rng.Float64() < profile.RemovalProb {
				delete(m.events, e)
			} else {
				ev.Countdown = 1
			}
		}
	}
}

func (m *Manager) spawnRandom() {
	for _, key := range m.graph.Nodes() {
		if _, active := m.obstacles[key]; active {
			continue
		}
		n, err := m.graph.Node(key)
		if err != nil || n.Kind == worldgraph.Base {
			continue
		}
		if m.rng.Float64() < m.pSpawn {
			m.spawnObstacle(key)
		}
	}

	for _, e := range m.graph.Edges() {
		key := [2]string{e.From, e.To}
		if _, active := m.events[key]; active {
			continue
		}
		if m.rng.Float64() < m.pSpawn {
			m.spawnEvent(e.From, e.To)
		}
	}
}

func (m *Manager) spawnObstacle(node string) {
	kind := obstacleKinds[m.rng.Intn(len(obstacleKinds))]
	profile := obstacleProfiles[kind]
	countdown := profile.DurationMin
	if profile.DurationMax > profile.DurationMin {
		countdown += m.rng.Intn(profile.DurationMax - profile.DurationMin + 1)
	}
	m.obstacles[node] = &Obstacle{Kind: kind, Node: node, Countdown: countdown}
}

func (m *Manager) spawnEvent(from, to string) {
	kind := eventKinds[m.rng.Intn(len(eventKinds))]
	profile := eventProfiles[kind]
	countdown := profile.DurationMin
	if profile.DurationMax > profile.DurationMin {
		countdown += m.rng.Intn(profile.DurationMax - profile.DurationMin + 1)
	}
	m.events[[2]string{from, to}] = &Event{Kind: kind, From: from, To: to, Countdown: countdown}
}

// applyEffects layers density, then obstacle, then event multipliers onto
// the current overlay, in that order, mirroring aplicar_efeitos. Obstacle
// and density multipliers reach every edge incident to the obstacled node,
// incoming and outgoing. Visiting order is sorted for reproducibility.
func (m *Manager) applyEffects() {
	nodes := make([]string, 0, len(m.obstacles))
	for n := range m.obstacles {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	edges := m.graph.Edges()
	scaleIncident := func(node string, costMult, timeMult float64) {
		for _, e := range edges {
			if e.From == node || e.To == node {
				_ = m.graph.ScaleOverlay(e.From, e.To, costMult, timeMult)
			}
		}
	}

	for _, node := range nodes {
		n, err := m.graph.Node(node)
		if err != nil {
			continue
		}
		dm := densityMultipliers[n.Density]
		scaleIncident(node, dm.CostMult, dm.TimeMult)
	}

	for _, node := range nodes {
		profile := obstacleProfiles[m.obstacles[node].Kind]
		scaleIncident(node, profile.CostMult, profile.TimeMult)
	}

	edges := make([][2]string, 0, len(m.events))
	for e := range m.events {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	for _, e := range edges {
		ev := m.events[e]
		profile := eventProfiles[ev.Kind]
		_ = m.graph.ScaleOverlay(e[0], e[1], profile.CostMult, profile.TimeMult)
	}
}

// ImpactOfPath returns the product of obstacle multipliers for nodes on
// path and event multipliers for edges on path, clamped to spec §4.2's
// documented ceilings so effects cannot compound without bound across long
// paths.
func (m *Manager) ImpactOfPath(path []string) Impact {
	if len(path) == 0 {
		return Impact{CostImpact: 1.0, TimeImpact: 1.0}
	}

	costImpact := 1.0
	timeImpact := 1.0

	for _, node := range path {
		if o, ok := m.obstacles[node]; ok {
			profile := obstacleProfiles[o.Kind]
			costImpact *= profile.CostMult
			timeImpact *= profile.TimeMult
		}
	}
	for i := 0; i < len(path)-1; i++ {
		key := [2]string{path[i], path[i+1]}
		if ev, ok := m.events[key]; ok {
			profile := eventProfiles[ev.Kind]
			costImpact *= profile.CostMult
			timeImpact *= profile.TimeMult
		}
	}

	return Impact{
		CostImpact: math.Min(costImpact, costImpactCeiling),
		TimeImpact: math.Min(timeImpact, timeImpactCeiling),
	}
}

// Obstacles returns the node keys currently carrying an active obstacle,
// sorted for deterministic reporting.
func (m *Manager) Obstacles() []string {
	out := make([]string, 0, len(m.obstacles))
	for n := range m.obstacles {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Events returns the (from, to) pairs currently carrying an active dynamic
// event, sorted for deterministic reporting.
func (m *Manager) Events() [][2]string {
	out := make([][2]string, 0, len(m.events))
	for e := range m.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
