package worldgraph

import (
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Builder accumulates nodes and edges on behalf of an external graph
// constructor (spec §1 treats geography-to-graph construction as out of
// scope) and produces a finished, read-only-from-here-on Graph.
type Builder struct {
	g *Graph
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{g: NewGraph()}
}

// AddNode stages a node for the graph under construction.
func (b *Builder) AddNode(n Node) error {
	return b.g.AddNode(n)
}

// AddEdge stages a directed edge for the graph under construction.
func (b *Builder) AddEdge(from, to string, baseCost, baseTime float64) error {
	return b.g.AddEdge(from, to, baseCost, baseTime)
}

// defaultTerrainWeights mirrors the original source's weighting: Urban and
// Rural at 0.4 each, the other three terrains at 0.1 each.
var defaultTerrainOptions = []Terrain{Urban, Rural, Mountain, Forest, Coastal}
var defaultTerrainWeights = []float64{0.4, 0.4, 0.1, 0.1, 0.1}

// AssignDefaultTerrain fills in Terrain for every node that has not already
// had one assigned (zero value is ambiguous with Urban, so this only
// applies to nodes flagged via the needsTerrain set at call time). Base
// nodes get Urban; everything else draws from the weighted distribution
// via rng, so the draw participates in the documented RNG order of spec §5.
//
// Call with the set of node keys that were never given an explicit terrain;
// RefuelStation keys should not be included since terrain is never
// consulted for them.
func (b *Builder) AssignDefaultTerrain(rng *rand.Rand, needsTerrain map[string]bool) error {
	for _, key := range b.g.Nodes() {
		if !needsTerrain[key] {
			continue
		}
		n, err := b.g.Node(key)
		if err != nil {
			return err
		}
		if n.Kind == Base {
			if err := b.g.SetNodeTerrain(key, Urban); err != nil {
				return err
			}
			continue
		}
		if err := b.g.SetNodeTerrain(key, weightedTerrain(rng)); err != nil {
			return err
		}
	}

	return nil
}

func weightedTerrain(rng *rand.Rand) Terrain {
	total := 0.0
	for _, w := range defaultTerrainWeights {
		total += w
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, w := range defaultTerrainWeights {
		acc += w
		if r < acc {
			return defaultTerrainOptions[i]
		}
	}

	return defaultTerrainOptions[len(defaultTerrainOptions)-1]
}

// Build finalizes the Builder and returns the Graph. The Builder should not
// be used afterward.
func (b *Builder) Build() *Graph {
	return b.g
}

// yamlNode/yamlEdge/yamlDoc are the on-disk shape for DecodeYAML/EncodeYAML;
// kept distinct from Node/Edge so the wire format can evolve independently
// of the in-memory enums.
type yamlNode struct {
	Key     string  `yaml:"key"`
	Kind    string  `yaml:"kind"`
	Lat     float64 `yaml:"lat"`
	Lon     float64 `yaml:"lon"`
	Region  string  `yaml:"region"`
	Terrain string  `yaml:"terrain,omitempty"`
	Density string  `yaml:"density,omitempty"`
}

type yamlEdge struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	BaseCost float64 `yaml:"base_cost"`
	BaseTime float64 `yaml:"base_time"`
}

type yamlDoc struct {
	Nodes []yamlNode `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges"`
}

var nodeKindNames = map[string]NodeKind{
	"base": Base, "hub": Hub, "refuel_station": RefuelStation, "delivery": Delivery,
}
var terrainNames = map[string]Terrain{
	"urban": Urban, "rural": Rural, "mountain": Mountain, "forest": Forest, "coastal": Coastal,
}
var densityNames = map[string]Density{
	"high": DensityHigh, "normal": DensityNormal, "low": DensityLow,
}

// DecodeYAML reads a graph snapshot file produced by an external graph
// builder (spec §1) and returns a finished Graph. It performs no terrain
// auto-assignment; call Builder.AssignDefaultTerrain separately if the
// snapshot omits terrain for some nodes.
func DecodeYAML(path string) (*Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yamlDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	b := NewBuilder()
	for _, n := range doc.Nodes {
		node := Node{
			Key:    n.Key,
			Kind:   nodeKindNames[n.Kind],
			Lat:    n.Lat,
			Lon:    n.Lon,
			Region: RegionTag(n.Region),
		}
		if t, ok := terrainNames[n.Terrain]; ok {
			node.Terrain = t
		}
		if d, ok := densityNames[n.Density]; ok {
			node.Density = d
		}
		if err := b.AddNode(node); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		if err := b.AddEdge(e.From, e.To, e.BaseCost, e.BaseTime); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

var nodeKindStrings = map[NodeKind]string{
	Base: "base", Hub: "hub", RefuelStation: "refuel_station", Delivery: "delivery",
}
var terrainStrings = map[Terrain]string{
	Urban: "urban", Rural: "rural", Mountain: "mountain", Forest: "forest", Coastal: "coastal",
}
var densityStrings = map[Density]string{
	DensityHigh: "high", DensityNormal: "normal", DensityLow: "low",
}

// EncodeYAML writes g to path in the same shape DecodeYAML reads, useful for
// tooling that snapshots a graph after external construction.
func EncodeYAML(g *Graph, path string) error {
	doc := yamlDoc{}
	for _, key := range g.Nodes() {
		n, err := g.Node(key)
		if err != nil {
			return err
		}
		doc.Nodes = append(doc.Nodes, yamlNode{
			Key:     n.Key,
			Kind:    nodeKindStrings[n.Kind],
			Lat:     n.Lat,
			Lon:     n.Lon,
			Region:  string(n.Region),
			Terrain: terrainStrings[n.Terrain],
			Density: densityStrings[n.Density],
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, yamlEdge{
			From: e.From, To: e.To, BaseCost: e.BaseCost, BaseTime: e.BaseTime,
		})
	}
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o644)
}
