package worldgraph

import "math"

// NodeKind classifies the role a Node plays in dispatch and routing.
type NodeKind int

const (
	// Base is a vehicle home node; never a delivery target, always admissible.
	Base NodeKind = iota
	// Hub is an intermediate transfer node within a region.
	Hub
	// RefuelStation resets a vehicle's fuel to its range on arrival; terrain-exempt.
	RefuelStation
	// Delivery is a target node backed by an AffectedZone.
	Delivery
)

// String renders the NodeKind for logs and test failure messages.
func (k NodeKind) String() string {
	switch k {
	case Base:
		return "Base"
	case Hub:
		return "Hub"
	case RefuelStation:
		return "RefuelStation"
	case Delivery:
		return "Delivery"
	default:
		return "Unknown"
	}
}

// Terrain classifies the ground a Delivery or Hub node sits on. Base and
// RefuelStation nodes carry the zero value and it is never consulted for them.
type Terrain int

const (
	Urban Terrain = iota
	Rural
	Mountain
	Forest
	Coastal
)

func (t Terrain) String() string {
	switch t {
	case Urban:
		return "Urban"
	case Rural:
		return "Rural"
	case Mountain:
		return "Mountain"
	case Forest:
		return "Forest"
	case Coastal:
		return "Coastal"
	default:
		return "Unknown"
	}
}

// Density classifies population density at a Delivery or Hub node.
type Density int

const (
	DensityNormal Density = iota
	DensityHigh
	DensityLow
)

func (d Density) String() string {
	switch d {
	case DensityHigh:
		return "High"
	case DensityLow:
		return "Low"
	default:
		return "Normal"
	}
}

// RegionTag identifies the weather/administrative region a node belongs to.
type RegionTag string

// Node is a stable, string-keyed vertex in the World Graph.
type Node struct {
	Key     string
	Kind    NodeKind
	Lat     float64
	Lon     float64
	Region  RegionTag
	Terrain Terrain // zero value, ignored, for Base/RefuelStation
	Density Density
}

// Edge is a directed connection with an immutable base cost/time. The
// transient overlay for an edge lives separately in Graph.overlay, never here.
type Edge struct {
	From     string
	To       string
	BaseCost float64
	BaseTime float64
}

// Overlay is the per-tick effective (cost, time, blocked) derived from an
// Edge's base weights, the active weather of its From region, and any active
// hazards. A blocked edge has effective cost and time of +Inf.
type Overlay struct {
	Cost    float64
	Time    float64
	Blocked bool
}

// Infinite reports whether the overlay represents an impassable edge.
func (o Overlay) Infinite() bool {
	return o.Blocked || math.IsInf(o.Cost, 1) || math.IsInf(o.Time, 1)
}

func edgeKey(from, to string) string {
	return from + "\x00" + to
}
