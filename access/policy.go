package access

import "github.com/larkspur-ops/reliefgrid/worldgraph"

// VehicleKind classifies a fleet vehicle for access-policy purposes.
type VehicleKind int

const (
	Truck VehicleKind = iota
	Van
	Boat
	Drone
	Helicopter
)

func (k VehicleKind) String() string {
	switch k {
	case Truck:
		return "Truck"
	case Van:
		return "Van"
	case Boat:
		return "Boat"
	case Drone:
		return "Drone"
	case Helicopter:
		return "Helicopter"
	default:
		return "Unknown"
	}
}

// forbidden is spec §4.4's authoritative contract: for each vehicle kind,
// the set of terrains it cannot traverse.
var forbidden = map[VehicleKind]map[worldgraph.Terrain]bool{
	Truck: {
		worldgraph.Mountain: true,
		worldgraph.Forest:   true,
		worldgraph.Coastal:  true,
	},
	Van: {
		worldgraph.Mountain: true,
		worldgraph.Coastal:  true,
	},
	Boat: {
		worldgraph.Urban:    true,
		worldgraph.Mountain: true,
		worldgraph.Forest:   true,
		worldgraph.Rural:    true,
	},
	Drone:      {},
	Helicopter: {worldgraph.Coastal: true},
}

// Forbidden returns the terrain set kind cannot traverse.
func Forbidden(kind VehicleKind) map[worldgraph.Terrain]bool {
	return forbidden[kind]
}

// Admits reports whether kind may traverse n: always true for Base and
// RefuelStation nodes regardless of terrain, otherwise true iff n's
// terrain is not in kind's forbidden set (spec §4.4).
func Admits(kind VehicleKind, n worldgraph.Node) bool {
	if n.Kind == worldgraph.Base || n.Kind == worldgraph.RefuelStation {
		return true
	}

	return !forbidden[kind][n.Terrain]
}
