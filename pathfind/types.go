package pathfind

import "github.com/larkspur-ops/reliefgrid/worldgraph"

// Path is a sequence of node keys from start to goal inclusive, along with
// its accumulated overlay cost and time.
type Path struct {
	Nodes []string
	Cost  float64
	Time  float64
}

// Strategy is the shared contract every search algorithm implements, so the
// Algorithm Selector can benchmark them interchangeably (spec §4.6/§4.7).
type Strategy interface {
	// Name identifies the strategy for selector reporting and logging.
	Name() string

	// Find searches g's live overlay from start to goal, skipping blocked
	// edges and any neighbor whose terrain is in avoidSet (Base and
	// RefuelStation nodes are exempt from avoidSet regardless of terrain,
	// mirroring the access package's policy). oracle may be nil for
	// strategies that do not consult a heuristic.
	Find(g *worldgraph.Graph, oracle *Oracle, start, goal string, avoidSet map[worldgraph.Terrain]bool) (Path, bool, error)
}

// admissible reports whether n may appear as an intermediate/terminal node
// in a path under avoidSet: Base and RefuelStation nodes are always
// admissible; otherwise n's terrain must not be in avoidSet.
func admissible(n worldgraph.Node, avoidSet map[worldgraph.Terrain]bool) bool {
	if n.Kind == worldgraph.Base || n.Kind == worldgraph.RefuelStation {
		return true
	}

	return !avoidSet[n.Terrain]
}
