package scorer

import (
	"math"
	"sort"

	"github.com/larkspur-ops/reliefgrid/fleet"
	"github.com/larkspur-ops/reliefgrid/timewindow"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// dMaxKM is the great-circle distance beyond which distanceScore floors at
// zero (spec §4.8).
const dMaxKM = 300.0

// earthRadiusKM is the sphere radius used by the haversine distance below.
const earthRadiusKM = 6371.0

// Candidate pairs a zone with its computed dispatch score.
type Candidate struct {
	Zone  *fleet.Zone
	Score float64
}

// Rank builds the candidate list for vehicle v sitting at node u (spec
// §4.8: window accessible, not yet supplied, capacity sufficient for the
// zone's total needs), scores each one, and returns them sorted by score
// descending, ties broken by zone ID ascending.
func Rank(g *worldgraph.Graph, v fleet.Vehicle, zones []*fleet.Zone, now timewindow.SimTime) ([]Candidate, error) {
	u, err := g.Node(v.Location)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(zones))
	for _, z := range zones {
		if z.Supplied {
			continue
		}
		if !z.Window.Accessible(now) {
			continue
		}
		if v.Capacity < z.NeedsTotal() {
			continue
		}
		zNode, err := g.Node(z.NodeKey)
		if err != nil {
			continue
		}
		candidates = append(candidates, Candidate{Zone: z, Score: total(u, zNode, *z, now)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Zone.ID < candidates[j].Zone.ID
	})

	return candidates, nil
}

func total(u, z worldgraph.Node, zone fleet.Zone, now timewindow.SimTime) float64 {
	return 0.5*emergencyScore(zone, now) + 0.4*distanceScore(u, z) + 0.1*regionBonus(u, z)
}

func emergencyScore(z fleet.Zone, now timewindow.SimTime) float64 {
	return 2*float64(z.Priority) + z.Population/1000 + z.NeedsTotal()/300 + 2*z.Window.Criticality(now)
}

func distanceScore(u, z worldgraph.Node) float64 {
	d := haversineKM(u.Lat, u.Lon, z.Lat, z.Lon)
	ratio := d / dMaxKM
	if ratio > 1 {
		ratio = 1
	}

	return 1 - ratio
}

func regionBonus(u, z worldgraph.Node) float64 {
	if u.Region == z.Region {
		return 0.1
	}

	return 0
}

// haversineKM returns the great-circle distance in kilometers between two
// (lat, lon) points given in degrees.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
