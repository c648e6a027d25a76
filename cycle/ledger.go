package cycle

import (
	"github.com/larkspur-ops/reliefgrid/access"
	"github.com/larkspur-ops/reliefgrid/fleet"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// Statistics is the run-end ledger of spec §6: counts of deliveries,
// failures by cause, terrain distribution and access, per-vehicle-kind
// success/failure, refuel counts by region, fuel replenished, average
// remaining window time, critical-window events, and mean per-delivery
// time. Grounded on the original source's `estatisticas` dict
// (simulacao_integrada.py), generalized from its hardcoded counters to
// open maps keyed by the Go enums.
type Statistics struct {
	DeliveriesTotal      int
	FailuresByCause      map[fleet.FailureKind]int
	TerrainDistribution  map[worldgraph.Terrain]int
	TerrainAccess        map[worldgraph.Terrain]int
	SuccessByVehicleKind map[access.VehicleKind]int
	FailureByVehicleKind map[access.VehicleKind]int
	RefuelsByRegion      map[worldgraph.RegionTag]int
	FuelReplenished      float64
	CriticalWindowEvents int

	totalDeliveryTime      float64
	windowRemainingSum     float64
	windowRemainingSamples int
}

// NewStatistics builds an empty ledger and precomputes TerrainDistribution
// from g's current nodes (a static property of the graph, not something
// that changes across ticks).
func NewStatistics(g *worldgraph.Graph) *Statistics {
	s := &Statistics{
		FailuresByCause:      make(map[fleet.FailureKind]int),
		TerrainDistribution:  make(map[worldgraph.Terrain]int),
		TerrainAccess:        make(map[worldgraph.Terrain]int),
		SuccessByVehicleKind: make(map[access.VehicleKind]int),
		FailureByVehicleKind: make(map[access.VehicleKind]int),
		RefuelsByRegion:      make(map[worldgraph.RegionTag]int),
	}
	for _, key := range g.Nodes() {
		n, err := g.Node(key)
		if err != nil {
			continue
		}
		if n.Kind == worldgraph.Delivery || n.Kind == worldgraph.Hub {
			s.TerrainDistribution[n.Terrain]++
		}
	}

	return s
}

// RecordAccessAttempt counts one dispatch decision that examined a node of
// terrain t, regardless of whether the dispatch went on to succeed.
func (s *Statistics) RecordAccessAttempt(t worldgraph.Terrain) {
	s.TerrainAccess[t]++
}

// RecordSuccess counts one completed delivery by kind and folds
// deliveryTime into the running mean.
func (s *Statistics) RecordSuccess(kind access.VehicleKind, deliveryTime float64) {
	s.DeliveriesTotal++
	s.SuccessByVehicleKind[kind]++
	s.totalDeliveryTime += deliveryTime
}

// RecordFailure counts one failed dispatch attempt by kind and cause.
func (s *Statistics) RecordFailure(kind access.VehicleKind, cause fleet.FailureKind) {
	s.FailureByVehicleKind[kind]++
	s.FailuresByCause[cause]++
}

// RecordRefuel counts one completed refuel leg in region and the fuel units
// it restored.
func (s *Statistics) RecordRefuel(region worldgraph.RegionTag, fuelAmount float64) {
	s.RefuelsByRegion[region]++
	s.FuelReplenished += fuelAmount
}

// RecordWindowObservation folds a zone window's remaining time, at the
// moment a dispatch was attempted against it, into the running average, and
// counts it as a critical-window event if the window was already in its
// critical period.
func (s *Statistics) RecordWindowObservation(remaining float64, critical bool) {
	s.windowRemainingSum += remaining
	s.windowRemainingSamples++
	if critical {
		s.CriticalWindowEvents++
	}
}

// MeanDeliveryTime returns the mean simulated hours per successful
// delivery, or 0 if none have succeeded yet.
func (s *Statistics) MeanDeliveryTime() float64 {
	if s.DeliveriesTotal == 0 {
		return 0
	}

	return s.totalDeliveryTime / float64(s.DeliveriesTotal)
}

// AverageRemainingWindowTime returns the mean window.Remaining observed
// across every RecordWindowObservation call, or 0 if none were recorded.
func (s *Statistics) AverageRemainingWindowTime() float64 {
	if s.windowRemainingSamples == 0 {
		return 0
	}

	return s.windowRemainingSum / float64(s.windowRemainingSamples)
}
