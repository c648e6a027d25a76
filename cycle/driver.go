package cycle

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/larkspur-ops/reliefgrid/access"
	"github.com/larkspur-ops/reliefgrid/config"
	"github.com/larkspur-ops/reliefgrid/fleet"
	"github.com/larkspur-ops/reliefgrid/hazard"
	"github.com/larkspur-ops/reliefgrid/pathfind"
	"github.com/larkspur-ops/reliefgrid/scorer"
	"github.com/larkspur-ops/reliefgrid/selector"
	"github.com/larkspur-ops/reliefgrid/telemetry"
	"github.com/larkspur-ops/reliefgrid/timewindow"
	"github.com/larkspur-ops/reliefgrid/weather"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// Driver is the Cycle Driver (spec §4.11, C12): it owns the tick loop over
// a fixed graph, fleet, and zone set, and accumulates a Statistics ledger
// as it runs. One Driver corresponds to one simulated run, identified by
// RunID, grounded on the original source's SimulacaoEmergencia.
type Driver struct {
	RunID string

	graph      *worldgraph.Graph
	cfg        *config.Config
	weatherMgr *weather.Manager
	hazardMgr  *hazard.Manager
	rng        *rand.Rand
	strategy   pathfind.Strategy
	logger     *telemetry.Logger
	metrics    *telemetry.Registry
	stats      *Statistics

	Vehicles []*fleet.Vehicle
	Zones    []*fleet.Zone

	tick int
	now  timewindow.SimTime
}

// NewDriver wires the Weather and Event Managers from cfg.RNGSeed and
// cfg.SpawnProbEvent, runs the Algorithm Selector once over g to pick the
// pathfind.Strategy the whole run will use (spec §4.7), and returns a
// Driver ready for Run.
func NewDriver(
	g *worldgraph.Graph,
	vehicles []*fleet.Vehicle,
	zones []*fleet.Zone,
	cfg *config.Config,
	logger *telemetry.Logger,
	metrics *telemetry.Registry,
) *Driver {
	rng := rand.New(rand.NewSource(cfg.RNGSeed))
	weatherMgr := weather.NewManager(g, rng)
	hazardMgr := hazard.NewManager(g, rng)
	hazardMgr.SetSpawnProbability(cfg.SpawnProbEvent)

	return &Driver{
		RunID:      uuid.NewString(),
		graph:      g,
		cfg:        cfg,
		weatherMgr: weatherMgr,
		hazardMgr:  hazardMgr,
		rng:        rng,
		strategy:   selectStrategy(g),
		logger:     logger,
		metrics:    metrics,
		stats:      NewStatistics(g),
		Vehicles:   vehicles,
		Zones:      zones,
	}
}

// selectStrategy runs the Algorithm Selector (C8 wiring the C7 strategy
// pool) from the first Base node to the first Delivery node, in sorted key
// order so the choice is reproducible. Falls back to AStarStrategy if
// either kind is absent from g.
func selectStrategy(g *worldgraph.Graph) pathfind.Strategy {
	start, sOK := firstNodeOfKind(g, worldgraph.Base)
	goal, gOK := firstNodeOfKind(g, worldgraph.Delivery)
	if !sOK || !gOK {
		return pathfind.AStarStrategy{}
	}

	strategy, _ := selector.Select(g, start, goal)

	return strategy
}

func firstNodeOfKind(g *worldgraph.Graph, kind worldgraph.NodeKind) (string, bool) {
	keys := g.Nodes()
	sort.Strings(keys)
	for _, key := range keys {
		n, err := g.Node(key)
		if err != nil {
			continue
		}
		if n.Kind == kind {
			return key, true
		}
	}

	return "", false
}

// Run advances the simulation numCycles ticks and returns the accumulated
// ledger. Per tick, in order (spec §4.11): weather steps every
// WeatherTickPeriod ticks, the Event Manager steps every tick, then every
// vehicle is dispatched once.
func (d *Driver) Run(numCycles int) *Statistics {
	for i := 0; i < numCycles; i++ {
		d.tick++
		d.now = timewindow.SimTime(d.tick)

		if d.tick%d.cfg.WeatherTickPeriod == 0 {
			d.weatherMgr.Step()
		}
		d.hazardMgr.Step()

		for _, v := range d.Vehicles {
			d.dispatchVehicle(v)
		}
	}

	return d.stats
}

// dispatchVehicle runs one vehicle's per-tick decision (spec §4.11 step 3):
// a low-fuel vehicle always plans and executes a refuel leg instead of
// seeking a delivery target. Otherwise it ranks candidate zones via the
// Target Scorer and tries them in order, falling through to the next
// candidate on any pathfinding or Executor rejection until the list is
// exhausted.
func (d *Driver) dispatchVehicle(v *fleet.Vehicle) {
	if v.LowFuel(d.cfg.RefuelTriggerFraction) {
		d.dispatchRefuel(v)

		return
	}

	candidates, err := scorer.Rank(d.graph, *v, d.Zones, d.now)
	if err != nil {
		d.logger.WithFields(map[string]interface{}{"vehicle": v.ID, "error": err.Error()}).Warn("target ranking failed")

		return
	}

	for _, c := range candidates {
		zNode, err := d.graph.Node(c.Zone.NodeKey)
		if err != nil {
			continue
		}
		critical := c.Zone.Window.InCriticalPeriod(d.now)
		d.stats.RecordAccessAttempt(zNode.Terrain)
		d.stats.RecordWindowObservation(c.Zone.Window.Remaining(d.now), critical)
		if critical {
			d.metrics.CriticalWindowHits.Inc()
		}

		avoid := access.Forbidden(v.Kind)
		oracle := pathfind.NewOracle(d.graph, c.Zone.NodeKey)
		path, ok, err := d.strategy.Find(d.graph, oracle, v.Location, c.Zone.NodeKey, avoid)
		if err != nil || !ok {
			d.recordFailure(v, fleet.NoRouteFound, c.Zone.ID)

			continue
		}

		res := fleet.Execute(d.graph, v, path, c.Zone, d.weatherMgr, d.hazardMgr, d.now, d.rng)
		if res.Success {
			d.recordSuccess(v, res, c.Zone.ID)

			return
		}
		d.recordFailure(v, res.Failure, c.Zone.ID)
	}
}

// dispatchRefuel plans and runs a refuel leg for v (spec §4.9), recording a
// failure if no station is reachable or the leg is rejected.
func (d *Driver) dispatchRefuel(v *fleet.Vehicle) {
	plan, ok := fleet.PlanRefuel(d.graph, *v, d.cfg.RefuelSafetyFraction)
	if !ok {
		d.logger.WithField("vehicle", v.ID).Warn("no refuel station reachable within safety fraction")

		return
	}

	before := v.Fuel
	res := fleet.ExecuteRefuelLeg(d.graph, v, plan.Path, d.weatherMgr, d.hazardMgr, d.rng)
	if !res.Success {
		d.recordFailure(v, res.Failure, "")

		return
	}

	region := worldgraph.RegionTag("")
	if n, err := d.graph.Node(plan.Station); err == nil {
		region = n.Region
	}
	replenished := v.Fuel - before

	d.stats.RecordRefuel(region, replenished)
	d.metrics.RefuelsTotal.WithLabelValues(string(region)).Inc()
	d.metrics.FuelReplenished.Add(replenished)
	d.logger.WithFields(map[string]interface{}{
		"vehicle": v.ID, "station": plan.Station, "fuel_replenished": replenished,
	}).Info("refuel leg completed")
}

func (d *Driver) recordSuccess(v *fleet.Vehicle, res fleet.DispatchResult, zoneID string) {
	d.stats.RecordSuccess(v.Kind, res.TotalTime)
	d.metrics.DeliveriesTotal.Inc()
	d.metrics.MeanDeliveryTime.Set(d.stats.MeanDeliveryTime())
	d.logger.WithFields(map[string]interface{}{
		"vehicle": v.ID, "zone": zoneID, "dispatch_id": res.DispatchID, "total_time": res.TotalTime,
	}).Info("delivery succeeded")
}

func (d *Driver) recordFailure(v *fleet.Vehicle, cause fleet.FailureKind, zoneID string) {
	d.stats.RecordFailure(v.Kind, cause)
	d.metrics.FailuresTotal.WithLabelValues(cause.String()).Inc()
	d.logger.WithFields(map[string]interface{}{
		"vehicle": v.ID, "zone": zoneID, "cause": cause.String(),
	}).Debug("dispatch attempt failed")
}

// Statistics returns the ledger accumulated so far without ending the run.
func (d *Driver) Statistics() *Statistics {
	return d.stats
}
