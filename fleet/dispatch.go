package fleet

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/larkspur-ops/reliefgrid/access"
	"github.com/larkspur-ops/reliefgrid/hazard"
	"github.com/larkspur-ops/reliefgrid/pathfind"
	"github.com/larkspur-ops/reliefgrid/timewindow"
	"github.com/larkspur-ops/reliefgrid/weather"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

// fuelSafetyMargin is the factor applied to a leg's cost before comparing it
// against a vehicle's remaining fuel (spec §4.10): a leg is only attempted
// if 1.1x its cost still fits in the tank.
const fuelSafetyMargin = 1.1

// eventFailureProb is the per-edge probability that an active dynamic event
// causes a leg to fail outright (spec §4.10, step e).
const eventFailureProb = 0.1

// DispatchResult is the outcome of one Execute call: either the vehicle
// reached z and z is now supplied, or the dispatch stopped at the first
// failing leg with Failure set to the reason.
type DispatchResult struct {
	DispatchID string
	Success    bool
	Failure    FailureKind
	LegsDone   int
	TotalTime  float64 // sum of legTime across every leg actually applied
}

// Execute runs the Dispatch & Delivery Executor (spec §4.10) for vehicle v
// following path to zone z. The route is split into legs at RefuelStation
// nodes; each leg is validated and applied in order. A failing leg aborts
// the whole dispatch, but mutations to v from legs that already succeeded
// are not rolled back: the vehicle has physically moved. On full success z
// is marked supplied.
func Execute(
	g *worldgraph.Graph,
	v *Vehicle,
	path pathfind.Path,
	z *Zone,
	weatherMgr *weather.Manager,
	hazardMgr *hazard.Manager,
	now timewindow.SimTime,
	rng *rand.Rand,
) DispatchResult {
	checkWindow := func(terminal bool) (FailureKind, bool) {
		if terminal && !z.Window.Accessible(now) {
			return OutsideWindow, false
		}

		return NoFailure, true
	}

	res := runLegs(g, v, path, weatherMgr, hazardMgr, rng, checkWindow)
	if res.Success {
		z.Supplied = true
	}

	return res
}

// ExecuteRefuelLeg runs the same per-leg validation and mutation pipeline as
// Execute for a pure refuel trip (spec §4.9's plan, with no delivery
// destination): there is no zone window to check on the terminal leg, since
// the route simply ends at a RefuelStation.
func ExecuteRefuelLeg(
	g *worldgraph.Graph,
	v *Vehicle,
	path pathfind.Path,
	weatherMgr *weather.Manager,
	hazardMgr *hazard.Manager,
	rng *rand.Rand,
) DispatchResult {
	noWindowCheck := func(bool) (FailureKind, bool) { return NoFailure, true }

	return runLegs(g, v, path, weatherMgr, hazardMgr, rng, noWindowCheck)
}

// runLegs is the shared Dispatch & Delivery Executor pipeline (spec §4.10):
// split path into legs at RefuelStation nodes and validate/apply each in
// order. checkWindow is consulted only for the terminal leg and lets the
// caller decide whether a destination zone's window applies.
func runLegs(
	g *worldgraph.Graph,
	v *Vehicle,
	path pathfind.Path,
	weatherMgr *weather.Manager,
	hazardMgr *hazard.Manager,
	rng *rand.Rand,
	checkWindow func(terminal bool) (FailureKind, bool),
) DispatchResult {
	dispatchID := uuid.NewString()

	if len(path.Nodes) < 2 {
		return DispatchResult{DispatchID: dispatchID, Failure: NoRouteFound}
	}

	legs := splitLegs(g, path.Nodes)
	totalTime := 0.0

	for i, leg := range legs {
		terminal := i == len(legs)-1

		legCost, legTime := legCostTime(g, hazardMgr, leg)

		if fuelSafetyMargin*legCost > v.Fuel {
			return DispatchResult{DispatchID: dispatchID, Failure: InsufficientFuel, LegsDone: i, TotalTime: totalTime}
		}

		if firstTerrainIncompatibleNode(g, v.Kind, leg) {
			return DispatchResult{DispatchID: dispatchID, Failure: TerrainIncompatible, LegsDone: i, TotalTime: totalTime}
		}

		if legFacesAdverseWeather(g, weatherMgr, v.Kind, leg) {
			return DispatchResult{DispatchID: dispatchID, Failure: AdverseWeather, LegsDone: i, TotalTime: totalTime}
		}

		if failure, ok := checkWindow(terminal); !ok {
			return DispatchResult{DispatchID: dispatchID, Failure: failure, LegsDone: i, TotalTime: totalTime}
		}

		if legHitByDynamicEvent(hazardMgr, leg, rng) {
			return DispatchResult{DispatchID: dispatchID, Failure: DynamicEventFailure, LegsDone: i, TotalTime: totalTime}
		}

		applyLeg(g, v, leg, legCost)
		totalTime += legTime
	}

	return DispatchResult{DispatchID: dispatchID, Success: true, LegsDone: len(legs), TotalTime: totalTime}
}

// splitLegs breaks nodes into contiguous legs, each ending at a
// RefuelStation (exclusive of the final leg, which simply runs to the
// route's end). A leg's first node is the prior leg's last node.
func splitLegs(g *worldgraph.Graph, nodes []string) [][]string {
	legs := make([][]string, 0)
	start := 0
	for i := 1; i < len(nodes); i++ {
		n, err := g.Node(nodes[i])
		if err != nil {
			continue
		}
		if n.Kind == worldgraph.RefuelStation {
			legs = append(legs, nodes[start:i+1])
			start = i
		}
	}
	if start < len(nodes)-1 {
		legs = append(legs, nodes[start:])
	}

	return legs
}

// legCostTime sums the live overlay cost/time across leg's edges, then
// applies hazardMgr's path impact multiplier on top of whatever the Event
// Manager already baked into the overlay at tick start (spec §4.10: the
// impact factor is applied again at the leg level, not merely carried
// through the overlay).
func legCostTime(g *worldgraph.Graph, hazardMgr *hazard.Manager, leg []string) (float64, float64) {
	cost, time := 0.0, 0.0
	for i := 0; i < len(leg)-1; i++ {
		o, err := g.Overlay(leg[i], leg[i+1])
		if err != nil {
			continue
		}
		cost += o.Cost
		time += o.Time
	}
	impact := hazardMgr.ImpactOfPath(leg)

	return cost * impact.CostImpact, time * impact.TimeImpact
}

// firstTerrainIncompatibleNode reports whether any node in leg (other than
// Base/RefuelStation, which access.Admits always allows) is off-limits to
// kind.
func firstTerrainIncompatibleNode(g *worldgraph.Graph, kind access.VehicleKind, leg []string) bool {
	for _, key := range leg {
		n, err := g.Node(key)
		if err != nil {
			continue
		}
		if !access.Admits(kind, n) {
			return true
		}
	}

	return false
}

// legFacesAdverseWeather is the deterministic pre-roll check of spec §4.10
// step (c.5): if every edge of the leg touches a region currently in
// {HeavyRain, Storm, Snow} and kind has no all-weather exemption (Drone,
// Helicopter mirror their terrain exemptions in spec §4.4), the leg is
// rejected before the stochastic DynamicEventFailure roll so that roll
// never consumes an RNG draw on a leg that was going to fail anyway.
func legFacesAdverseWeather(g *worldgraph.Graph, weatherMgr *weather.Manager, kind access.VehicleKind, leg []string) bool {
	if kind == access.Drone || kind == access.Helicopter {
		return false
	}
	if len(leg) < 2 {
		return false
	}
	for i := 0; i < len(leg)-1; i++ {
		if !weatherMgr.AdverseWeather([]string{leg[i], leg[i+1]}) {
			return false
		}
	}

	return true
}

// legHitByDynamicEvent rolls eventFailureProb for every edge in leg that
// currently carries an active dynamic event (spec §4.10 step e). The RNG is
// consulted only here, after every deterministic rejection has already
// passed, per spec §7.
func legHitByDynamicEvent(hazardMgr *hazard.Manager, leg []string, rng *rand.Rand) bool {
	active := make(map[[2]string]bool)
	for _, e := range hazardMgr.Events() {
		active[e] = true
	}
	for i := 0; i < len(leg)-1; i++ {
		if !active[[2]string{leg[i], leg[i+1]}] {
			continue
		}
		if rng.Float64() < eventFailureProb {
			return true
		}
	}

	return false
}

// applyLeg mutates v once a leg has cleared every check: fuel resets to
// full range if the leg ends at a RefuelStation, otherwise legCost is
// debited; location advances to the leg's last node either way.
func applyLeg(g *worldgraph.Graph, v *Vehicle, leg []string, legCost float64) {
	end := leg[len(leg)-1]
	if n, err := g.Node(end); err == nil && n.Kind == worldgraph.RefuelStation {
		v.Fuel = v.Range
	} else {
		v.Fuel -= legCost
	}
	v.Location = end
}
