package selector

import (
	"sort"
	"time"

	"github.com/larkspur-ops/reliefgrid/pathfind"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

const trialsPerStrategy = 5

// Result is the outcome of one strategy's benchmark: a normalized blend of
// execution time, route time, and route cost is stored alongside the raw
// medians so callers can log the full picture.
type Result struct {
	Strategy   pathfind.Strategy
	MedianExec time.Duration
	RouteTime  float64
	RouteCost  float64
	Score      float64
	FoundAPath bool
}

// Candidates is the fixed benchmark pool, in the order spec §4.7 expects
// them evaluated (BFS, DFS, Greedy, A*).
func Candidates() []pathfind.Strategy {
	return []pathfind.Strategy{
		pathfind.BFSStrategy{},
		pathfind.DFSStrategy{},
		pathfind.GreedyStrategy{},
		pathfind.AStarStrategy{},
	}
}

// Select runs the one-shot calibration benchmark from start to goal over
// g, and returns the winning strategy: five trials per candidate, median
// wallclock, normalize-by-max-across-strategies, weighted score
// 0.2*tExec + 0.4*tRoute + 0.4*cRoute, pick the minimum. Falls back to
// AStarStrategy if every candidate fails to find a path.
func Select(g *worldgraph.Graph, start, goal string) (pathfind.Strategy, []Result) {
	oracle := pathfind.NewOracle(g, goal)

	results := make([]Result, 0, len(Candidates()))
	for _, s := range Candidates() {
		r := benchmark(g, oracle, s, start, goal)
		results = append(results, r)
	}

	maxExec, maxRoute, maxCost := maxima(results)
	for i := range results {
		if !results[i].FoundAPath {
			continue
		}
		results[i].Score = score(results[i], maxExec, maxRoute, maxCost)
	}

	best, ok := pickBest(results)
	if !ok {
		return pathfind.AStarStrategy{}, results
	}

	return best, results
}

func benchmark(g *worldgraph.Graph, oracle *pathfind.Oracle, s pathfind.Strategy, start, goal string) Result {
	durations := make([]time.Duration, 0, trialsPerStrategy)
	var bestPath pathfind.Path
	found := false

	for i := 0; i < trialsPerStrategy; i++ {
		t0 := time.Now()
		path, ok, err := s.Find(g, oracle, start, goal, nil)
		elapsed := time.Since(t0)
		if err != nil || !ok {
			continue
		}
		durations = append(durations, elapsed)
		if !found || path.Cost+path.Time < bestPath.Cost+bestPath.Time {
			bestPath = path
			found = true
		}
	}

	if !found {
		return Result{Strategy: s, FoundAPath: false}
	}

	return Result{
		Strategy:   s,
		MedianExec: median(durations),
		RouteTime:  bestPath.Time,
		RouteCost:  bestPath.Cost,
		FoundAPath: true,
	}
}

func median(durations []time.Duration) time.Duration {
	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func maxima(results []Result) (maxExec time.Duration, maxRoute, maxCost float64) {
	for _, r := range results {
		if !r.FoundAPath {
			continue
		}
		if r.MedianExec > maxExec {
			maxExec = r.MedianExec
		}
		if r.RouteTime > maxRoute {
			maxRoute = r.RouteTime
		}
		if r.RouteCost > maxCost {
			maxCost = r.RouteCost
		}
	}

	return maxExec, maxRoute, maxCost
}

func score(r Result, maxExec time.Duration, maxRoute, maxCost float64) float64 {
	normExec := 0.0
	if maxExec > 0 {
		normExec = float64(r.MedianExec) / float64(maxExec)
	}
	normRoute := 0.0
	if maxRoute > 0 {
		normRoute = r.RouteTime / maxRoute
	}
	normCost := 0.0
	if maxCost > 0 {
		normCost = r.RouteCost / maxCost
	}

	return 0.2*normExec + 0.4*normRoute + 0.4*normCost
}

func pickBest(results []Result) (pathfind.Strategy, bool) {
	var best *Result
	for i := range results {
		if !results[i].FoundAPath {
			continue
		}
		if best == nil || results[i].Score < best.Score {
			best = &results[i]
		}
	}
	if best == nil {
		return nil, false
	}

	return best.Strategy, true
}
