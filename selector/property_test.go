package selector

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPickBestAlwaysReturnsMinimumScore exercises spec §8's selector
// invariant: among strategies that found a path, the winner is the one
// with the minimum normalized composite score, over random per-strategy
// (tExec, tRoute, cRoute) triples. Candidates() supplies exactly four
// distinct strategies, one per generated result, so there is never a tie
// on strategy identity to disambiguate.
func TestPickBestAlwaysReturnsMinimumScore(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("pickBest returns the strategy with the minimum score among those that found a path", prop.ForAll(
		func(execsMs, routeTimes, routeCosts []int64, found []bool) bool {
			strategies := Candidates()
			results := make([]Result, len(strategies))
			for i := range strategies {
				results[i] = Result{
					Strategy:   strategies[i],
					MedianExec: time.Duration(execsMs[i]) * time.Millisecond,
					RouteTime:  float64(routeTimes[i]),
					RouteCost:  float64(routeCosts[i]),
					FoundAPath: found[i],
				}
			}

			maxExec, maxRoute, maxCost := maxima(results)
			anyFound := false
			for i := range results {
				if !results[i].FoundAPath {
					continue
				}
				anyFound = true
				results[i].Score = score(results[i], maxExec, maxRoute, maxCost)
			}

			winner, ok := pickBest(results)
			if !anyFound {
				return !ok
			}
			if !ok {
				return false
			}

			var winnerScore float64
			minScore := 0.0
			first := true
			for _, r := range results {
				if !r.FoundAPath {
					continue
				}
				if r.Strategy == winner {
					winnerScore = r.Score
				}
				if first || r.Score < minScore {
					minScore = r.Score
					first = false
				}
			}

			return winnerScore == minScore
		},
		gen.SliceOfN(4, gen.Int64Range(0, 1000)),
		gen.SliceOfN(4, gen.Int64Range(0, 1000)),
		gen.SliceOfN(4, gen.Int64Range(0, 1000)),
		gen.SliceOfN(4, gen.Bool()),
	))

	properties.TestingRun(t)
}
