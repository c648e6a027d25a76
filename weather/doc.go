// Package weather implements the per-region weather state machine (spec
// §4.1): a sparse, probabilistic transition table driving six states, a
// fixed per-state (costMult, timeMult, blockProb) table, and a Manager that
// resets and rewrites a worldgraph.Graph's overlay at the start of every
// weather tick.
package weather
