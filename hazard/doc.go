// Package hazard implements the Event Manager (spec §4.2): node obstacles
// and edge events, each a typed variant carrying a fixed
// (costMult, timeMult, durationRange, removalProb) and a countdown, spawned
// and expired stochastically and applied cumulatively to a worldgraph.Graph
// overlay on top of whatever weather already wrote there.
package hazard
