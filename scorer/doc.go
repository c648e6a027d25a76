// Package scorer ranks candidate delivery zones for a dispatching vehicle
// by fusing emergency criticality, proximity, and regional affinity into a
// single ordering (spec §4.8, the Target Scorer, C9).
package scorer
