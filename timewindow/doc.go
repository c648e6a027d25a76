// Package timewindow implements the Time Window Registry (spec §4.3):
// per-zone opening intervals driven by an injected SimTime clock rather
// than wall-clock time, so criticality and urgency are reproducible across
// runs of the same seed and cycle count.
package timewindow
