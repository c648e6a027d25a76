// Package selector implements the Algorithm Selector (spec §4.7): a
// one-shot benchmark run at simulator construction that picks which
// pathfind.Strategy the rest of the simulation will use, by running each
// strategy five times from a fixed (Base, Delivery) pair and scoring a
// normalized blend of execution time, route time, and route cost.
package selector
