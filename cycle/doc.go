// Package cycle drives the simulator's tick loop (spec §4.11, the Cycle
// Driver, C12): weather/event step cadence, per-vehicle dispatch against
// the Target Scorer, Pathfinder, and Dispatch Executor, and the Statistics
// Ledger accumulated across the run (spec §6).
package cycle
