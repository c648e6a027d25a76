// Package fleet holds vehicle and delivery-zone state, the Refuel Planner
// (spec §4.9), and the Dispatch & Delivery Executor (spec §4.10): the only
// code in reliefgrid permitted to mutate a Vehicle or a Zone.
package fleet
