// Package worldgraph defines the typed, regionally-partitioned directed
// graph that the rest of reliefgrid treats as a shared, mostly read-only
// resource: nodes (bases, hubs, refuel stations, delivery zones) and
// weighted edges with an immutable base cost/time and a transient overlay
// recomputed every cycle by the weather and hazard managers.
//
// Construction from real geography is an external concern (see SPEC_FULL.md);
// this package only provides the Builder needed to hand the simulator a
// finished graph and the Graph type the rest of the simulator reads.
package worldgraph
