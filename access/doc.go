// Package access implements the Access Policy (spec §4.4): a fixed
// vehicle-kind × terrain forbidden-set relation, with Base and
// RefuelStation nodes always admissible regardless of terrain.
package access
