// Package config loads and validates reliefgrid's run configuration: every
// tunable enumerated in spec §6, plus the nested World Graph source and
// logging sections a real deployment needs (spec SPEC_FULL.md's AMBIENT
// STACK).
package config
