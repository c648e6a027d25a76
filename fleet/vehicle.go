package fleet

import "github.com/larkspur-ops/reliefgrid/access"

// Vehicle is a fleet member's mutable dispatch state. Fuel and Location
// are mutated only by the Executor (spec §5).
type Vehicle struct {
	ID       string
	Kind     access.VehicleKind
	Location string
	Capacity float64 // total carryable need-units across all resource kinds
	Range    float64 // fuel units at full tank
	Fuel     float64
}

// LowFuel reports whether v is at or below the low-fuel trigger fraction
// of its range (spec §4.9: fuel ≤ 0.6·range).
func (v Vehicle) LowFuel(triggerFraction float64) bool {
	return v.Fuel <= triggerFraction*v.Range
}
