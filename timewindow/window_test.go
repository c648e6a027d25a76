package timewindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessibleBoundaryAtNowEqualsEnd(t *testing.T) {
	w := Window{ZoneID: "z1", Opened: 0, Duration: 10, Priority: PriorityHigh}
	assert.True(t, w.Accessible(10))
	assert.False(t, w.Accessible(10.0001))
}

func TestRemainingNeverNegative(t *testing.T) {
	w := Window{ZoneID: "z1", Opened: 0, Duration: 10, Priority: PriorityHigh}
	assert.Equal(t, 0.0, w.Remaining(20))
	assert.Equal(t, 5.0, w.Remaining(5))
}

func TestCriticalitySwitchesToNonLinearBelowQuarterOpen(t *testing.T) {
	w := Window{ZoneID: "z1", Opened: 0, Duration: 100, Priority: PriorityLow}

	// At now=80, remaining=20, openedFraction=0.2 < 0.25: non-linear branch.
	got := w.Criticality(80)
	want := 2 * (1 - 0.2)
	assert.InDelta(t, want, got, 1e-9)
}

func TestCriticalityClampsToOneAboveQuarterOpen(t *testing.T) {
	w := Window{ZoneID: "z1", Opened: 0, Duration: 100, Priority: PriorityEmergency}

	// openedFraction = 0.5 >= 0.25, (1-0.5)*5 = 2.5, clamped to 1.
	got := w.Criticality(50)
	assert.Equal(t, 1.0, got)
}

func TestUrgencyFactorZeroOnceClosed(t *testing.T) {
	w := Window{ZoneID: "z1", Opened: 0, Duration: 10, Priority: PriorityHigh}
	assert.Equal(t, 0.0, w.UrgencyFactor(11))
}

func TestUrgencyFactorOneOutsideCriticalBand(t *testing.T) {
	w := Window{ZoneID: "z1", Opened: 0, Duration: 100, Priority: PriorityHigh}
	assert.Equal(t, 1.0, w.UrgencyFactor(50))
}

func TestUrgencyFactorInCriticalBand(t *testing.T) {
	w := Window{ZoneID: "z1", Opened: 0, Duration: 100, Priority: PriorityHigh}
	// now=90: remaining=10, quarter=25, 10/25=0.4
	got := w.UrgencyFactor(90)
	want := 2 + (1 - 10.0/25.0)
	assert.InDelta(t, want, got, 1e-9)
}

func TestRegistryAddAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Add(Window{ZoneID: "z1", Opened: 0, Duration: 10, Priority: PriorityLow})
	r.Add(Window{ZoneID: "z2", Opened: 0, Duration: 20, Priority: PriorityHigh})

	w, ok := r.Window("z1")
	require.True(t, ok)
	assert.Equal(t, 10.0, w.Duration)

	assert.Equal(t, []string{"z1", "z2"}, r.ZoneIDs())
}
