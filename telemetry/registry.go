package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Registry republishes the Statistics Ledger (spec §6) as Prometheus
// instruments, modeled on cluso-graphdb's pkg/metrics.Registry. It does not
// replace the ledger; it mirrors the same counters for a program that wants
// to scrape them. No HTTP exporter is wired here — mounting /metrics is left
// to the embedding program.
type Registry struct {
	DeliveriesTotal    prometheus.Counter
	FailuresTotal      *prometheus.CounterVec // labeled by failure kind
	RefuelsTotal       *prometheus.CounterVec // labeled by region
	FuelReplenished    prometheus.Counter
	CriticalWindowHits prometheus.Counter
	MeanDeliveryTime   prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry builds a Registry with every instrument registered against a
// fresh, isolated prometheus.Registry (never the global default, so multiple
// simulator runs in the same process don't collide).
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		DeliveriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reliefgrid_deliveries_total",
			Help: "Total successful deliveries across the run.",
		}),
		FailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reliefgrid_dispatch_failures_total",
			Help: "Dispatch attempts that failed, labeled by failure kind.",
		}, []string{"kind"}),
		RefuelsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reliefgrid_refuels_total",
			Help: "Refuel legs completed, labeled by region.",
		}, []string{"region"}),
		FuelReplenished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reliefgrid_fuel_replenished_total",
			Help: "Total fuel units restored across all refuel legs.",
		}),
		CriticalWindowHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reliefgrid_critical_window_events_total",
			Help: "Dispatch attempts made while a zone's window was in its critical period.",
		}),
		MeanDeliveryTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reliefgrid_mean_delivery_time_hours",
			Help: "Running mean simulated hours per successful delivery.",
		}),
		registry: reg,
	}

	reg.MustRegister(r.DeliveriesTotal, r.FailuresTotal, r.RefuelsTotal,
		r.FuelReplenished, r.CriticalWindowHits, r.MeanDeliveryTime)

	return r
}

// PrometheusRegistry returns the underlying prometheus.Registry, for a
// caller that wants to mount its own /metrics handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
