package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "waitlist"

// Metrics tracks waitlist operations for one process.
type Metrics struct {
	Operations *prometheus.CounterVec
	Entries    prometheus.Gauge
}

// New registers the waitlist collectors with reg. A nil reg creates
// unregistered collectors, which is convenient for the interactive shell.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total number of waitlist operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Current number of customers on the waitlist.",
		}),
	}
}

// Observe records one operation and the resulting waitlist length.
func (m *Metrics) Observe(op, outcome string, entries int) {
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.Entries.Set(float64(entries))
}
