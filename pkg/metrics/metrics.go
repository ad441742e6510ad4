// Package metrics exports Prometheus metrics for registry operations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus counts operations by outcome and measures their latency.
type Prometheus struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewPrometheus registers the operation metrics with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_operations_total",
			Help: "Total registry operations, labeled by outcome",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "registry_operation_duration_seconds",
			Help:    "Latency distribution of registry operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// ObserveOperation records one completed operation.
func (p *Prometheus) ObserveOperation(operation, outcome string, duration time.Duration) {
	p.operations.WithLabelValues(operation, outcome).Inc()
	p.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
