package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors of the service
type Metrics struct {
	HTTPInFlight        prometheus.Gauge
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	PermitsSubmitted prometheus.Counter
	WorkflowTriggers *prometheus.CounterVec
	WorkflowDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		PermitsSubmitted: f.NewCounter(prometheus.CounterOpts{
			Name: "permits_submitted_total",
			Help: "Total number of permits accepted for submission.",
		}),
		WorkflowTriggers: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workflow_trigger_total",
				Help: "Workflow trigger attempts by outcome.",
			},
			[]string{"outcome"},
		),
		WorkflowDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "workflow_trigger_duration_seconds",
			Help:    "Duration of workflow trigger calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// NewNop returns collectors that are not registered anywhere
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
