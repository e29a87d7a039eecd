package metrics

import (
	"context"
	"time"

	// Packages
	prometheus "github.com/prometheus/client_golang/prometheus"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Collector records the outcome of each exchange with a model
type Collector interface {
	// RecordAsk records one exchange. Kind is empty on success, otherwise
	// a short error label such as "remote_call".
	RecordAsk(ctx context.Context, model string, kind string, duration time.Duration)
}

// PrometheusCollector is a Collector backed by a private prometheus registry
type PrometheusCollector struct {
	asksTotal   *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	registry    *prometheus.Registry
}

var _ Collector = (*PrometheusCollector)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	namespace     = "llmagent"
	statusSuccess = "success"
	statusError   = "error"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCollector creates a new prometheus collector
func NewCollector() *PrometheusCollector {
	registry := prometheus.NewRegistry()

	asksTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asks_total",
			Help:      "Total number of completion requests by model and status",
		},
		[]string{"model", "status"},
	)

	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of failed completion requests by model and error kind",
		},
		[]string{"model", "kind"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ask_duration_seconds",
			Help:      "Duration of completion requests by model",
			Buckets:   []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0, 120.0},
		},
		[]string{"model"},
	)

	registry.MustRegister(asksTotal, errorsTotal, duration)

	return &PrometheusCollector{
		asksTotal:   asksTotal,
		errorsTotal: errorsTotal,
		duration:    duration,
		registry:    registry,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RecordAsk records the completion of an exchange
func (m *PrometheusCollector) RecordAsk(_ context.Context, model string, kind string, duration time.Duration) {
	if kind == "" {
		m.asksTotal.WithLabelValues(model, statusSuccess).Inc()
	} else {
		m.asksTotal.WithLabelValues(model, statusError).Inc()
		m.errorsTotal.WithLabelValues(model, kind).Inc()
	}
	m.duration.WithLabelValues(model).Observe(duration.Seconds())
}

// Registry returns the prometheus registry for HTTP exposure
func (m *PrometheusCollector) Registry() *prometheus.Registry {
	return m.registry
}
