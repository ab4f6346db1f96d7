// Package metrics defines the Prometheus collectors of the service and serves them.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderflow"

// Approval modes used as the "mode" label of the approved orders counter.
const (
	ModeDefault = "default"
	ModeDirect  = "direct"
)

// Metrics groups every collector on its own registry so tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	ordersApproved   *prometheus.CounterVec
	ordersRejected   prometheus.Counter
	requestFailures  *prometheus.CounterVec
	graphViolations  prometheus.Gauge
	integrityScanDur prometheus.Histogram
}

// New creates and registers the collectors, including the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersApproved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_approved_total",
				Help:      "Orders moved to their next step, by approval mode.",
			},
			[]string{"mode"},
		),
		ordersRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_rejected_total",
				Help:      "Orders moved to the Rejected status.",
			},
		),
		requestFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_failures_total",
				Help:      "Failed API operations, by operation and HTTP status.",
			},
			[]string{"operation", "status"},
		),
		graphViolations: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "graph_default_transition_violations",
				Help:      "Steps holding active orders without exactly one default transition, as of the last scan.",
			},
		),
		integrityScanDur: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_integrity_scan_duration_seconds",
				Help:      "Duration of graph integrity scans.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		m.ordersApproved,
		m.ordersRejected,
		m.requestFailures,
		m.graphViolations,
		m.integrityScanDur,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// OrdersApproved counts n orders approved in mode.
func (m *Metrics) OrdersApproved(mode string, n int) {
	m.ordersApproved.WithLabelValues(mode).Add(float64(n))
}

// OrdersRejected counts n newly rejected orders.
func (m *Metrics) OrdersRejected(n int) {
	m.ordersRejected.Add(float64(n))
}

// RequestFailed counts a failed operation.
func (m *Metrics) RequestFailed(operation string, status int) {
	m.requestFailures.WithLabelValues(operation, http.StatusText(status)).Inc()
}

// IntegrityScanned records the outcome of a graph integrity scan.
func (m *Metrics) IntegrityScanned(violations int, took time.Duration) {
	m.graphViolations.Set(float64(violations))
	m.integrityScanDur.Observe(took.Seconds())
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
