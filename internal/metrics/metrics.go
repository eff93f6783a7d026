// Package metrics exposes Prometheus collectors for the API and its
// collaborator services.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "libra"

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	AuditEntries    *prometheus.CounterVec
	DepositsCreated prometheus.Counter
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ServiceCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "service_calls_total",
				Help:      "Calls to collaborator services by service and status.",
			},
			[]string{"service", "status"},
		),
		ServiceDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "service_call_duration_seconds",
				Help:      "Duration of collaborator service calls.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Inbound API requests by method and status.",
			},
			[]string{"method", "status"},
		),
		AuditEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audit_entries_total",
				Help:      "Audit entries recorded by action and outcome.",
			},
			[]string{"action", "outcome"}, // outcome: stored | dropped
		),
		DepositsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deposits_created_total",
				Help:      "Works created from deposit requests.",
			},
		),
	}

	m.registry.MustRegister(
		m.ServiceCalls, m.ServiceDuration,
		m.HTTPRequests, m.AuditEntries, m.DepositsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCall records one collaborator service call.
func (m *Metrics) ObserveCall(service string, status int, elapsed time.Duration) {
	m.ServiceCalls.WithLabelValues(service, strconv.Itoa(status)).Inc()
	m.ServiceDuration.WithLabelValues(service).Observe(elapsed.Seconds())
}

// ObserveRequest records one inbound API request.
func (m *Metrics) ObserveRequest(method string, status int) {
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveAudit records the outcome of appending an audit entry.
func (m *Metrics) ObserveAudit(action string, stored bool) {
	outcome := "stored"
	if !stored {
		outcome = "dropped"
	}
	m.AuditEntries.WithLabelValues(action, outcome).Inc()
}

// ObserveDeposit records a work created from a deposit request.
func (m *Metrics) ObserveDeposit() {
	m.DepositsCreated.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
