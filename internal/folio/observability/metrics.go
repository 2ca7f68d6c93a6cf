// Package observability holds the Prometheus metrics exported on /metrics.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes for the login attempt counter.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalid       = "invalid_credentials"
	OutcomeLockedOut     = "locked_out"
	OutcomeSuspended     = "suspended"
	OutcomeStorageFailed = "storage_error"
)

// Metrics contains the service's custom Prometheus metrics. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	LoginAttempts *prometheus.CounterVec
	Registrations prometheus.Counter
}

// NewMetrics creates a private registry with the Go and process collectors
// plus the folio metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_login_attempts_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		Registrations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "folio_registrations_total",
				Help: "Total number of successful self-registrations",
			},
		),
	}

	registry.MustRegister(m.LoginAttempts)
	registry.MustRegister(m.Registrations)
	return m
}

// TrackLockoutEntries exports the number of client keys the login lockout
// currently holds.
func (m *Metrics) TrackLockoutEntries(count func() int) {
	if m == nil {
		return
	}
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "folio_lockout_entries",
			Help: "Number of client keys tracked by the login lockout",
		},
		func() float64 { return float64(count()) },
	))
}

// RecordLogin increments the login counter for outcome.
func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

// RecordRegistration increments the registration counter.
func (m *Metrics) RecordRegistration() {
	if m == nil {
		return
	}
	m.Registrations.Inc()
}

// Registry exposes the underlying registry, for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
