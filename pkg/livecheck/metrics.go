package livecheck

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/gate"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// Metrics counts field checks and submission decisions.
type Metrics struct {
	checks      *prometheus.CounterVec
	submissions *prometheus.CounterVec
	gatherer    prometheus.Gatherer
}

// NewMetrics registers the counters in reg. A nil reg uses a fresh registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		checks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vetform_field_checks_total",
				Help: "Total number of field checks by category and severity",
			},
			[]string{"category", "severity"},
		),
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vetform_submissions_total",
				Help: "Total number of form submissions by gate decision",
			},
			[]string{"decision"},
		),
		gatherer: reg,
	}
}

// ObserveCheck records one field check.
func (m *Metrics) ObserveCheck(cat field.Category, sev validator.Severity) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(cat.String(), sev.String()).Inc()
}

// ObserveSubmission records one gate decision.
func (m *Metrics) ObserveSubmission(d gate.Decision) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(d.String()).Inc()
}

// Handler exposes the counters in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
