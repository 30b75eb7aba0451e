// Package observability provides Prometheus metrics for the fraud workflow.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation outcomes recorded per workflow operation.
const (
	OutcomeFound             = "found"
	OutcomeNotFound          = "not_found"
	OutcomeVerified          = "verified"
	OutcomeMismatch          = "mismatch"
	OutcomeConfirmedSafe     = "confirmed_safe"
	OutcomeConfirmedFraud    = "confirmed_fraud"
	OutcomeAmbiguous         = "ambiguous"
	OutcomeSequenceViolation = "sequence_violation"
	OutcomeError             = "error"
)

// WorkflowMetrics contains all Prometheus metrics related to case workflow
// operations.
type WorkflowMetrics struct {
	Operations      *prometheus.CounterVec
	ActiveSessions  prometheus.Gauge
	CaseResolutions *prometheus.CounterVec
	registry        *prometheus.Registry
}

// NewWorkflowMetrics creates a new instance of WorkflowMetrics registered
// against the given registry.
func NewWorkflowMetrics(registry *prometheus.Registry) (*WorkflowMetrics, error) {
	m := &WorkflowMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register workflow metrics: %w", err)
	}
	return m, nil
}

func (m *WorkflowMetrics) initMetrics() {
	m.Operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudflow_operations_total",
		Help: "Total workflow operations by operation name and outcome",
	}, []string{"operation", "outcome"})

	m.ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fraudflow_active_sessions",
		Help: "Number of live conversation sessions",
	})

	m.CaseResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudflow_case_resolutions_total",
		Help: "Total case transitions into a terminal status",
	}, []string{"status"})
}

// RecordOperation increments the operation counter. Safe on a nil receiver
// so components can run without metrics wired.
func (m *WorkflowMetrics) RecordOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

// RecordResolution increments the terminal-status counter.
func (m *WorkflowMetrics) RecordResolution(status string) {
	if m == nil {
		return
	}
	m.CaseResolutions.WithLabelValues(status).Inc()
}

// SetActiveSessions updates the live session gauge.
func (m *WorkflowMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

// Describe implements the prometheus.Collector interface.
func (m *WorkflowMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.Operations.Describe(ch)
	m.ActiveSessions.Describe(ch)
	m.CaseResolutions.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (m *WorkflowMetrics) Collect(ch chan<- prometheus.Metric) {
	m.Operations.Collect(ch)
	m.ActiveSessions.Collect(ch)
	m.CaseResolutions.Collect(ch)
}
