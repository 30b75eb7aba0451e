package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkflowMetricsRegisters(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m, err := NewWorkflowMetrics(registry)
	require.NoError(t, err)

	m.RecordOperation("fetch_case", OutcomeFound)
	m.RecordOperation("fetch_case", OutcomeFound)
	m.RecordResolution("confirmed_fraud")
	m.SetActiveSessions(3)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["fraudflow_operations_total"])
	assert.True(t, names["fraudflow_active_sessions"])
	assert.True(t, names["fraudflow_case_resolutions_total"])
}

func TestNilMetricsAreSafe(t *testing.T) {
	t.Parallel()

	var m *WorkflowMetrics
	assert.NotPanics(t, func() {
		m.RecordOperation("verify_security", OutcomeMismatch)
		m.RecordResolution("confirmed_safe")
		m.SetActiveSessions(0)
	})
}

func TestDuplicateRegistrationFails(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	_, err := NewWorkflowMetrics(registry)
	require.NoError(t, err)

	_, err = NewWorkflowMetrics(registry)
	assert.Error(t, err)
}
