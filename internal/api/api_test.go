package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/fraudflow/internal/conf"
	"github.com/securebank/fraudflow/internal/datastore"
	"github.com/securebank/fraudflow/internal/observability"
	"github.com/securebank/fraudflow/internal/workflow"
)

// newTestController builds a controller over a seeded temporary database.
func newTestController(t *testing.T) *Controller {
	t.Helper()

	settings := &conf.Settings{}
	settings.Output.SQLite.Enabled = true
	settings.Output.SQLite.Path = filepath.Join(t.TempDir(), "test.db")
	settings.Workflow.SessionTTL = 5
	settings.Workflow.MetricsEnabled = true

	store := datastore.New(settings)
	require.NoError(t, store.Open())
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	_, err := datastore.SeedDemoCases(store)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewWorkflowMetrics(registry)
	require.NoError(t, err)

	svc := workflow.NewService(store, metrics)
	facade := workflow.NewFacade(svc, 5*time.Minute, metrics)

	return New(settings, svc, facade, registry)
}

// doJSON performs a request against the controller and decodes the response.
func doJSON(t *testing.T, c *Controller, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echoContentType, echoJSONType)
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	rec := httptest.NewRecorder()
	c.Echo.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

const (
	echoContentType = "Content-Type"
	echoJSONType    = "application/json"
)

// startSession mints a session over the API.
func startSession(t *testing.T, c *Controller) string {
	t.Helper()

	var resp SessionResponse
	rec := doJSON(t, c, http.MethodPost, "/api/v1/session", "", &resp)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestHealthEndpoint(t *testing.T) {
	c := newTestController(t)

	rec := doJSON(t, c, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFullConversationOverHTTP(t *testing.T) {
	c := newTestController(t)
	sessionID := startSession(t, c)

	// Lookup, case-insensitive.
	var fetch workflow.FetchResult
	rec := doJSON(t, c, http.MethodPost, "/api/v1/workflow/fetch-case",
		fmt.Sprintf(`{"session_id":%q,"username":"john"}`, sessionID), &fetch)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, fetch.Found)
	caseID := fetch.Case.ID

	// The projection must never leak the answer.
	body := rec.Body.String()
	assert.NotContains(t, body, "security_answer")
	assert.NotContains(t, body, "fluffy")

	// Verify.
	var verify workflow.VerifyResult
	rec = doJSON(t, c, http.MethodPost, "/api/v1/workflow/verify-security",
		fmt.Sprintf(`{"session_id":%q,"case_id":%d,"answer":"Fluffy"}`, sessionID, caseID), &verify)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, verify.OK)

	// Decide.
	var decide workflow.DecideResult
	rec = doJSON(t, c, http.MethodPost, "/api/v1/workflow/confirm-decision",
		fmt.Sprintf(`{"session_id":%q,"case_id":%d,"decision":"no"}`, sessionID, caseID), &decide)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed_fraud", decide.Status)

	// Resolved case no longer surfaces.
	rec = doJSON(t, c, http.MethodPost, "/api/v1/workflow/fetch-case",
		fmt.Sprintf(`{"session_id":%q,"username":"John"}`, sessionID), &fetch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, fetch.Found)
}

func TestDecideBeforeVerifyIsConflict(t *testing.T) {
	c := newTestController(t)
	sessionID := startSession(t, c)

	var fetch workflow.FetchResult
	doJSON(t, c, http.MethodPost, "/api/v1/workflow/fetch-case",
		fmt.Sprintf(`{"session_id":%q,"username":"Alice"}`, sessionID), &fetch)
	require.True(t, fetch.Found)

	rec := doJSON(t, c, http.MethodPost, "/api/v1/workflow/confirm-decision",
		fmt.Sprintf(`{"session_id":%q,"case_id":%d,"decision":"yes"}`, sessionID, fetch.Case.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnknownCaseIsNotFound(t *testing.T) {
	c := newTestController(t)

	rec := doJSON(t, c, http.MethodGet, "/api/v1/cases/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownSessionIsConflict(t *testing.T) {
	c := newTestController(t)

	rec := doJSON(t, c, http.MethodPost, "/api/v1/workflow/fetch-case",
		`{"session_id":"bogus","username":"John"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListCasesSanitized(t *testing.T) {
	c := newTestController(t)

	var resp CaseListResponse
	rec := doJSON(t, c, http.MethodGet, "/api/v1/cases", "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, resp.Total)
	assert.NotContains(t, rec.Body.String(), "security_answer")
}

func TestGetCaseBadID(t *testing.T) {
	c := newTestController(t)

	rec := doJSON(t, c, http.MethodGet, "/api/v1/cases/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	c := newTestController(t)
	sessionID := startSession(t, c)

	doJSON(t, c, http.MethodPost, "/api/v1/workflow/fetch-case",
		fmt.Sprintf(`{"session_id":%q,"username":"Bob"}`, sessionID), nil)

	rec := doJSON(t, c, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fraudflow_operations_total")
}

func TestEndSession(t *testing.T) {
	c := newTestController(t)
	sessionID := startSession(t, c)

	rec := doJSON(t, c, http.MethodDelete, "/api/v1/session/"+sessionID, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, c, http.MethodPost, "/api/v1/workflow/fetch-case",
		fmt.Sprintf(`{"session_id":%q,"username":"John"}`, sessionID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
