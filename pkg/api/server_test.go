package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/pkg/gates"
	"github.com/foremanhq/foreman/pkg/store"
)

// fakeRunStore serves canned runs by id.
type fakeRunStore struct {
	runs map[string]*ent.PipelineRun
}

func (f *fakeRunStore) GetRun(_ context.Context, runID string) (*ent.PipelineRun, error) {
	run, ok := f.runs[runID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return run, nil
}

func newTestServer(t *testing.T) (*Server, *fakeRunStore, *gates.Project) {
	t.Helper()
	gate, err := gates.NewProjectAt(t.TempDir())
	require.NoError(t, err)
	runs := &fakeRunStore{runs: make(map[string]*ent.PipelineRun)}
	return NewServer(runs, nil, gate), runs, gate
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthWithoutDatabase(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body["version"], "foreman/")
}

func TestGetRun(t *testing.T) {
	s, runs, _ := newTestServer(t)

	step := 2
	hb := time.Now().UTC()
	runs.runs["run-1"] = &ent.PipelineRun{
		ID:            "run-1",
		ProjectID:     "proj-1",
		Request:       "build the thing",
		Status:        "running",
		GraphJSON:     "{}",
		DecisionCount: 4,
		RunningCost:   1.25,
		CurrentStep:   &step,
		LastHeartbeat: &hb,
		CreatedAt:     time.Now().UTC(),
	}

	rec := doRequest(t, s, http.MethodGet, "/api/runs/run-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, "running", got.Status)
	assert.Equal(t, 4, got.DecisionCount)
	assert.InDelta(t, 1.25, got.RunningCost, 0.001)
	require.NotNil(t, got.CurrentStep)
	assert.Equal(t, 2, *got.CurrentStep)
	assert.Nil(t, got.CompletedAt)
}

func TestGetRun_NotFound(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/runs/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRunLog_OffsetPolling(t *testing.T) {
	s, runs, gate := newTestServer(t)
	runs.runs["run-1"] = &ent.PipelineRun{ID: "run-1"}

	gate.AppendLog("first line")

	rec := doRequest(t, s, http.MethodGet, "/api/runs/run-1/log")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Content    string `json:"content"`
		NextOffset int64  `json:"next_offset"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Contains(t, page.Content, "first line")
	require.Greater(t, page.NextOffset, int64(0))

	// Nothing new at the advanced offset.
	rec = doRequest(t, s, http.MethodGet, "/api/runs/run-1/log?offset="+strconv.FormatInt(page.NextOffset, 10))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Content)

	// New content appears from the same offset.
	gate.AppendLog("second line")
	rec = doRequest(t, s, http.MethodGet, "/api/runs/run-1/log?offset="+strconv.FormatInt(page.NextOffset, 10))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Contains(t, page.Content, "second line")
	assert.NotContains(t, page.Content, "first line")
}

func TestGetRunLog_InvalidOffset(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/runs/run-1/log?offset=banana")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAbortRun(t *testing.T) {
	s, runs, gate := newTestServer(t)
	runs.runs["run-1"] = &ent.PipelineRun{ID: "run-1"}

	require.False(t, gate.AbortRequested())
	rec := doRequest(t, s, http.MethodPost, "/api/runs/run-1/abort")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, gate.AbortRequested())
}

func TestAbortRun_NotFound(t *testing.T) {
	s, _, gate := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/api/runs/ghost/abort")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, gate.AbortRequested())
}
