package runner

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/provider"
)

// fakeAdapter returns scripted results in order, repeating the last one.
type fakeAdapter struct {
	id        string
	caps      models.Capabilities
	modelList []provider.ModelInfo
	available bool

	mu      sync.Mutex
	calls   int
	results []*provider.ExecutionResult
	gotCtx  []provider.ExecutionContext
}

func (f *fakeAdapter) ID() string                        { return f.id }
func (f *fakeAdapter) Name() string                      { return f.id }
func (f *fakeAdapter) Capabilities() models.Capabilities { return f.caps }
func (f *fakeAdapter) Models() []provider.ModelInfo      { return f.modelList }

func (f *fakeAdapter) Detect(context.Context) provider.Availability {
	return provider.Availability{Available: f.available}
}

func (f *fakeAdapter) Execute(_ context.Context, execCtx provider.ExecutionContext) *provider.ExecutionResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotCtx = append(f.gotCtx, execCtx)
	idx := f.calls
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	f.calls++
	return f.results[idx]
}

// fakeStore records persistence calls.
type fakeStore struct {
	mu     sync.Mutex
	runs   []models.CreateAgentRunRequest
	events []models.CreateEventLogRequest
}

func (s *fakeStore) CreateAgentRun(_ context.Context, req models.CreateAgentRunRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, req)
	return nil
}

func (s *fakeStore) CreateEventLog(_ context.Context, req models.CreateEventLogRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, req)
	return nil
}

func success(output string, cost float64) *provider.ExecutionResult {
	return &provider.ExecutionResult{Success: true, Output: output, CostUSD: cost}
}

func failure(errText string, kind provider.ErrorKind) *provider.ExecutionResult {
	return &provider.ExecutionResult{Error: errText, ErrorKind: kind}
}

func testConfig(t *testing.T, defaultProvider string) *config.Config {
	t.Helper()
	skills, err := config.LoadSkills("")
	require.NoError(t, err)
	return &config.Config{
		Loop:     config.DefaultLoopConfig(),
		Defaults: &config.Defaults{Provider: defaultProvider, Model: "m1"},
		Worker:   &config.WorkerConfig{},
		Projects: map[string]config.ProjectSettings{
			"proj-override": {
				Overrides: map[string]config.ProviderModelOverride{
					"engineer:implement": {Provider: "beta", Model: "m9"},
				},
			},
		},
		AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
			"engineer": {
				Type:         "coder",
				Capabilities: []string{models.CapabilityFileAccess},
				Roles: map[string]config.RoleConfig{
					"implement": {SystemPrompt: "implement the task"},
				},
			},
			"researcher": {Type: "researcher", SystemPrompt: "research"},
		}),
		ProviderRegistry: config.NewProviderRegistry(nil),
		Skills:           skills,
	}
}

func newTestRunner(t *testing.T, cfg *config.Config, store Store, adapters ...*fakeAdapter) (*Runner, *provider.Registry) {
	t.Helper()
	reg := provider.NewRegistry(time.Minute)
	for _, a := range adapters {
		require.NoError(t, reg.Register(a))
	}
	r := New(cfg, reg, store, filepath.Join(t.TempDir(), "install"))
	r.backoff = time.Millisecond
	return r, reg
}

func fullCaps() models.Capabilities {
	return models.Capabilities{FileAccess: true, ShellAccess: true, ToolUse: true}
}

func researcherTask(id string) models.TaskNode {
	return models.TaskNode{ID: id, Title: "Investigate", Agent: "researcher", Status: models.TaskStatusRunning}
}

func TestRunSuccessFirstAttempt(t *testing.T) {
	alpha := &fakeAdapter{
		id:        "alpha",
		available: true,
		modelList: []provider.ModelInfo{{ID: "m1", Tier: 1}},
		results:   []*provider.ExecutionResult{success("done", 0.25)},
	}
	store := &fakeStore{}
	r, _ := newTestRunner(t, testConfig(t, "alpha"), store, alpha)

	res, err := r.Run(context.Background(), Request{
		RunID: "run-1", ProjectID: "proj", Task: researcherTask("t1"),
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "done", res.Output)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, "alpha", res.Provider)
	assert.Equal(t, "m1", res.Model)
	assert.InDelta(t, 0.25, res.CostUSD, 1e-9)

	require.Len(t, store.runs, 1)
	assert.Equal(t, "t1", store.runs[0].GraphTaskID)
	assert.True(t, store.runs[0].Success)
	assert.Equal(t, 1, store.runs[0].Attempt)

	// Prompt and system prompt reach the adapter.
	require.Len(t, alpha.gotCtx, 1)
	assert.Contains(t, alpha.gotCtx[0].Prompt, "Task t1: Investigate")
	assert.Equal(t, "research", alpha.gotCtx[0].SystemPrompt)
}

func TestRunTransientRetriesSameProvider(t *testing.T) {
	alpha := &fakeAdapter{
		id:        "alpha",
		available: true,
		modelList: []provider.ModelInfo{{ID: "m1"}},
		results: []*provider.ExecutionResult{
			failure("429 rate limit", provider.ErrorKindTransient),
			success("recovered", 0.1),
		},
	}
	store := &fakeStore{}
	r, _ := newTestRunner(t, testConfig(t, "alpha"), store, alpha)

	res, err := r.Run(context.Background(), Request{RunID: "run-1", Task: researcherTask("t1")})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, "alpha", res.Provider)
	require.Len(t, store.runs, 2)
	assert.False(t, store.runs[0].Success)
	assert.True(t, store.runs[1].Success)
	assert.Empty(t, store.events)
}

func TestRunCrossProviderFallback(t *testing.T) {
	alpha := &fakeAdapter{
		id:        "alpha",
		caps:      fullCaps(),
		available: true,
		modelList: []provider.ModelInfo{{ID: "m1"}},
		results:   []*provider.ExecutionResult{failure("503 service unavailable", provider.ErrorKindTransient)},
	}
	beta := &fakeAdapter{
		id:        "beta",
		caps:      fullCaps(),
		available: true,
		modelList: []provider.ModelInfo{{ID: "m2"}},
		results:   []*provider.ExecutionResult{success("fallback output", 0.5)},
	}
	store := &fakeStore{}
	cfg := testConfig(t, "alpha")
	r, _ := newTestRunner(t, cfg, store, alpha, beta)

	task := models.TaskNode{ID: "t1", Title: "Build", Agent: "engineer", Role: "implement"}
	res, err := r.Run(context.Background(), Request{
		RunID: "run-1", ProjectID: "proj", Task: task, WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, "beta", res.Provider)
	// The fallback does not carry alpha's model; its default is used.
	assert.Equal(t, "m2", res.Model)

	require.Len(t, store.runs, 3)
	assert.Equal(t, "alpha", store.runs[0].Provider)
	assert.Equal(t, "alpha", store.runs[1].Provider)
	assert.Equal(t, "beta", store.runs[2].Provider)

	require.Len(t, store.events, 1)
	assert.Equal(t, "provider_fallback", store.events[0].EventType)
	assert.Contains(t, store.events[0].Content, "alpha -> beta")
}

func TestRunPermanentFailureNoRetry(t *testing.T) {
	alpha := &fakeAdapter{
		id:        "alpha",
		available: true,
		modelList: []provider.ModelInfo{{ID: "m1"}},
		results:   []*provider.ExecutionResult{failure("401 unauthorized", provider.ErrorKindPermanent)},
	}
	store := &fakeStore{}
	r, _ := newTestRunner(t, testConfig(t, "alpha"), store, alpha)

	res, err := r.Run(context.Background(), Request{RunID: "run-1", Task: researcherTask("t1")})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, provider.ErrorKindPermanent, res.ErrorKind)
	require.Len(t, store.runs, 1)
}

func TestRunUnknownErrorsNeverSwitchProvider(t *testing.T) {
	alpha := &fakeAdapter{
		id:        "alpha",
		available: true,
		modelList: []provider.ModelInfo{{ID: "m1"}},
		results:   []*provider.ExecutionResult{failure("something odd happened", provider.ErrorKindUnknown)},
	}
	beta := &fakeAdapter{
		id:        "beta",
		available: true,
		modelList: []provider.ModelInfo{{ID: "m2"}},
		results:   []*provider.ExecutionResult{success("never used", 0)},
	}
	store := &fakeStore{}
	r, _ := newTestRunner(t, testConfig(t, "alpha"), store, alpha, beta)

	res, err := r.Run(context.Background(), Request{RunID: "run-1", Task: researcherTask("t1")})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, "alpha", res.Provider)
	assert.Equal(t, 0, beta.calls)
	assert.Empty(t, store.events)
}

func TestRunResolvedProviderUnavailable(t *testing.T) {
	alpha := &fakeAdapter{
		id:        "alpha",
		available: false,
		modelList: []provider.ModelInfo{{ID: "m1"}},
		results:   []*provider.ExecutionResult{failure("unused", provider.ErrorKindTransient)},
	}
	beta := &fakeAdapter{
		id:        "beta",
		available: true,
		modelList: []provider.ModelInfo{{ID: "m2"}},
		results:   []*provider.ExecutionResult{success("ok", 0.1)},
	}
	store := &fakeStore{}
	r, _ := newTestRunner(t, testConfig(t, "alpha"), store, alpha, beta)

	res, err := r.Run(context.Background(), Request{RunID: "run-1", Task: researcherTask("t1")})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "beta", res.Provider)
	require.Len(t, store.events, 1)
	assert.Equal(t, "provider_fallback", store.events[0].EventType)
}

func TestRunUnknownAgent(t *testing.T) {
	alpha := &fakeAdapter{
		id: "alpha", available: true,
		modelList: []provider.ModelInfo{{ID: "m1"}},
		results:   []*provider.ExecutionResult{success("", 0)},
	}
	r, _ := newTestRunner(t, testConfig(t, "alpha"), &fakeStore{}, alpha)

	_, err := r.Run(context.Background(), Request{
		RunID: "run-1",
		Task:  models.TaskNode{ID: "t1", Agent: "nobody"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrAgentNotFound)
}

func TestResolveChain(t *testing.T) {
	cfg := testConfig(t, "alpha")
	r := &Runner{cfg: cfg}

	agentCfg := &config.AgentConfig{Provider: "agent-p", Model: "agent-m"}
	roleCfg := config.RoleConfig{Provider: "role-p", Model: "role-m"}

	tests := []struct {
		name         string
		projectID    string
		task         models.TaskNode
		agent        *config.AgentConfig
		role         config.RoleConfig
		wantProvider string
		wantModel    string
	}{
		{
			name:         "project override wins",
			projectID:    "proj-override",
			task:         models.TaskNode{Agent: "engineer", Role: "implement", Provider: "hint-p", Model: "hint-m"},
			agent:        agentCfg,
			role:         roleCfg,
			wantProvider: "beta",
			wantModel:    "m9",
		},
		{
			name:         "task hint beats role",
			task:         models.TaskNode{Agent: "engineer", Role: "implement", Provider: "hint-p", Model: "hint-m"},
			agent:        agentCfg,
			role:         roleCfg,
			wantProvider: "hint-p",
			wantModel:    "hint-m",
		},
		{
			name:         "role beats agent",
			task:         models.TaskNode{Agent: "engineer", Role: "implement"},
			agent:        agentCfg,
			role:         roleCfg,
			wantProvider: "role-p",
			wantModel:    "role-m",
		},
		{
			name:         "agent beats default",
			task:         models.TaskNode{Agent: "engineer"},
			agent:        agentCfg,
			role:         config.RoleConfig{},
			wantProvider: "agent-p",
			wantModel:    "agent-m",
		},
		{
			name:         "default as last resort",
			task:         models.TaskNode{Agent: "researcher"},
			agent:        &config.AgentConfig{},
			role:         config.RoleConfig{},
			wantProvider: "alpha",
			wantModel:    "m1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m := r.resolve(tt.projectID, tt.task, tt.agent, tt.role)
			assert.Equal(t, tt.wantProvider, p)
			assert.Equal(t, tt.wantModel, m)
		})
	}
}

func TestRunTruncatesStoredOutput(t *testing.T) {
	long := make([]byte, maxStoredOutputChars+500)
	for i := range long {
		long[i] = 'x'
	}
	alpha := &fakeAdapter{
		id: "alpha", available: true,
		modelList: []provider.ModelInfo{{ID: "m1"}},
		results:   []*provider.ExecutionResult{success(string(long), 0)},
	}
	store := &fakeStore{}
	r, _ := newTestRunner(t, testConfig(t, "alpha"), store, alpha)

	res, err := r.Run(context.Background(), Request{RunID: "run-1", Task: researcherTask("t1")})
	require.NoError(t, err)

	// The result keeps the full output; only the stored row truncates.
	assert.Len(t, res.Output, maxStoredOutputChars+500)
	require.Len(t, store.runs, 1)
	assert.Len(t, store.runs[0].Output, maxStoredOutputChars)
}
