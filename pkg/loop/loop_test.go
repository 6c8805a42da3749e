package loop

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/gates"
	"github.com/foremanhq/foreman/pkg/graph"
	"github.com/foremanhq/foreman/pkg/masking"
	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/prompt"
	"github.com/foremanhq/foreman/pkg/runner"
)

// memStore records every persistence call the loop makes.
type memStore struct {
	mu          sync.Mutex
	checkpoints []models.RunCheckpoint
	heartbeats  int
	tasks       []models.CreateTaskRequest
	updates     map[string][]models.UpdateTaskRequest
	notes       []models.CreateTaskNoteRequest
	messages    []models.AgentMessage
	events      []models.CreateEventLogRequest
	decisions   []models.CreatePMDecisionLogRequest
}

func newMemStore() *memStore {
	return &memStore{updates: make(map[string][]models.UpdateTaskRequest)}
}

func (m *memStore) Checkpoint(_ context.Context, _ string, cp models.RunCheckpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkpoints = append(m.checkpoints, cp)
	return nil
}

func (m *memStore) Heartbeat(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.heartbeats++
	return nil
}

func (m *memStore) CreateTask(_ context.Context, req models.CreateTaskRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, req)
	return nil
}

func (m *memStore) UpdateTask(_ context.Context, _, graphTaskID string, req models.UpdateTaskRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates[graphTaskID] = append(m.updates[graphTaskID], req)
	return nil
}

func (m *memStore) CreateTaskNote(_ context.Context, req models.CreateTaskNoteRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append(m.notes, req)
	return nil
}

func (m *memStore) CreateAgentMessage(_ context.Context, _ string, msg models.AgentMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memStore) CreateEventLog(_ context.Context, req models.CreateEventLogRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, req)
	return nil
}

func (m *memStore) CreatePMDecision(_ context.Context, req models.CreatePMDecisionLogRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions = append(m.decisions, req)
	return nil
}

func (m *memStore) lastStatusUpdate(taskID string) *models.TaskStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	ups := m.updates[taskID]
	for i := len(ups) - 1; i >= 0; i-- {
		if ups[i].Status != nil {
			return ups[i].Status
		}
	}
	return nil
}

func (m *memStore) triggerKinds() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make([]string, len(m.decisions))
	for i, d := range m.decisions {
		kinds[i] = d.TriggerKind
	}
	return kinds
}

// fakeExec resolves tasks from a scripted result table, tracking peak
// concurrency. Tasks without an entry succeed with a canned output.
type fakeExec struct {
	mu      sync.Mutex
	results map[string]*runner.Result
	errs    map[string]error
	delay   time.Duration
	hang    map[string]bool

	requests []runner.Request
	cur, max int
}

func newFakeExec() *fakeExec {
	return &fakeExec{
		results: make(map[string]*runner.Result),
		errs:    make(map[string]error),
		hang:    make(map[string]bool),
	}
}

func (f *fakeExec) Run(ctx context.Context, req runner.Request) (*runner.Result, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.cur++
	if f.cur > f.max {
		f.max = f.cur
	}
	hang := f.hang[req.Task.ID]
	res, err := f.results[req.Task.ID], f.errs[req.Task.ID]
	delay := f.delay
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.cur--
		f.mu.Unlock()
	}()

	if hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if res != nil {
		return res, nil
	}
	return &runner.Result{Success: true, Output: "done " + req.Task.ID, Attempts: 1}, nil
}

// scriptedPM replays decisions round by round, repeating the last entry.
type pmResponse struct {
	raw  string
	cost float64
	err  error
}

type scriptedPM struct {
	mu        sync.Mutex
	responses []pmResponse
	prompts   []string
}

func (p *scriptedPM) Decide(_ context.Context, prompt string) (string, float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	idx := len(p.prompts) - 1
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	r := p.responses[idx]
	return r.raw, r.cost, r.err
}

func decide(t *testing.T, actions ...models.PMAction) string {
	t.Helper()
	raw, err := prompt.RenderDecision(&models.PMDecision{Actions: actions})
	require.NoError(t, err)
	return raw
}

func execute(ids ...string) models.PMAction {
	return models.PMAction{Type: models.ActionExecute, TaskIDs: ids}
}

func complete(summary string) models.PMAction {
	return models.PMAction{Type: models.ActionComplete, Summary: summary}
}

// noop is a valid action that makes no scheduling progress.
func noop(taskID string) models.PMAction {
	return models.PMAction{Type: models.ActionAnswerAgent, TaskID: taskID, Answer: "acknowledged"}
}

func fastConfig() config.LoopConfig {
	cfg := *config.DefaultLoopConfig()
	cfg.MaxParallelTasks = 3
	cfg.MaxDecisions = 20
	cfg.BudgetUSD = 0
	cfg.TaskExecutionTimeout = 2 * time.Second
	cfg.HealthCheckInterval = 5 * time.Millisecond
	cfg.StaleThreshold = time.Hour
	cfg.PlanConfirmTimeout = 100 * time.Millisecond
	cfg.QuestionTimeout = 100 * time.Millisecond
	return cfg
}

func testGraph(t *testing.T, specs ...models.TaskSpec) graph.Graph {
	t.Helper()
	g, err := graph.New(specs)
	require.NoError(t, err)
	return g
}

func chainSpecs(n int) []models.TaskSpec {
	specs := make([]models.TaskSpec, n)
	for i := range specs {
		specs[i] = models.TaskSpec{
			ID:    fmt.Sprintf("t%d", i+1),
			Title: fmt.Sprintf("step %d", i+1),
			Agent: "engineer",
			Role:  "implement",
		}
		if i > 0 {
			specs[i].DependsOn = []string{fmt.Sprintf("t%d", i)}
		}
	}
	return specs
}

func newTestLoop(t *testing.T, cfg config.LoopConfig, exec Executor, pm PMClient, st Store) (*Loop, *gates.Project) {
	t.Helper()
	gate, err := gates.NewProjectAt(t.TempDir())
	require.NoError(t, err)
	agents := []models.AgentDefinition{
		{Name: "engineer", Type: "coder", Roles: []string{"implement", "fix"}},
		{Name: "reviewer", Type: "reviewer", Roles: []string{"review"}},
	}
	return New(cfg, agents, exec, pm, st, gate), gate
}

func runOpts(g graph.Graph) Options {
	return Options{
		RunID:      "run-1",
		ProjectID:  "proj-1",
		Request:    "build the thing",
		WorkingDir: "/tmp/work",
		Graph:      g,
	}
}

func TestLoop_LinearPipeline(t *testing.T) {
	g := testGraph(t, chainSpecs(3)...)
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, execute("t2"))},
		{raw: decide(t, execute("t3"))},
		{raw: decide(t, complete("shipped"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, "shipped", res.Summary)
	assert.Equal(t, 4, res.Decisions)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, []string{"initial", "task_completed", "task_completed", "task_completed"}, st.triggerKinds())

	for _, id := range []string{"t1", "t2", "t3"} {
		n, ok := res.Graph.Get(id)
		require.True(t, ok)
		assert.Equal(t, models.TaskStatusDone, n.Status)
		status := st.lastStatusUpdate(id)
		require.NotNil(t, status)
		assert.Equal(t, models.TaskStatusDone, *status)
	}

	// Initial rows mirror the plan; dependency outputs flow downstream.
	assert.Len(t, st.tasks, 3)
	require.Len(t, exec.requests, 3)
	assert.Contains(t, exec.requests[1].ExtraContext, "done t1")
}

func TestLoop_ParallelCapPrefix(t *testing.T) {
	specs := make([]models.TaskSpec, 5)
	for i := range specs {
		specs[i] = models.TaskSpec{ID: fmt.Sprintf("t%d", i+1), Title: "parallel", Agent: "engineer"}
	}
	g := testGraph(t, specs...)

	st := newMemStore()
	exec := newFakeExec()
	exec.delay = 20 * time.Millisecond
	// The PM greedily lists everything every round; only the prefix
	// within the parallelism budget may launch.
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1", "t2", "t3", "t4", "t5"))},
	}}

	cfg := fastConfig()
	cfg.MaxParallelTasks = 2
	l, _ := newTestLoop(t, cfg, exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	for _, id := range g.IDs() {
		n, _ := res.Graph.Get(id)
		assert.Equal(t, models.TaskStatusDone, n.Status, id)
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	assert.LessOrEqual(t, exec.max, 2, "parallelism cap exceeded")
	assert.Len(t, exec.requests, 5)
}

func TestLoop_FallbackOnUnparseableDecision(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "only", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: "I think we should probably just get going?"},
		{raw: decide(t, complete("ok"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	n, _ := res.Graph.Get("t1")
	assert.Equal(t, models.TaskStatusDone, n.Status)

	require.NotEmpty(t, st.decisions)
	assert.True(t, st.decisions[0].ParseFailed)
	assert.Contains(t, st.decisions[0].Reasoning, "fallback")
}

func TestLoop_TaskFailureTrigger(t *testing.T) {
	g := testGraph(t, chainSpecs(2)...)
	st := newMemStore()
	exec := newFakeExec()
	exec.results["t1"] = &runner.Result{Success: false, Error: "compile error", Attempts: 3}
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, complete("giving up"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, []string{"initial", "task_failed"}, st.triggerKinds())

	n, _ := res.Graph.Get("t1")
	assert.Equal(t, models.TaskStatusFailed, n.Status)
	assert.Equal(t, "compile error", n.Error)
	assert.Equal(t, 3, n.Attempts)
	// The dependent never became ready.
	n2, _ := res.Graph.Get("t2")
	assert.Equal(t, models.TaskStatusPending, n2.Status)

	require.Len(t, res.Steps, 1)
	assert.Equal(t, models.TaskStatusFailed, res.Steps[0].Status)
}

func TestLoop_RetryAfterFailure(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "flaky", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	exec.results["t1"] = &runner.Result{Success: false, Error: "boom", Attempts: 1}
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, models.PMAction{Type: models.ActionRetry, TaskID: "t1"})},
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, complete("ok"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)

	done := make(chan struct{})
	var res *Result
	var runErr error
	go func() {
		defer close(done)
		res, runErr = l.Run(context.Background(), runOpts(g))
	}()

	// Second execution succeeds.
	time.Sleep(10 * time.Millisecond)
	exec.mu.Lock()
	delete(exec.results, "t1")
	exec.mu.Unlock()

	<-done
	require.NoError(t, runErr)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	n, _ := res.Graph.Get("t1")
	assert.Equal(t, models.TaskStatusDone, n.Status)
	assert.Empty(t, n.Error)
	assert.GreaterOrEqual(t, n.Attempts, 1)
}

func TestLoop_AddSkipAndComplete(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "first", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t,
			models.PMAction{Type: models.ActionAddTasks, Tasks: []models.TaskSpec{
				{Title: "follow-up", Agent: "reviewer", Role: "review", DependsOn: []string{"t1"}},
			}},
			execute("t1"),
		)},
		{raw: decide(t, models.PMAction{Type: models.ActionSkip, TaskIDs: []string{"t2"}, Reason: "not needed"})},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	n2, ok := res.Graph.Get("t2")
	require.True(t, ok, "added task should exist as t2")
	assert.Equal(t, models.TaskStatusSkipped, n2.Status)
	assert.Equal(t, 1, n2.DecisionRound)

	// One persisted row for the plan task, one for the added task.
	require.Len(t, st.tasks, 2)
	assert.Equal(t, "t2", st.tasks[1].GraphTaskID)
	assert.Equal(t, 1, st.tasks[1].DecisionRound)

	require.NotEmpty(t, st.notes)
	assert.Equal(t, "skipped: not needed", st.notes[0].Note)
	assert.Equal(t, "pm", st.notes[0].Author)
}

func TestLoop_RemoveAndReassign(t *testing.T) {
	g := testGraph(t,
		models.TaskSpec{ID: "t1", Title: "keep", Agent: "engineer"},
		models.TaskSpec{ID: "t2", Title: "drop", Agent: "engineer"},
	)
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t,
			models.PMAction{Type: models.ActionRemoveTasks, TaskIDs: []string{"t2"}, Reason: "duplicate"},
			models.PMAction{Type: models.ActionReassign, TaskID: "t1", Agent: "reviewer", Role: "review"},
			execute("t1"),
		)},
		{raw: decide(t, complete("done"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	_, ok := res.Graph.Get("t2")
	assert.False(t, ok, "removed task should be gone from the graph")
	status := st.lastStatusUpdate("t2")
	require.NotNil(t, status)
	assert.Equal(t, models.TaskStatusCancelled, *status)

	require.Len(t, exec.requests, 1)
	assert.Equal(t, "reviewer", exec.requests[0].Task.Agent)
	assert.Equal(t, "review", exec.requests[0].Task.Role)
}

func TestLoop_BudgetCeilingAborts(t *testing.T) {
	g := testGraph(t, chainSpecs(2)...)
	st := newMemStore()
	exec := newFakeExec()
	exec.results["t1"] = &runner.Result{Success: true, Output: "expensive", Attempts: 1, CostUSD: 3.0}
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
	}}

	cfg := fastConfig()
	cfg.BudgetUSD = 2.0
	cfg.BudgetWarningFraction = 0.8
	l, _ := newTestLoop(t, cfg, exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusAborted, res.Status)
	assert.Contains(t, res.Error, "budget exceeded")
	assert.InDelta(t, 3.0, res.SpentUSD, 0.001)

	// The synthetic budget step closes the step list.
	require.NotEmpty(t, res.Steps)
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, "budget", last.TaskID)
	assert.Equal(t, models.TaskStatusCancelled, last.Status)
}

func TestLoop_BudgetWarningTrigger(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "cheap", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	// The PM invocation itself crosses the warning threshold; the next
	// round is triggered by budget_warning.
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, noop("t1")), cost: 0.9},
		{raw: decide(t, complete("stopping early"))},
	}}

	cfg := fastConfig()
	cfg.BudgetUSD = 1.0
	cfg.BudgetWarningFraction = 0.8
	l, _ := newTestLoop(t, cfg, exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, []string{"initial", "budget_warning"}, st.triggerKinds())
}

func TestLoop_DecisionCap(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "stalls", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	// The PM never makes progress.
	pm := &scriptedPM{responses: []pmResponse{{raw: decide(t, noop("t1"))}}}

	cfg := fastConfig()
	cfg.MaxDecisions = 3
	l, _ := newTestLoop(t, cfg, exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusFailed, res.Status)
	assert.Contains(t, res.Error, "decision limit reached (3)")
	assert.Equal(t, 3, res.Decisions)
	assert.Empty(t, exec.requests)
}

func TestLoop_AbortBeforeFirstDecision(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "never runs", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{{raw: decide(t, noop("t1"))}}}

	l, gate := newTestLoop(t, fastConfig(), exec, pm, st)
	require.NoError(t, gate.RequestAbort())

	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusAborted, res.Status)
	assert.Equal(t, "aborted by user", res.Error)
	assert.Zero(t, res.Decisions)
	assert.Empty(t, exec.requests)

	// The terminal status reached the store.
	require.NotEmpty(t, st.checkpoints)
	final := st.checkpoints[len(st.checkpoints)-1]
	require.NotNil(t, final.Status)
	assert.Equal(t, models.RunStatusAborted, *final.Status)
}

func TestLoop_AbortDuringExecution(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "long", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	exec.hang["t1"] = true
	pm := &scriptedPM{responses: []pmResponse{{raw: decide(t, execute("t1"))}}}

	l, gate := newTestLoop(t, fastConfig(), exec, pm, st)

	go func() {
		time.Sleep(20 * time.Millisecond)
		gate.RequestAbort()
	}()

	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusAborted, res.Status)
	// The interrupted node keeps its running status for resume.
	n, _ := res.Graph.Get("t1")
	assert.Equal(t, models.TaskStatusRunning, n.Status)
}

func TestLoop_StaleExecutionForceFails(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "silent", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	exec.hang["t1"] = true
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, complete("wrapped up"))},
	}}

	cfg := fastConfig()
	cfg.StaleThreshold = 30 * time.Millisecond
	l, _ := newTestLoop(t, cfg, exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	n, _ := res.Graph.Get("t1")
	assert.Equal(t, models.TaskStatusFailed, n.Status)
	assert.Contains(t, n.Error, "Task appears stale")
	assert.Equal(t, []string{"initial", "task_failed"}, st.triggerKinds())
}

func TestLoop_ExecutionTimeoutReportsTimedOut(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "slow", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	exec.errs["t1"] = context.DeadlineExceeded
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, complete("gave up"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	n, _ := res.Graph.Get("t1")
	assert.Equal(t, models.TaskStatusFailed, n.Status)
	assert.Equal(t, "timed out", n.Error)
}

func TestLoop_PlanRejected(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "planned", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{{raw: decide(t, noop("t1"))}}}

	cfg := fastConfig()
	cfg.RequirePlanConfirmation = true
	l, gate := newTestLoop(t, cfg, exec, pm, st)

	opts := runOpts(g)
	require.NoError(t, gate.WritePlanDecision(opts.RunID, gates.PlanDecision{
		Action: gates.PlanActionReject,
		Notes:  "wrong approach",
	}))

	res, err := l.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusFailed, res.Status)
	assert.Contains(t, res.Error, "plan rejected by user")
	assert.Contains(t, res.Error, "wrong approach")
	assert.Zero(t, res.Decisions)
	assert.Empty(t, exec.requests)
}

func TestLoop_PlanModifyFeedsUserMessage(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "planned", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, complete("adjusted"))},
	}}

	cfg := fastConfig()
	cfg.RequirePlanConfirmation = true
	l, gate := newTestLoop(t, cfg, exec, pm, st)

	opts := runOpts(g)
	require.NoError(t, gate.WritePlanDecision(opts.RunID, gates.PlanDecision{
		Action: gates.PlanActionModify,
		Notes:  "also add tests",
	}))

	res, err := l.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	// The modification notes outrank the initial trigger.
	assert.Equal(t, []string{"user_message"}, st.triggerKinds())
	require.NotEmpty(t, pm.prompts)
	assert.Contains(t, pm.prompts[0], "also add tests")
}

func TestLoop_PlanConfirmationTimeoutContinues(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "planned", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, complete("proceeded"))},
	}}

	cfg := fastConfig()
	cfg.RequirePlanConfirmation = true
	cfg.PlanConfirmTimeout = 20 * time.Millisecond
	l, _ := newTestLoop(t, cfg, exec, pm, st)

	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, []string{"initial"}, st.triggerKinds())
}

func TestLoop_AskUserWithAnswer(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "needs input", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, models.PMAction{
			Type:            models.ActionAskUser,
			Question:        "Which database?",
			BlockingTaskIDs: []string{"t1"},
		})},
		{raw: decide(t, complete("answered"))},
	}}

	l, gate := newTestLoop(t, fastConfig(), exec, pm, st)

	opts := runOpts(g)
	require.NoError(t, gate.WriteAnswer(opts.RunID, "postgres"))

	res, err := l.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, []string{"initial", "user_message"}, st.triggerKinds())
	require.Len(t, pm.prompts, 2)
	assert.Contains(t, pm.prompts[1], "postgres")

	// The blocked task was released after the answer.
	n, _ := res.Graph.Get("t1")
	assert.NotEqual(t, models.TaskStatusBlocked, n.Status)
	assert.Empty(t, n.BlockingQuestion)
}

func TestLoop_AskUserTimeoutUnblocks(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "needs input", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, models.PMAction{
			Type:            models.ActionAskUser,
			Question:        "Anyone there?",
			BlockingTaskIDs: []string{"t1"},
		})},
		{raw: decide(t, complete("moving on"))},
	}}

	cfg := fastConfig()
	cfg.QuestionTimeout = 20 * time.Millisecond
	l, _ := newTestLoop(t, cfg, exec, pm, st)

	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	n, _ := res.Graph.Get("t1")
	assert.Equal(t, models.TaskStatusReady, n.Status)
	// No answer means no user_message round.
	assert.Equal(t, []string{"initial", "initial"}, st.triggerKinds())
}

func TestLoop_AnswerAgentUnblocks(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "asker", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, models.PMAction{Type: models.ActionAnswerAgent, TaskID: "t1", Answer: "use the staging bucket"})},
		{raw: decide(t, complete("resolved"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	require.NotEmpty(t, st.notes)
	assert.Equal(t, "t1", st.notes[0].GraphTaskID)
	assert.Equal(t, "pm", st.notes[0].Author)
	assert.Equal(t, "use the staging bucket", st.notes[0].Note)
}

func TestLoop_UserMessageOutranksIdle(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "waiting", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, complete("heard you"))},
	}}

	l, gate := newTestLoop(t, fastConfig(), exec, pm, st)

	opts := runOpts(g)
	require.NoError(t, gate.EnqueueUserMessage(opts.RunID, "change of plans"))

	res, err := l.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, []string{"user_message"}, st.triggerKinds())
	assert.Contains(t, pm.prompts[0], "change of plans")
}

func TestLoop_ResumeSkipsPlanGate(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "resumed", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, complete("picked back up"))},
	}}

	cfg := fastConfig()
	cfg.RequirePlanConfirmation = true
	l, _ := newTestLoop(t, cfg, exec, pm, st)

	opts := runOpts(g)
	opts.Resume = &models.Trigger{InterruptedIDs: []string{"t1"}}

	res, err := l.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, []string{"pipeline_resumed"}, st.triggerKinds())
}

func TestLoop_CompletesWhenGraphExhausts(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "only", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	// The PM launches but never says complete.
	pm := &scriptedPM{responses: []pmResponse{{raw: decide(t, execute("t1"))}}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusCompleted, res.Status)
	assert.Equal(t, "all tasks reached a terminal state", res.Summary)
}

func TestLoop_RouterStripsAgentMessages(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "chatty", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	exec.results["t1"] = &runner.Result{
		Success:  true,
		Attempts: 1,
		Output:   "work done\n[AGENT_MESSAGE]{\"to\": \"pm\", \"type\": \"flag\", \"message\": \"tech debt here\"}[/AGENT_MESSAGE]",
	}
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, complete("noted"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	n, _ := res.Graph.Get("t1")
	assert.NotContains(t, n.Output, "AGENT_MESSAGE")
	assert.Contains(t, n.Output, "work done")

	// The PM saw the flag in its next prompt and it was persisted.
	require.Len(t, pm.prompts, 2)
	assert.Contains(t, pm.prompts[1], "tech debt here")
	st.mu.Lock()
	defer st.mu.Unlock()
	require.Len(t, st.messages, 1)
	assert.Equal(t, "pm", st.messages[0].To)
}

func TestLoop_MaskerScrubsTaskOutput(t *testing.T) {
	g := testGraph(t, models.TaskSpec{ID: "t1", Title: "setup", Agent: "engineer"})
	st := newMemStore()
	exec := newFakeExec()
	exec.results["t1"] = &runner.Result{
		Success:  true,
		Attempts: 1,
		Output:   "wrote config, password=hunter2secret works",
	}
	pm := &scriptedPM{responses: []pmResponse{
		{raw: decide(t, execute("t1"))},
		{raw: decide(t, complete("configured"))},
	}}

	l, _ := newTestLoop(t, fastConfig(), exec, pm, st)
	l.SetMasker(masking.NewService())
	res, err := l.Run(context.Background(), runOpts(g))
	require.NoError(t, err)

	n, _ := res.Graph.Get("t1")
	assert.NotContains(t, n.Output, "hunter2secret")
	assert.Contains(t, n.Output, "__MASKED_")

	// The scrubbed form is what reaches both the store and the PM.
	st.mu.Lock()
	upd := st.updates["t1"][len(st.updates["t1"])-1]
	st.mu.Unlock()
	require.NotNil(t, upd.Output)
	assert.NotContains(t, *upd.Output, "hunter2secret")
	require.Len(t, pm.prompts, 2)
	assert.NotContains(t, pm.prompts[1], "hunter2secret")
}
