// Package loop drives a pipeline run: it owns the task graph, obtains
// triggers, asks the PM for decisions, and applies them until the run
// terminates. All graph mutations happen on the loop goroutine; agent
// executions run concurrently and report back over a channel.
package loop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/gates"
	"github.com/foremanhq/foreman/pkg/graph"
	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/router"
	"github.com/foremanhq/foreman/pkg/runner"
)

// Executor runs one agent-role assignment to completion, including its
// internal retries. *runner.Runner satisfies this.
type Executor interface {
	Run(ctx context.Context, req runner.Request) (*runner.Result, error)
}

// PMClient invokes the project-manager model for one decision round and
// returns the raw model output plus the cost of the invocation.
type PMClient interface {
	Decide(ctx context.Context, prompt string) (output string, costUSD float64, err error)
}

// Store is the narrow persistence surface the loop writes through.
// *store.Store satisfies this.
type Store interface {
	Checkpoint(ctx context.Context, runID string, cp models.RunCheckpoint) error
	Heartbeat(ctx context.Context, runID string) error
	CreateTask(ctx context.Context, req models.CreateTaskRequest) error
	UpdateTask(ctx context.Context, runID, graphTaskID string, req models.UpdateTaskRequest) error
	CreateTaskNote(ctx context.Context, req models.CreateTaskNoteRequest) error
	CreateAgentMessage(ctx context.Context, runID string, msg models.AgentMessage) error
	CreateEventLog(ctx context.Context, req models.CreateEventLogRequest) error
	CreatePMDecision(ctx context.Context, req models.CreatePMDecisionLogRequest) error
}

// OutputMasker scrubs credentials from agent output before it is stored
// or fed into decision prompts. *masking.Service satisfies this.
type OutputMasker interface {
	MaskOutput(content string) string
}

// Loop is the decision-loop controller. One Loop serves one run.
type Loop struct {
	cfg    config.LoopConfig
	agents []models.AgentDefinition
	exec   Executor
	pm     PMClient
	store  Store
	gate   *gates.Project
	router *router.Router
	masker OutputMasker
	logger *slog.Logger
}

// Options configures one run.
type Options struct {
	RunID      string
	ProjectID  string
	Request    string
	WorkingDir string

	// Graph is the initial task graph (the plan).
	Graph graph.Graph

	// Resume, when set, replaces the initial trigger with a
	// pipeline_resumed trigger carrying prior state. The plan gate is
	// skipped on resume.
	Resume *models.Trigger

	// PlanContext is forwarded to roles that receive plan context.
	PlanContext string
}

// Result aggregates the outcome of a run.
type Result struct {
	Status    models.RunStatus
	Summary   string
	Error     string
	Decisions int
	SpentUSD  float64
	Graph     graph.Graph
	Steps     []models.StepSummary
}

// New creates a loop. The router receives persisted inter-agent messages
// through the store.
func New(cfg config.LoopConfig, agents []models.AgentDefinition, exec Executor, pm PMClient, st Store, gate *gates.Project) *Loop {
	l := &Loop{
		cfg:    cfg,
		agents: agents,
		exec:   exec,
		pm:     pm,
		store:  st,
		gate:   gate,
		logger: slog.With("component", "loop"),
	}
	return l
}

// SetMasker installs an output masker. When unset, output passes through
// unmasked.
func (l *Loop) SetMasker(m OutputMasker) {
	l.masker = m
}

// runState is the per-run mutable state. It lives on the loop goroutine;
// launched executions only touch it through the completions channel.
type runState struct {
	runID       string
	projectID   string
	request     string
	workingDir  string
	planContext string

	g         graph.Graph
	startedAt time.Time

	pending  *models.Trigger
	userMsgs []string

	spent        float64
	decisions    int
	budgetWarned bool

	done    bool
	status  models.RunStatus
	summary string
	errMsg  string

	steps []models.StepSummary

	inflight    map[string]*execution
	completions chan execOutcome

	lastLogMod   time.Time
	lastActivity time.Time
}

// Run drives the pipeline to termination and returns the aggregated
// result. The returned error is reserved for a failed lifecycle
// checkpoint; run-level failures are reported in Result.
func (l *Loop) Run(ctx context.Context, opts Options) (*Result, error) {
	l.router = router.New(router.WithPersist(func(msg models.AgentMessage) {
		if err := l.store.CreateAgentMessage(context.Background(), opts.RunID, msg); err != nil {
			l.logger.Warn("failed to persist agent message", "run_id", opts.RunID, "error", err)
		}
	}))

	s := &runState{
		runID:        opts.RunID,
		projectID:    opts.ProjectID,
		request:      opts.Request,
		workingDir:   opts.WorkingDir,
		planContext:  opts.PlanContext,
		g:            opts.Graph.Clone(),
		startedAt:    time.Now(),
		status:       models.RunStatusRunning,
		inflight:     make(map[string]*execution),
		completions:  make(chan execOutcome, completionBuffer),
		lastActivity: time.Now(),
	}

	l.persistInitialTasks(ctx, s)

	if opts.Resume != nil {
		t := *opts.Resume
		t.Kind = models.TriggerPipelineResumed
		s.pending = &t
	} else {
		if proceed := l.confirmPlan(ctx, s); !proceed {
			return l.finalize(ctx, s)
		}
		s.pending = &models.Trigger{
			Kind:         models.TriggerInitial,
			ReadyTaskIDs: s.g.ReadyTasks(),
		}
	}

	for !s.done {
		l.runCycle(ctx, s)
	}

	return l.finalize(ctx, s)
}

// persistInitialTasks mirrors the initial graph into task rows. Rows that
// already exist (resume) are tolerated.
func (l *Loop) persistInitialTasks(ctx context.Context, s *runState) {
	for _, id := range s.g.IDs() {
		n, _ := s.g.Get(id)
		err := l.store.CreateTask(ctx, models.CreateTaskRequest{
			RunID:       s.runID,
			GraphTaskID: n.ID,
			Title:       n.Title,
			Description: n.Description,
			Agent:       n.Agent,
			Role:        n.Role,
			Status:      n.Status,
			DependsOn:   n.DependsOn,
		})
		if err != nil {
			l.logger.Warn("failed to persist task row", "task", id, "error", err)
		}
	}
}

// confirmPlan publishes the plan gate and waits for the user's decision.
// Returns false when the run must not proceed (reject or abort); the run
// state carries the terminal status in that case. Timeout auto-continues.
func (l *Loop) confirmPlan(ctx context.Context, s *runState) bool {
	if !l.cfg.RequirePlanConfirmation {
		return true
	}

	plan := s.g.Summary()
	if err := l.gate.WritePlan(s.runID, plan); err != nil {
		l.logger.Warn("failed to publish plan gate", "error", err)
		return true
	}
	status := models.RunStatusAwaitingPlan
	l.checkpoint(ctx, s, models.RunCheckpoint{Status: &status})

	d, err := l.gate.AwaitPlanDecision(ctx, s.runID, l.cfg.PlanConfirmTimeout)
	switch {
	case errors.Is(err, gates.ErrGateTimeout):
		l.logger.Info("plan confirmation timed out, continuing", "run_id", s.runID)
	case errors.Is(err, gates.ErrAborted):
		s.done = true
		s.status = models.RunStatusAborted
		s.errMsg = "aborted while awaiting plan confirmation"
		return false
	case err != nil:
		l.logger.Warn("plan gate failed, continuing", "error", err)
	case d.Action == gates.PlanActionReject:
		s.done = true
		s.status = models.RunStatusFailed
		s.errMsg = fmt.Sprintf("plan rejected by user: %s", d.Notes)
		return false
	case d.Action == gates.PlanActionModify:
		if d.Notes != "" {
			s.userMsgs = append(s.userMsgs, d.Notes)
		}
	}

	running := models.RunStatusRunning
	l.checkpoint(ctx, s, models.RunCheckpoint{Status: &running})
	return true
}

// finalize drains outstanding executions all-settled, writes the final
// checkpoint, and builds the result.
func (l *Loop) finalize(ctx context.Context, s *runState) (*Result, error) {
	l.drain(ctx, s)

	graphJSON, err := s.g.Encode()
	if err != nil {
		l.logger.Warn("failed to encode final graph", "error", err)
	}
	stepsJSON := encodeSteps(s.steps)
	currentStep := len(s.steps)

	status := s.status
	cp := models.RunCheckpoint{
		Status:        &status,
		GraphJSON:     &graphJSON,
		StepsJSON:     &stepsJSON,
		DecisionCount: &s.decisions,
		RunningCost:   &s.spent,
		CurrentStep:   &currentStep,
	}
	if s.errMsg != "" {
		cp.ErrorMessage = &s.errMsg
	}

	// The lifecycle checkpoint is the one persistence write that must
	// not be swallowed.
	if err := l.store.Checkpoint(ctx, s.runID, cp); err != nil {
		return nil, fmt.Errorf("failed to write final checkpoint: %w", err)
	}

	l.gate.AppendLog(fmt.Sprintf("pipeline %s finished: %s", s.runID, s.status))
	return &Result{
		Status:    s.status,
		Summary:   s.summary,
		Error:     s.errMsg,
		Decisions: s.decisions,
		SpentUSD:  s.spent,
		Graph:     s.g,
		Steps:     s.steps,
	}, nil
}

// checkpoint writes a partial run update, logging failures except for
// status transitions, which the caller handles via finalize.
func (l *Loop) checkpoint(ctx context.Context, s *runState, cp models.RunCheckpoint) {
	now := time.Now()
	cp.Heartbeat = &now
	if err := l.store.Checkpoint(ctx, s.runID, cp); err != nil {
		l.logger.Warn("failed to checkpoint run", "run_id", s.runID, "error", err)
	}
}
