// Package runner executes one agent-role assignment as an atomic unit:
// provider resolution, capability-aware fallback, bounded retries, and
// per-attempt persistence.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/provider"
)

const (
	// maxAttempts bounds executions per assignment, across providers.
	maxAttempts = 3

	// retryBackoff is the pause between attempts on transient failure.
	retryBackoff = 2 * time.Second

	// Stored attempt rows truncate oversized prompts and outputs.
	maxStoredInputChars  = 10_000
	maxStoredOutputChars = 50_000
)

// Store persists execution attempts and runner events. Failures are
// logged and swallowed; persistence never fails a task.
type Store interface {
	CreateAgentRun(ctx context.Context, req models.CreateAgentRunRequest) error
	CreateEventLog(ctx context.Context, req models.CreateEventLogRequest) error
}

// Request is one agent-role assignment to execute.
type Request struct {
	RunID     string
	ProjectID string
	Task      models.TaskNode

	// WorkingDir is required when the resolved provider has file access.
	WorkingDir string

	// SessionID resumes a stateful backend conversation when set.
	SessionID string

	// PlanContext is injected for roles that declare receives_plan_context.
	PlanContext string

	// ExtraContext carries upstream outputs rendered by the caller.
	ExtraContext string

	Timeout time.Duration

	// AbortRequested is polled by long-running adapters. May be nil.
	AbortRequested func() bool

	// OnEvent receives streaming events. May be nil.
	OnEvent func(provider.StreamEvent)
}

// Result is the aggregated outcome across all attempts.
type Result struct {
	Success   bool
	Output    string
	Error     string
	ErrorKind provider.ErrorKind
	Attempts  int
	CostUSD   float64

	// Provider and Model are from the final attempt.
	Provider string
	Model    string

	SessionID string
}

// Runner resolves providers and drives retries for task executions.
type Runner struct {
	cfg      *config.Config
	registry *provider.Registry
	store    Store
	logger   *slog.Logger

	// installRoot is the orchestrator's own installation directory;
	// no execution may run in a directory containing it.
	installRoot string

	// backoff is retryBackoff, overridable in tests.
	backoff time.Duration
}

// New creates a runner.
func New(cfg *config.Config, registry *provider.Registry, store Store, installRoot string) *Runner {
	return &Runner{
		cfg:         cfg,
		registry:    registry,
		store:       store,
		logger:      slog.With("component", "runner"),
		installRoot: installRoot,
		backoff:     retryBackoff,
	}
}

// Run executes the assignment. The returned error is reserved for fatal
// misconfiguration (unknown agent, unsafe working directory, no provider
// at all); execution failures come back inside Result.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	task := req.Task
	log := r.logger.With("run_id", req.RunID, "task_id", task.ID, "agent", task.Agent)

	agentCfg, err := r.cfg.GetAgent(task.Agent)
	if err != nil {
		return nil, fmt.Errorf("resolve agent: %w", err)
	}
	roleCfg := config.RoleConfig{}
	if task.Role != "" {
		roleCfg, err = agentCfg.Role(task.Role)
		if err != nil {
			return nil, fmt.Errorf("resolve role: %w", err)
		}
	}

	requiresFullCaps := agentCfg.Definition(task.Agent).RequiresFullCapabilities()

	adapter, model, err := r.resolveAdapter(ctx, req, agentCfg, roleCfg, requiresFullCaps)
	if err != nil {
		return nil, err
	}

	prompt := r.buildPrompt(req, roleCfg)
	systemPrompt := roleCfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = agentCfg.SystemPrompt
	}

	if adapter.Capabilities().FileAccess {
		if err := guardWorkingDir(req.WorkingDir, r.installRoot); err != nil {
			return nil, err
		}
		skillList, err := r.injectSkills(req.WorkingDir, task, agentCfg)
		if err != nil {
			return nil, fmt.Errorf("inject skills: %w", err)
		}
		prompt = prependSkills(prompt, skillList)
	}

	result := &Result{}
	switched := false

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result.Attempts = attempt
		result.Provider = adapter.ID()
		result.Model = model

		execCtx := provider.ExecutionContext{
			Prompt:         prompt,
			SystemPrompt:   systemPrompt,
			Model:          model,
			WorkingDir:     req.WorkingDir,
			ProjectID:      req.ProjectID,
			SessionID:      req.SessionID,
			EnableTools:    adapter.Capabilities().ToolUse,
			Timeout:        req.Timeout,
			OnEvent:        req.OnEvent,
			AbortRequested: req.AbortRequested,
		}

		log.Info("Executing attempt",
			"attempt", attempt, "provider", adapter.ID(), "model", model)
		res := adapter.Execute(ctx, execCtx)

		r.persistAttempt(ctx, req, adapter.ID(), model, attempt, prompt, res)
		result.CostUSD += res.CostUSD
		if res.SessionID != "" {
			result.SessionID = res.SessionID
		}

		if res.Success {
			result.Success = true
			result.Output = res.Output
			result.ErrorKind = provider.ErrorKindNone
			result.Error = ""
			return result, nil
		}

		kind := res.ErrorKind
		if kind == provider.ErrorKindNone {
			kind = provider.ClassifyError(res.Error)
		}
		result.Error = res.Error
		result.ErrorKind = kind
		log.Warn("Attempt failed",
			"attempt", attempt, "provider", adapter.ID(), "error_kind", kind, "error", res.Error)

		if !kind.Retryable() || attempt == maxAttempts {
			return result, nil
		}

		// After the second failure on the original provider a transient
		// error may move the task to a fallback provider. Unknown errors
		// retry in place but never switch.
		if attempt >= 2 && !switched && kind.AllowsProviderSwitch() {
			fallback, ferr := r.registry.FirstAcceptableFallback(ctx, requiresFullCaps,
				map[string]bool{adapter.ID(): true})
			if ferr == nil {
				r.recordFallback(ctx, req, adapter.ID(), fallback.ID())
				adapter = fallback
				if !provider.SupportsModel(adapter, model) {
					model = provider.DefaultModel(adapter)
				}
				switched = true
			} else {
				log.Warn("No fallback provider available", "error", ferr)
			}
		}

		select {
		case <-ctx.Done():
			result.Error = ctx.Err().Error()
			result.ErrorKind = provider.ErrorKindTransient
			return result, nil
		case <-time.After(r.backoff):
		}
	}

	return result, nil
}

// resolveAdapter applies the resolution chain, then falls back to the
// first acceptable available provider when the resolved one is down.
func (r *Runner) resolveAdapter(ctx context.Context, req Request, agentCfg *config.AgentConfig, roleCfg config.RoleConfig, requiresFullCaps bool) (provider.Adapter, string, error) {
	name, model := r.resolve(req.ProjectID, req.Task, agentCfg, roleCfg)

	adapter, err := r.registry.Get(name)
	if err == nil {
		if av, averr := r.registry.Availability(ctx, name, false); averr == nil && av.Available {
			if !provider.SupportsModel(adapter, model) && model != "" {
				// A model hint outside the adapter's list may name an
				// adapter implicitly.
				if byModel, merr := r.registry.ResolveModel(model); merr == nil {
					if av2, e2 := r.registry.Availability(ctx, byModel.ID(), false); e2 == nil && av2.Available {
						return byModel, model, nil
					}
				}
			}
			if !provider.SupportsModel(adapter, model) {
				model = provider.DefaultModel(adapter)
			}
			return adapter, model, nil
		}
	}

	r.logger.Warn("Resolved provider unavailable, falling back",
		"task_id", req.Task.ID, "provider", name)
	fallback, ferr := r.registry.FirstAcceptableFallback(ctx, requiresFullCaps, nil)
	if ferr != nil {
		return nil, "", fmt.Errorf("no provider available for agent %s: %w", req.Task.Agent, ferr)
	}
	if fallback.ID() != name {
		r.recordFallback(ctx, req, name, fallback.ID())
	}
	if !provider.SupportsModel(fallback, model) {
		model = provider.DefaultModel(fallback)
	}
	return fallback, model, nil
}

// persistAttempt writes one AgentRun row; failures are logged, not fatal.
func (r *Runner) persistAttempt(ctx context.Context, req Request, providerID, model string, attempt int, prompt string, res *provider.ExecutionResult) {
	if r.store == nil {
		return
	}
	row := models.CreateAgentRunRequest{
		RunID:        req.RunID,
		GraphTaskID:  req.Task.ID,
		Agent:        req.Task.Agent,
		Role:         req.Task.Role,
		Provider:     providerID,
		Model:        model,
		Attempt:      attempt,
		Success:      res.Success,
		Input:        truncate(prompt, maxStoredInputChars),
		Output:       truncate(res.Output, maxStoredOutputChars),
		ErrorMessage: res.Error,
		ErrorKind:    string(res.ErrorKind),
		DurationMs:   res.DurationMs,
		CostUSD:      res.CostUSD,
	}
	if res.Usage != nil {
		row.InputTokens = res.Usage.InputTokens
		row.OutputTokens = res.Usage.OutputTokens
	}
	if err := r.store.CreateAgentRun(ctx, row); err != nil {
		r.logger.Warn("Failed to persist agent run",
			"task_id", req.Task.ID, "attempt", attempt, "error", err)
	}
}

// recordFallback logs a provider_fallback event; best effort.
func (r *Runner) recordFallback(ctx context.Context, req Request, from, to string) {
	r.logger.Info("Provider fallback", "task_id", req.Task.ID, "from", from, "to", to)
	if r.store == nil {
		return
	}
	err := r.store.CreateEventLog(ctx, models.CreateEventLogRequest{
		RunID:     req.RunID,
		ProjectID: req.ProjectID,
		EventType: "provider_fallback",
		Agent:     req.Task.Agent,
		Content:   fmt.Sprintf("task %s: %s -> %s", req.Task.ID, from, to),
	})
	if err != nil {
		r.logger.Warn("Failed to persist fallback event", "task_id", req.Task.ID, "error", err)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
