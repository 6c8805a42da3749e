package loop

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/provider"
	"github.com/foremanhq/foreman/pkg/runner"
)

// completionBuffer sizes the completions channel generously so that
// goroutines whose results were force-resolved (stale, abort) can still
// send without blocking after the loop stops listening.
const completionBuffer = 32

// execution tracks one in-flight agent run.
type execution struct {
	cancel context.CancelFunc
}

// execOutcome is what a launched execution reports back.
type execOutcome struct {
	taskID string
	res    *runner.Result
	err    error
}

// launch transitions the node to running, persists the row, and starts the
// execution goroutine. The caller has already verified the parallelism
// budget.
func (l *Loop) launch(ctx context.Context, s *runState, id string) {
	node, ok := s.g.Get(id)
	if !ok {
		return
	}

	g, err := s.g.UpdateStatus(id, models.TaskStatusRunning, nil)
	if err != nil {
		l.logger.Warn("cannot launch task", "task", id, "error", err)
		return
	}
	s.g = g

	status := models.TaskStatusRunning
	if err := l.store.UpdateTask(ctx, s.runID, id, models.UpdateTaskRequest{Status: &status}); err != nil {
		l.logger.Warn("failed to persist task launch", "task", id, "error", err)
	}
	l.event(ctx, s, "task_started", node.Agent, fmt.Sprintf("%s: %s", id, node.Title))
	l.gate.AppendLog(fmt.Sprintf("[%s] %s started (%s)", id, node.Title, node.Agent))

	execCtx, cancel := context.WithTimeout(context.Background(), l.cfg.TaskExecutionTimeout)
	s.inflight[id] = &execution{cancel: cancel}
	s.lastActivity = time.Now()

	req := runner.Request{
		RunID:          s.runID,
		ProjectID:      s.projectID,
		Task:           node,
		WorkingDir:     s.workingDir,
		PlanContext:    s.planContext,
		ExtraContext:   l.dependencyContext(s, node),
		Timeout:        l.cfg.TaskExecutionTimeout,
		AbortRequested: l.gate.AbortRequested,
		OnEvent: func(ev provider.StreamEvent) {
			if ev.Text != "" {
				l.gate.AppendLog(fmt.Sprintf("[%s] %s", id, ev.Text))
			}
		},
	}

	go func() {
		res, err := l.exec.Run(execCtx, req)
		s.completions <- execOutcome{taskID: id, res: res, err: err}
	}()
}

// dependencyContext renders terminal upstream outputs for the prompt.
func (l *Loop) dependencyContext(s *runState, node models.TaskNode) string {
	if len(node.DependsOn) == 0 {
		return ""
	}
	var b strings.Builder
	for _, dep := range node.DependsOn {
		d, ok := s.g.Get(dep)
		if !ok || d.Output == "" {
			continue
		}
		fmt.Fprintf(&b, "Output of %s (%s):\n%s\n\n", dep, d.Title, d.Output)
	}
	return strings.TrimRight(b.String(), "\n")
}

// awaitCompletion blocks until an in-flight execution resolves, running
// the periodic health check while waiting: abort flag, log staleness, and
// the user-message gate. Returns nil when the wait was interrupted by the
// context or the abort flag (the cycle's abort check takes over).
func (l *Loop) awaitCompletion(ctx context.Context, s *runState) *execOutcome {
	ticker := time.NewTicker(l.cfg.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case out := <-s.completions:
			ex, ok := s.inflight[out.taskID]
			if !ok {
				// Already force-resolved; drop the late result.
				continue
			}
			ex.cancel()
			delete(s.inflight, out.taskID)
			return &out

		case <-ticker.C:
			if err := l.store.Heartbeat(ctx, s.runID); err != nil {
				l.logger.Warn("heartbeat failed", "run_id", s.runID, "error", err)
			}
			if l.gate.AbortRequested() {
				return nil
			}
			if out := l.checkStaleness(s); out != nil {
				return out
			}
			for _, m := range l.gate.DrainUserMessages(s.runID) {
				s.userMsgs = append(s.userMsgs, m.Message)
			}

		case <-ctx.Done():
			return nil
		}
	}
}

// checkStaleness compares the project log's mtime against the stale
// threshold. When no log activity occurs for that long, the oldest
// in-flight execution is force-resolved as a failure.
func (l *Loop) checkStaleness(s *runState) *execOutcome {
	if mod := l.gate.LogModTime(); mod.After(s.lastLogMod) {
		s.lastLogMod = mod
		s.lastActivity = time.Now()
		return nil
	}
	idle := time.Since(s.lastActivity)
	if idle < l.cfg.StaleThreshold {
		return nil
	}

	ids := make([]string, 0, len(s.inflight))
	for id := range s.inflight {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)
	id := ids[0]

	ex := s.inflight[id]
	ex.cancel()
	delete(s.inflight, id)
	s.lastActivity = time.Now()

	return &execOutcome{
		taskID: id,
		res: &runner.Result{
			Success: false,
			Error:   fmt.Sprintf("Task appears stale - no log activity for %ds", int(idle.Seconds())),
		},
	}
}

// drain awaits all remaining in-flight executions with all-settled
// semantics. On aborted runs the executions are cancelled first and their
// nodes keep their last-known running status for resume.
func (l *Loop) drain(ctx context.Context, s *runState) {
	if len(s.inflight) == 0 {
		return
	}

	aborted := s.status == models.RunStatusAborted
	if aborted {
		for _, ex := range s.inflight {
			ex.cancel()
		}
	}

	guard := time.NewTimer(l.cfg.TaskExecutionTimeout + time.Minute)
	defer guard.Stop()

	for len(s.inflight) > 0 {
		select {
		case out := <-s.completions:
			ex, ok := s.inflight[out.taskID]
			if !ok {
				continue
			}
			ex.cancel()
			delete(s.inflight, out.taskID)
			if aborted {
				continue
			}
			l.settleCompletion(ctx, s, &out)

		case <-guard.C:
			l.logger.Warn("gave up draining executions", "remaining", len(s.inflight))
			return
		}
	}
}

// event appends one audit row, best-effort.
func (l *Loop) event(ctx context.Context, s *runState, eventType, agent, content string) {
	err := l.store.CreateEventLog(ctx, models.CreateEventLogRequest{
		RunID:     s.runID,
		ProjectID: s.projectID,
		EventType: eventType,
		Agent:     agent,
		Content:   content,
	})
	if err != nil {
		l.logger.Warn("failed to write event log", "type", eventType, "error", err)
	}
}

func encodeSteps(steps []models.StepSummary) string {
	if len(steps) == 0 {
		return "[]"
	}
	data, err := json.Marshal(steps)
	if err != nil {
		return "[]"
	}
	return string(data)
}
