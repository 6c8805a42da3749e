package loop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/prompt"
)

// triggerRank orders trigger kinds for arming: completions beat gathered
// user input, user input beats idle seeding.
func triggerRank(k models.TriggerKind) int {
	switch k {
	case models.TriggerTaskCompleted, models.TriggerTaskFailed, models.TriggerPipelineResumed:
		return 3
	case models.TriggerUserMessage, models.TriggerAgentQuestion, models.TriggerAgentMessage, models.TriggerBudgetWarning:
		return 2
	default:
		return 1
	}
}

// armTrigger installs t as the pending trigger unless a stronger one is
// already armed.
func (l *Loop) armTrigger(s *runState, t *models.Trigger) {
	if s.pending != nil && triggerRank(s.pending.Kind) >= triggerRank(t.Kind) {
		return
	}
	s.pending = t
}

// runCycle performs one iteration of the decision loop.
func (l *Loop) runCycle(ctx context.Context, s *runState) {
	if l.gate.AbortRequested() {
		l.abort(s, "aborted by user")
		return
	}

	for _, m := range l.gate.DrainUserMessages(s.runID) {
		s.userMsgs = append(s.userMsgs, m.Message)
	}
	if len(s.userMsgs) > 0 {
		l.armTrigger(s, &models.Trigger{Kind: models.TriggerUserMessage, Messages: append([]string(nil), s.userMsgs...)})
	}

	if s.pending == nil && len(s.inflight) > 0 {
		out := l.awaitCompletion(ctx, s)
		if out == nil {
			if l.gate.AbortRequested() {
				l.abort(s, "aborted by user")
			} else if ctx.Err() != nil {
				l.abort(s, "worker shutting down")
			}
			return
		}
		l.settleCompletion(ctx, s, out)
	}

	if s.pending == nil && len(s.inflight) == 0 {
		if ready := s.g.ReadyTasks(); len(ready) > 0 && !s.g.IsComplete() {
			s.pending = &models.Trigger{Kind: models.TriggerInitial, ReadyTaskIDs: ready}
		} else {
			s.pending = &models.Trigger{Kind: models.TriggerAllIdle}
		}
	}

	// Asking the PM commits budget; re-check the abort flag first.
	if l.gate.AbortRequested() {
		l.abort(s, "aborted by user")
		return
	}

	trig := *s.pending
	s.pending = nil

	decision := l.decide(ctx, s, trig)
	l.applyDecision(ctx, s, trig, decision)

	// Graph complete with nothing left to launch ends the run even when
	// the PM did not say complete.
	if !s.done && len(s.inflight) == 0 && s.g.IsComplete() && len(s.g.ReadyTasks()) == 0 {
		s.done = true
		s.status = models.RunStatusCompleted
		if s.summary == "" {
			s.summary = "all tasks reached a terminal state"
		}
	}

	l.enforceBudget(ctx, s)

	if !s.done && s.decisions >= l.cfg.MaxDecisions {
		s.done = true
		s.status = models.RunStatusFailed
		s.errMsg = fmt.Sprintf("decision limit reached (%d)", l.cfg.MaxDecisions)
	}

	l.checkpoint(ctx, s, models.RunCheckpoint{
		DecisionCount: &s.decisions,
		RunningCost:   &s.spent,
	})
}

// abort terminates the run with status aborted.
func (l *Loop) abort(s *runState, reason string) {
	s.done = true
	s.status = models.RunStatusAborted
	s.errMsg = reason
	l.logger.Info("run aborted", "run_id", s.runID, "reason", reason)
}

// decide builds the PM context, invokes the PM, and parses the decision.
// Accumulators (PM messages, user messages) are consumed here. An
// unparseable decision falls back to auto-launching ready tasks.
func (l *Loop) decide(ctx context.Context, s *runState, trig models.Trigger) *models.PMDecision {
	in := prompt.Input{
		Trigger:        trig,
		Graph:          s.g,
		TeamMessages:   l.router.DrainPM(),
		RecentMessages: l.router.Recent(),
		UserMessages:   s.userMsgs,
		SpentUSD:       s.spent,
		BudgetUSD:      l.cfg.BudgetUSD,
		Agents:         l.agents,
		StartedAt:      s.startedAt,
	}
	s.userMsgs = nil

	p := prompt.Build(in)
	s.decisions++

	raw, cost, err := l.pm.Decide(ctx, p)
	s.spent += cost
	l.noteSpend(s)

	var decision *models.PMDecision
	parseFailed := false
	if err != nil {
		l.logger.Warn("PM invocation failed, falling back", "round", s.decisions, "error", err)
		parseFailed = true
	} else {
		decision, err = prompt.ParseDecision(raw)
		if err != nil {
			l.logger.Warn("PM decision unparseable, falling back", "round", s.decisions, "error", err)
			parseFailed = true
		}
	}
	if decision == nil {
		decision = l.fallbackDecision(s)
	}

	actionsJSON, _ := json.Marshal(decision.Actions)
	perr := l.store.CreatePMDecision(ctx, models.CreatePMDecisionLogRequest{
		RunID:       s.runID,
		Round:       s.decisions,
		TriggerKind: string(trig.Kind),
		Reasoning:   decision.Reasoning,
		ActionsJSON: string(actionsJSON),
		RawResponse: raw,
		ParseFailed: parseFailed,
	})
	if perr != nil {
		l.logger.Warn("failed to persist PM decision", "round", s.decisions, "error", perr)
	}

	return decision
}

// fallbackDecision auto-launches whatever is ready.
func (l *Loop) fallbackDecision(s *runState) *models.PMDecision {
	d := &models.PMDecision{Reasoning: "fallback: auto-launching ready tasks"}
	if ready := s.g.ReadyTasks(); len(ready) > 0 {
		d.Actions = []models.PMAction{{Type: models.ActionExecute, TaskIDs: ready}}
	}
	return d
}

// settleCompletion folds one resolved execution back into the run: graph
// update, task row, post-task processing, and the resulting trigger.
func (l *Loop) settleCompletion(ctx context.Context, s *runState, out *execOutcome) {
	node, ok := s.g.Get(out.taskID)
	if !ok {
		return
	}

	res := out.res
	errMsg := ""
	success := false
	switch {
	case out.err != nil:
		if errors.Is(out.err, context.DeadlineExceeded) {
			errMsg = "timed out"
		} else {
			errMsg = out.err.Error()
		}
	case res == nil:
		errMsg = "execution returned no result"
	case res.Success:
		success = true
	default:
		errMsg = res.Error
		// The per-task deadline surfaces as a context error string.
		if strings.Contains(errMsg, context.DeadlineExceeded.Error()) {
			errMsg = "timed out"
		}
	}

	output := ""
	attempts := node.Attempts
	var cost float64
	if res != nil {
		output = res.Output
		cost = res.CostUSD
		if res.Attempts > 0 {
			attempts = res.Attempts
		}
	}
	s.spent += cost
	l.noteSpend(s)

	// Extract inter-agent envelopes before the output is stored anywhere.
	stripped := l.router.ProcessOutput(node.Agent, node.ID, output)
	if l.masker != nil {
		stripped = l.masker.MaskOutput(stripped)
	}

	status := models.TaskStatusDone
	if !success {
		status = models.TaskStatusFailed
	}
	g, err := s.g.UpdateStatus(out.taskID, status, func(n *models.TaskNode) {
		n.Output = stripped
		n.Error = errMsg
		n.Attempts = attempts
		n.CostUSD += cost
	})
	if err != nil {
		l.logger.Warn("failed to update graph", "task", out.taskID, "error", err)
	} else {
		s.g = g
	}

	upd := models.UpdateTaskRequest{Status: &status, Attempts: &attempts, Output: &stripped, CostUSD: &cost}
	if errMsg != "" {
		upd.Error = &errMsg
	}
	if err := l.store.UpdateTask(ctx, s.runID, out.taskID, upd); err != nil {
		l.logger.Warn("failed to persist task result", "task", out.taskID, "error", err)
	}

	l.postTask(ctx, s, node, status, stripped, errMsg)

	if success {
		l.armTrigger(s, &models.Trigger{
			Kind:          models.TriggerTaskCompleted,
			TaskID:        out.taskID,
			OutputSummary: stripped,
		})
	} else {
		l.armTrigger(s, &models.Trigger{
			Kind:     models.TriggerTaskFailed,
			TaskID:   out.taskID,
			Error:    errMsg,
			Attempts: attempts,
		})
	}
}

// noteSpend arms the one-shot budget warning when spending crosses the
// caution fraction.
func (l *Loop) noteSpend(s *runState) {
	if s.budgetWarned || l.cfg.BudgetUSD <= 0 {
		return
	}
	threshold := l.cfg.BudgetUSD * l.cfg.BudgetWarningFraction
	if s.spent < threshold {
		return
	}
	s.budgetWarned = true
	l.armTrigger(s, &models.Trigger{
		Kind:         models.TriggerBudgetWarning,
		SpentUSD:     s.spent,
		RemainingUSD: l.cfg.BudgetUSD - s.spent,
	})
}

// enforceBudget aborts the run once cumulative cost exceeds the ceiling.
func (l *Loop) enforceBudget(ctx context.Context, s *runState) {
	if s.done || l.cfg.BudgetUSD <= 0 || s.spent <= l.cfg.BudgetUSD {
		return
	}
	msg := fmt.Sprintf("budget exceeded: spent $%.2f of $%.2f", s.spent, l.cfg.BudgetUSD)
	s.steps = append(s.steps, models.StepSummary{
		TaskID: "budget",
		Agent:  "pm",
		Title:  "Budget ceiling reached",
		Status: models.TaskStatusCancelled,
		Output: msg,
	})
	l.event(ctx, s, "budget_exceeded", "pm", msg)
	s.done = true
	s.status = models.RunStatusAborted
	s.errMsg = msg
}
