package loop

import (
	"context"
	"errors"
	"fmt"

	"github.com/foremanhq/foreman/pkg/gates"
	"github.com/foremanhq/foreman/pkg/models"
)

// applyDecision applies the PM's actions in order. Individual action
// failures are logged and do not stop the remaining actions.
func (l *Loop) applyDecision(ctx context.Context, s *runState, trig models.Trigger, d *models.PMDecision) {
	for _, a := range d.Actions {
		if err := a.Validate(); err != nil {
			l.logger.Warn("skipping invalid PM action", "error", err)
			continue
		}
		switch a.Type {
		case models.ActionExecute:
			l.applyExecute(ctx, s, a.TaskIDs)
		case models.ActionAddTasks:
			l.applyAddTasks(ctx, s, a.Tasks)
		case models.ActionRemoveTasks:
			l.applyRemoveTasks(ctx, s, a.TaskIDs, a.Reason)
		case models.ActionReassign:
			l.applyReassign(ctx, s, a)
		case models.ActionRetry:
			l.applyRetry(ctx, s, a)
		case models.ActionAskUser:
			l.applyAskUser(ctx, s, a)
		case models.ActionAnswerAgent:
			l.applyAnswerAgent(ctx, s, a)
		case models.ActionComplete:
			s.done = true
			s.status = models.RunStatusCompleted
			s.summary = a.Summary
		case models.ActionSkip:
			l.applySkip(ctx, s, a.TaskIDs, a.Reason)
		}
	}
}

// applyExecute launches the prefix of the listed tasks that fits within
// the parallelism budget; the rest stay ready for the next cycle.
func (l *Loop) applyExecute(ctx context.Context, s *runState, ids []string) {
	budget := l.cfg.MaxParallelTasks - len(s.inflight)
	for _, id := range ids {
		if budget <= 0 {
			l.logger.Info("parallelism budget exhausted, deferring", "task", id)
			return
		}
		n, ok := s.g.Get(id)
		if !ok {
			l.logger.Warn("execute names unknown task", "task", id)
			continue
		}
		// Pending tasks may be force-launched; terminal and running
		// ones may not.
		if n.Status != models.TaskStatusReady && n.Status != models.TaskStatusPending {
			l.logger.Warn("execute names unlaunchable task", "task", id, "status", n.Status)
			continue
		}
		l.launch(ctx, s, id)
		budget--
	}
}

func (l *Loop) applyAddTasks(ctx context.Context, s *runState, specs []models.TaskSpec) {
	g, ids := s.g.AddTasks(specs, s.decisions)
	s.g = g
	for _, id := range ids {
		n, _ := s.g.Get(id)
		err := l.store.CreateTask(ctx, models.CreateTaskRequest{
			RunID:         s.runID,
			GraphTaskID:   id,
			Title:         n.Title,
			Description:   n.Description,
			Agent:         n.Agent,
			Role:          n.Role,
			Status:        n.Status,
			DependsOn:     n.DependsOn,
			DecisionRound: s.decisions,
		})
		if err != nil {
			l.logger.Warn("failed to persist added task", "task", id, "error", err)
		}
	}
	l.gate.AppendLog(fmt.Sprintf("PM added %d task(s): %v", len(ids), ids))
}

func (l *Loop) applyRemoveTasks(ctx context.Context, s *runState, ids []string, reason string) {
	s.g = s.g.RemoveTasks(ids)
	status := models.TaskStatusCancelled
	for _, id := range ids {
		if err := l.store.UpdateTask(ctx, s.runID, id, models.UpdateTaskRequest{Status: &status}); err != nil {
			l.logger.Warn("failed to persist task removal", "task", id, "error", err)
		}
		if reason != "" {
			l.note(ctx, s, id, "pm", "removed: "+reason)
		}
	}
}

func (l *Loop) applyReassign(ctx context.Context, s *runState, a models.PMAction) {
	g, err := s.g.Reassign(a.TaskID, a.Agent, a.Role)
	if err != nil {
		l.logger.Warn("reassign failed", "task", a.TaskID, "error", err)
		return
	}
	s.g = g
	upd := models.UpdateTaskRequest{Agent: &a.Agent}
	if a.Role != "" {
		upd.Role = &a.Role
	}
	if err := l.store.UpdateTask(ctx, s.runID, a.TaskID, upd); err != nil {
		l.logger.Warn("failed to persist reassignment", "task", a.TaskID, "error", err)
	}
	if a.Reason != "" {
		l.note(ctx, s, a.TaskID, "pm", "reassigned to "+a.Agent+": "+a.Reason)
	}
}

func (l *Loop) applyRetry(ctx context.Context, s *runState, a models.PMAction) {
	g, err := s.g.Retry(a.TaskID, a.Changes)
	if err != nil {
		l.logger.Warn("retry failed", "task", a.TaskID, "error", err)
		return
	}
	s.g = g

	n, _ := s.g.Get(a.TaskID)
	status := models.TaskStatusReady
	empty := ""
	upd := models.UpdateTaskRequest{Status: &status, Attempts: &n.Attempts, Error: &empty}
	if a.Changes != nil {
		if a.Changes.Agent != "" {
			upd.Agent = &a.Changes.Agent
		}
		if a.Changes.Role != "" {
			upd.Role = &a.Changes.Role
		}
	}
	if err := l.store.UpdateTask(ctx, s.runID, a.TaskID, upd); err != nil {
		l.logger.Warn("failed to persist retry", "task", a.TaskID, "error", err)
	}
}

// applyAskUser publishes a question gate, optionally blocking tasks, and
// waits for the reply. A timeout unblocks without an answer; a reply
// seeds the next cycle's user_message trigger.
func (l *Loop) applyAskUser(ctx context.Context, s *runState, a models.PMAction) {
	for _, id := range a.BlockingTaskIDs {
		g, err := s.g.Block(id, a.Question)
		if err != nil {
			l.logger.Warn("cannot block task", "task", id, "error", err)
			continue
		}
		s.g = g
	}

	if err := l.gate.WriteQuestion(s.runID, a.Question, a.Context); err != nil {
		l.logger.Warn("failed to publish question gate", "error", err)
		l.unblockAll(s, a.BlockingTaskIDs)
		return
	}
	l.gate.AppendLog("PM asks: " + a.Question)

	answer, err := l.gate.AwaitAnswer(ctx, s.runID, l.cfg.QuestionTimeout)
	l.unblockAll(s, a.BlockingTaskIDs)
	switch {
	case errors.Is(err, gates.ErrGateTimeout):
		l.logger.Info("question timed out, continuing without answer", "run_id", s.runID)
	case errors.Is(err, gates.ErrAborted):
		// The next cycle's abort check terminates the run.
	case err != nil:
		l.logger.Warn("question gate failed", "error", err)
	default:
		s.userMsgs = append(s.userMsgs, answer)
		l.armTrigger(s, &models.Trigger{Kind: models.TriggerUserMessage, Messages: []string{answer}})
	}
}

func (l *Loop) unblockAll(s *runState, ids []string) {
	for _, id := range ids {
		g, err := s.g.Unblock(id)
		if err != nil {
			l.logger.Warn("cannot unblock task", "task", id, "error", err)
			continue
		}
		s.g = g
	}
}

// applyAnswerAgent records the PM's answer as a task note and unblocks
// the task.
func (l *Loop) applyAnswerAgent(ctx context.Context, s *runState, a models.PMAction) {
	l.note(ctx, s, a.TaskID, "pm", a.Answer)
	g, err := s.g.Unblock(a.TaskID)
	if err != nil {
		// Answering a task that was never blocked is fine.
		return
	}
	s.g = g
}

func (l *Loop) applySkip(ctx context.Context, s *runState, ids []string, reason string) {
	status := models.TaskStatusSkipped
	for _, id := range ids {
		g, err := s.g.UpdateStatus(id, models.TaskStatusSkipped, nil)
		if err != nil {
			l.logger.Warn("skip failed", "task", id, "error", err)
			continue
		}
		s.g = g
		if err := l.store.UpdateTask(ctx, s.runID, id, models.UpdateTaskRequest{Status: &status}); err != nil {
			l.logger.Warn("failed to persist skip", "task", id, "error", err)
		}
		if reason != "" {
			l.note(ctx, s, id, "pm", "skipped: "+reason)
		}
	}
}

// note attaches a task note, best-effort.
func (l *Loop) note(ctx context.Context, s *runState, taskID, author, text string) {
	err := l.store.CreateTaskNote(ctx, models.CreateTaskNoteRequest{
		RunID:       s.runID,
		GraphTaskID: taskID,
		Author:      author,
		Note:        text,
	})
	if err != nil {
		l.logger.Warn("failed to persist task note", "task", taskID, "error", err)
	}
}
