package loop

import (
	"context"
	"fmt"

	"github.com/foremanhq/foreman/pkg/models"
)

const stepOutputLimit = 2000

// postTask records the outcome of a finished task: a step summary on the
// run record, an event-log row, and a line in the project log.
func (l *Loop) postTask(ctx context.Context, s *runState, node models.TaskNode, status models.TaskStatus, output, errMsg string) {
	s.steps = append(s.steps, models.StepSummary{
		TaskID: node.ID,
		Agent:  node.Agent,
		Role:   node.Role,
		Title:  node.Title,
		Status: status,
		Output: truncate(output, stepOutputLimit),
	})

	if status == models.TaskStatusDone {
		l.event(ctx, s, "task_completed", node.Agent, truncate(output, stepOutputLimit))
		l.gate.AppendLog(fmt.Sprintf("task %s (%s) completed", node.ID, node.Agent))
	} else {
		l.event(ctx, s, "task_failed", node.Agent, errMsg)
		l.gate.AppendLog(fmt.Sprintf("task %s (%s) failed: %s", node.ID, node.Agent, errMsg))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
