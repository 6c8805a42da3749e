// Package prompt composes the PM decision prompt and parses the PM's
// decision output. The builder is stateless; all state comes from the
// Input value assembled by the decision loop each cycle.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/foremanhq/foreman/pkg/graph"
	"github.com/foremanhq/foreman/pkg/models"
)

// outputTruncateLen bounds task output/error excerpts in the graph table.
const outputTruncateLen = 200

// Input is everything one PM decision prompt is built from.
type Input struct {
	Trigger models.Trigger
	Graph   graph.Graph

	// TeamMessages are PM-addressed messages accumulated since the last
	// decision; RecentMessages is the inter-agent window.
	TeamMessages   []models.AgentMessage
	RecentMessages []models.AgentMessage

	UserMessages []string

	SpentUSD  float64
	BudgetUSD float64

	Agents []models.AgentDefinition

	StartedAt time.Time
}

// Build renders the full PM prompt: labelled sections in a fixed order
// closed by the decision-format instructions.
func Build(in Input) string {
	var b strings.Builder

	section(&b, "Trigger", renderTrigger(in.Trigger))
	section(&b, "Task Graph", renderGraph(in.Graph))
	section(&b, "Currently Running", renderIDList(in.Graph, in.Graph.WithStatus(models.TaskStatusRunning)))
	section(&b, "Completed Tasks", renderCompleted(in.Graph))
	section(&b, "Failed Tasks", renderFailed(in.Graph))
	section(&b, "Ready Tasks", renderIDList(in.Graph, in.Graph.ReadyTasks()))
	section(&b, "Messages From Your Team", renderMessages(in.TeamMessages))
	section(&b, "Inter-Team Communication", renderMessages(in.RecentMessages))
	section(&b, "User Messages", renderUserMessages(in.UserMessages))
	section(&b, "Budget", renderBudget(in.SpentUSD, in.BudgetUSD))
	section(&b, "Available Agents", renderAgents(in.Agents))
	section(&b, "Elapsed Time", renderElapsed(in.StartedAt))
	section(&b, "Instructions", decisionInstructions)

	return strings.TrimRight(b.String(), "\n")
}

func section(b *strings.Builder, title, body string) {
	b.WriteString("## ")
	b.WriteString(title)
	b.WriteString("\n")
	if body == "" {
		body = "(none)"
	}
	b.WriteString(body)
	b.WriteString("\n\n")
}

func renderTrigger(t models.Trigger) string {
	switch t.Kind {
	case models.TriggerInitial:
		return fmt.Sprintf("Pipeline started. Ready tasks: %s.", joinOrNone(t.ReadyTaskIDs))
	case models.TriggerTaskCompleted:
		s := fmt.Sprintf("Task %s completed.", t.TaskID)
		if t.OutputSummary != "" {
			s += " Output: " + truncate(t.OutputSummary, outputTruncateLen)
		}
		return s
	case models.TriggerTaskFailed:
		return fmt.Sprintf("Task %s failed after %d attempt(s): %s",
			t.TaskID, t.Attempts, truncate(t.Error, outputTruncateLen))
	case models.TriggerUserMessage:
		return fmt.Sprintf("The user sent %d message(s) while the pipeline was running. See the User Messages section.", len(t.Messages))
	case models.TriggerAgentQuestion:
		return fmt.Sprintf("Agent %s (task %s) asked: %s", t.Agent, t.TaskID, t.Question)
	case models.TriggerAgentMessage:
		return fmt.Sprintf("Agent %s (task %s) sent a %s message: %s",
			t.Agent, t.TaskID, t.MessageType, truncate(t.Content, outputTruncateLen))
	case models.TriggerAllIdle:
		return "No tasks are running and none are ready. Decide whether the work is complete or more tasks are needed."
	case models.TriggerBudgetWarning:
		return fmt.Sprintf("Budget warning: $%.2f spent, $%.2f remaining. Prioritize what matters most.",
			t.SpentUSD, t.RemainingUSD)
	case models.TriggerPipelineResumed:
		return fmt.Sprintf("Pipeline resumed after interruption. Interrupted tasks: %s. Failed tasks: %s.",
			joinOrNone(t.InterruptedIDs), joinOrNone(t.FailedIDs))
	default:
		return string(t.Kind)
	}
}

// renderGraph renders one compact line per task: id, bracketed status,
// agent[:role], title, dependencies, and a truncated output or error.
func renderGraph(g graph.Graph) string {
	ids := g.IDs()
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range ids {
		n, _ := g.Get(id)
		agent := n.Agent
		if n.Role != "" {
			agent += ":" + n.Role
		}
		fmt.Fprintf(&b, "%s [%s] %s - %s", n.ID, n.Status, agent, n.Title)
		if len(n.DependsOn) > 0 {
			fmt.Fprintf(&b, " (depends: %s)", strings.Join(n.DependsOn, ", "))
		}
		switch {
		case n.Error != "":
			fmt.Fprintf(&b, " | error: %s", truncate(n.Error, outputTruncateLen))
		case n.Output != "":
			fmt.Fprintf(&b, " | output: %s", truncate(n.Output, outputTruncateLen))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderIDList(g graph.Graph, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range ids {
		n, _ := g.Get(id)
		fmt.Fprintf(&b, "%s - %s\n", id, n.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCompleted(g graph.Graph) string {
	ids := g.WithStatus(models.TaskStatusDone)
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range ids {
		n, _ := g.Get(id)
		fmt.Fprintf(&b, "%s - %s ($%.4f)\n", id, n.Title, n.CostUSD)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderFailed(g graph.Graph) string {
	ids := g.WithStatus(models.TaskStatusFailed)
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range ids {
		n, _ := g.Get(id)
		fmt.Fprintf(&b, "%s - %s (%d attempt(s))\n", id, n.Title, n.Attempts)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMessages(msgs []models.AgentMessage) string {
	if len(msgs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "[%s] %s → %s: %s\n", m.Type, m.From, m.To, m.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderUserMessages(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBudget(spent, limit float64) string {
	if limit <= 0 {
		return fmt.Sprintf("Spent: $%.4f (no limit configured)", spent)
	}
	return fmt.Sprintf("Spent: $%.4f / Limit: $%.2f / Remaining: $%.4f", spent, limit, limit-spent)
}

func renderAgents(agents []models.AgentDefinition) string {
	if len(agents) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range agents {
		line := fmt.Sprintf("%s (%s)", a.Name, a.Type)
		if len(a.Roles) > 0 {
			line += " - roles: " + strings.Join(a.Roles, ", ")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderElapsed(start time.Time) string {
	if start.IsZero() {
		return ""
	}
	return time.Since(start).Round(time.Second).String()
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	return strings.Join(ids, ", ")
}

func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

const decisionInstructions = `You are the PM of this pipeline. Before deciding, consult your tools:
search the project history and read past step outputs, and take work
completed in prior runs into account instead of re-doing it.

Respond with exactly one decision block:

[PM_DECISION]
{"reasoning": "...", "actions": [ ... ]}
[/PM_DECISION]

Available actions:
- {"action": "execute", "task_ids": ["t1", "t2"]}
- {"action": "add_tasks", "tasks": [{"title": "...", "description": "...", "agent": "...", "role": "...", "depends_on": ["t1"]}]}
- {"action": "remove_tasks", "task_ids": ["t3"], "reason": "..."}
- {"action": "reassign", "task_id": "t2", "agent": "...", "role": "...", "reason": "..."}
- {"action": "retry", "task_id": "t4", "changes": {"description": "...", "agent": "...", "role": "..."}}
- {"action": "ask_user", "question": "...", "context": "...", "blocking_task_ids": ["t5"]}
- {"action": "answer_agent", "task_id": "t6", "answer": "..."}
- {"action": "complete", "summary": "..."}
- {"action": "skip", "task_ids": ["t7"], "reason": "..."}

List multiple actions when needed; they are applied in order.`
