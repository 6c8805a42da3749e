package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/graph"
	"github.com/foremanhq/foreman/pkg/models"
)

func buildTestGraph(t *testing.T) graph.Graph {
	t.Helper()
	g := graph.Graph{
		"t1": {ID: "t1", Title: "design schema", Agent: "architect", Status: models.TaskStatusDone, CostUSD: 0.12, Output: "schema ready"},
		"t2": {ID: "t2", Title: "implement API", Agent: "backend-dev", Role: "implementer", Status: models.TaskStatusRunning, DependsOn: []string{"t1"}},
		"t3": {ID: "t3", Title: "write tests", Agent: "qa", Status: models.TaskStatusReady},
		"t4": {ID: "t4", Title: "deploy", Agent: "ops", Status: models.TaskStatusFailed, Attempts: 2, Error: "permission denied"},
	}
	require.NoError(t, g.Validate())
	return g
}

func TestBuildSectionOrder(t *testing.T) {
	out := Build(Input{
		Trigger:   models.Trigger{Kind: models.TriggerInitial, ReadyTaskIDs: []string{"t3"}},
		Graph:     buildTestGraph(t),
		StartedAt: time.Now().Add(-90 * time.Second),
	})

	titles := []string{
		"## Trigger", "## Task Graph", "## Currently Running", "## Completed Tasks",
		"## Failed Tasks", "## Ready Tasks", "## Messages From Your Team",
		"## Inter-Team Communication", "## User Messages", "## Budget",
		"## Available Agents", "## Elapsed Time", "## Instructions",
	}
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, title)
		require.GreaterOrEqual(t, idx, 0, "missing section %s", title)
		assert.Greater(t, idx, last, "section %s out of order", title)
		last = idx
	}
}

func TestBuildGraphTable(t *testing.T) {
	out := Build(Input{Graph: buildTestGraph(t)})

	assert.Contains(t, out, "t1 [done] architect - design schema | output: schema ready")
	assert.Contains(t, out, "t2 [running] backend-dev:implementer - implement API (depends: t1)")
	assert.Contains(t, out, "t4 [failed] ops - deploy | error: permission denied")
}

func TestBuildStatusSections(t *testing.T) {
	out := Build(Input{Graph: buildTestGraph(t)})

	completed := sectionBody(t, out, "Completed Tasks")
	assert.Contains(t, completed, "t1 - design schema ($0.1200)")

	failed := sectionBody(t, out, "Failed Tasks")
	assert.Contains(t, failed, "t4 - deploy (2 attempt(s))")

	running := sectionBody(t, out, "Currently Running")
	assert.Contains(t, running, "t2 - implement API")

	ready := sectionBody(t, out, "Ready Tasks")
	assert.Contains(t, ready, "t3 - write tests")
}

func TestBuildMessagesAndBudget(t *testing.T) {
	out := Build(Input{
		Graph: buildTestGraph(t),
		TeamMessages: []models.AgentMessage{
			{From: "qa", To: "pm", Type: models.MessageTypeFlag, Message: "flaky test found"},
		},
		RecentMessages: []models.AgentMessage{
			{From: "backend-dev", To: "qa", Type: models.MessageTypeHandoff, Message: "API ready"},
		},
		UserMessages: []string{"please hurry"},
		SpentUSD:     1.5,
		BudgetUSD:    10,
		Agents: []models.AgentDefinition{
			{Name: "backend-dev", Type: "specialist", Roles: []string{"implementer", "reviewer"}},
		},
	})

	assert.Contains(t, out, "[flag] qa → pm: flaky test found")
	assert.Contains(t, out, "[handoff] backend-dev → qa: API ready")
	assert.Contains(t, out, "- please hurry")
	assert.Contains(t, out, "Spent: $1.5000 / Limit: $10.00 / Remaining: $8.5000")
	assert.Contains(t, out, "backend-dev (specialist) - roles: implementer, reviewer")
}

func TestBuildEmptySectionsRenderNone(t *testing.T) {
	out := Build(Input{Graph: graph.Graph{}})
	assert.Contains(t, sectionBody(t, out, "User Messages"), "(none)")
	assert.Contains(t, sectionBody(t, out, "Task Graph"), "(none)")
}

func TestBuildTriggerRendering(t *testing.T) {
	tests := []struct {
		name    string
		trigger models.Trigger
		want    string
	}{
		{"initial", models.Trigger{Kind: models.TriggerInitial, ReadyTaskIDs: []string{"t1", "t2"}},
			"Pipeline started. Ready tasks: t1, t2."},
		{"completed", models.Trigger{Kind: models.TriggerTaskCompleted, TaskID: "t1", OutputSummary: "did it"},
			"Task t1 completed. Output: did it"},
		{"failed", models.Trigger{Kind: models.TriggerTaskFailed, TaskID: "t2", Attempts: 3, Error: "boom"},
			"Task t2 failed after 3 attempt(s): boom"},
		{"idle", models.Trigger{Kind: models.TriggerAllIdle},
			"No tasks are running and none are ready"},
		{"budget", models.Trigger{Kind: models.TriggerBudgetWarning, SpentUSD: 8, RemainingUSD: 2},
			"Budget warning: $8.00 spent, $2.00 remaining"},
		{"resumed", models.Trigger{Kind: models.TriggerPipelineResumed, InterruptedIDs: []string{"t1"}},
			"Interrupted tasks: t1. Failed tasks: (none)."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderTrigger(tt.trigger), tt.want)
		})
	}
}

func TestBuildInstructionsEnumerateActions(t *testing.T) {
	out := Build(Input{Graph: graph.Graph{}})
	for _, action := range []string{
		"execute", "add_tasks", "remove_tasks", "reassign", "retry",
		"ask_user", "answer_agent", "complete", "skip",
	} {
		assert.Contains(t, out, `"action": "`+action+`"`)
	}
	assert.Contains(t, out, "[PM_DECISION]")
	assert.Contains(t, out, "[/PM_DECISION]")
}

// sectionBody returns the text between the named section header and the
// next header.
func sectionBody(t *testing.T, out, title string) string {
	t.Helper()
	start := strings.Index(out, "## "+title+"\n")
	require.GreaterOrEqual(t, start, 0)
	rest := out[start+len("## "+title)+1:]
	if next := strings.Index(rest, "## "); next >= 0 {
		rest = rest[:next]
	}
	return rest
}
