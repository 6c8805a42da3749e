package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/models"
)

func TestParseDecisionStrictEnvelope(t *testing.T) {
	output := `Thinking about it...

[PM_DECISION]
{"reasoning": "t1 is ready", "actions": [{"action": "execute", "task_ids": ["t1"]}]}
[/PM_DECISION]`

	d, err := ParseDecision(output)
	require.NoError(t, err)
	assert.Equal(t, "t1 is ready", d.Reasoning)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, models.ActionExecute, d.Actions[0].Type)
	assert.Equal(t, []string{"t1"}, d.Actions[0].TaskIDs)
}

func TestParseDecisionLooseCodeFence(t *testing.T) {
	output := "Here is my plan:\n```json\n" +
		`{"reasoning": "add a test task", "actions": [{"action": "add_tasks", "tasks": [{"title": "write tests", "agent": "qa"}]}]}` +
		"\n```"

	d, err := ParseDecision(output)
	require.NoError(t, err)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, models.ActionAddTasks, d.Actions[0].Type)
	require.Len(t, d.Actions[0].Tasks, 1)
	assert.Equal(t, "write tests", d.Actions[0].Tasks[0].Title)
}

func TestParseDecisionFirstBalancedObject(t *testing.T) {
	output := `I will now do the thing. {"actions": [{"action": "complete", "summary": "all done"}]} trailing prose`

	d, err := ParseDecision(output)
	require.NoError(t, err)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, models.ActionComplete, d.Actions[0].Type)
	assert.Equal(t, "all done", d.Actions[0].Summary)
}

func TestParseDecisionBareActionArray(t *testing.T) {
	output := `[PM_DECISION][{"action": "skip", "task_ids": ["t2"], "reason": "obsolete"}][/PM_DECISION]`

	d, err := ParseDecision(output)
	require.NoError(t, err)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, models.ActionSkip, d.Actions[0].Type)
}

func TestParseDecisionRepairsMalformedJSON(t *testing.T) {
	// Trailing comma and single quotes: repairable.
	output := `{"reasoning": "retry it", "actions": [{"action": "retry", "task_id": "t3",},]}`

	d, err := ParseDecision(output)
	require.NoError(t, err)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, models.ActionRetry, d.Actions[0].Type)
	assert.Equal(t, "t3", d.Actions[0].TaskID)
}

func TestParseDecisionDropsInvalidActions(t *testing.T) {
	output := `[PM_DECISION]{"actions": [
		{"action": "execute"},
		{"action": "execute", "task_ids": ["t1"]},
		{"action": "made_up_action"}
	]}[/PM_DECISION]`

	d, err := ParseDecision(output)
	require.NoError(t, err)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, []string{"t1"}, d.Actions[0].TaskIDs)
}

func TestParseDecisionNoJSON(t *testing.T) {
	_, err := ParseDecision("I am not sure what to do next.")
	assert.Error(t, err)
}

func TestParseDecisionAllActionsInvalid(t *testing.T) {
	_, err := ParseDecision(`{"actions": [{"action": "execute"}]}`)
	assert.Error(t, err)
}

func TestParseDecisionBracesInsideStrings(t *testing.T) {
	output := `{"reasoning": "handle {edge} cases", "actions": [{"action": "ask_user", "question": "use } or ]?"}]}`

	d, err := ParseDecision(output)
	require.NoError(t, err)
	assert.Equal(t, "handle {edge} cases", d.Reasoning)
	assert.Equal(t, "use } or ]?", d.Actions[0].Question)
}

func TestRenderParseRoundTrip(t *testing.T) {
	original := &models.PMDecision{
		Reasoning: "round trip",
		Actions: []models.PMAction{
			{Type: models.ActionExecute, TaskIDs: []string{"t1", "t2"}},
			{Type: models.ActionAskUser, Question: "proceed?", BlockingTaskIDs: []string{"t3"}},
			{Type: models.ActionComplete, Summary: "done"},
		},
	}

	rendered, err := RenderDecision(original)
	require.NoError(t, err)

	parsed, err := ParseDecision(rendered)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
