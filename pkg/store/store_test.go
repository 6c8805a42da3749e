package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/models"
	testdb "github.com/foremanhq/foreman/test/database"
)

// The facade drops row returns; this exercises one full write path through it.
func TestStore_WriteSurface(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	run := newTestRun(t, s.Runs, "acme-site")

	require.NoError(t, s.CreateTask(ctx, models.CreateTaskRequest{
		RunID:       run.ID,
		GraphTaskID: "t1",
		Title:       "Investigate",
		Agent:       "researcher",
		Status:      models.TaskStatusReady,
	}))

	status := models.TaskStatusRunning
	require.NoError(t, s.UpdateTask(ctx, run.ID, "t1", models.UpdateTaskRequest{Status: &status}))

	require.NoError(t, s.CreateAgentRun(ctx, models.CreateAgentRunRequest{
		RunID:       run.ID,
		GraphTaskID: "t1",
		Agent:       "researcher",
		Provider:    "claude-cli",
		Model:       "haiku",
		Attempt:     1,
		Success:     true,
	}))

	require.NoError(t, s.CreateEventLog(ctx, models.CreateEventLogRequest{
		RunID:     run.ID,
		ProjectID: "acme-site",
		EventType: "task_completed",
	}))

	require.NoError(t, s.CreateTaskNote(ctx, models.CreateTaskNoteRequest{
		RunID:       run.ID,
		GraphTaskID: "t1",
		Author:      "pm",
		Note:        "summarize findings in the run log",
	}))

	require.NoError(t, s.CreateAgentMessage(ctx, run.ID, models.AgentMessage{
		From:    "researcher",
		To:      "pm",
		Type:    models.MessageTypeFlag,
		Message: "upstream API is deprecated",
	}))

	require.NoError(t, s.CreatePMDecision(ctx, models.CreatePMDecisionLogRequest{
		RunID:       run.ID,
		Round:       1,
		TriggerKind: "task_completed",
	}))

	cost := 0.07
	require.NoError(t, s.Checkpoint(ctx, run.ID, models.RunCheckpoint{RunningCost: &cost}))
	require.NoError(t, s.Heartbeat(ctx, run.ID))

	got, err := s.Runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.07, got.RunningCost, 1e-9)
}
