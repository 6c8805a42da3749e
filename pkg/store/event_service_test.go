package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/models"
	testdb "github.com/foremanhq/foreman/test/database"
)

func TestEventService_CreateEventLog(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")

	row, err := service.CreateEventLog(ctx, models.CreateEventLogRequest{
		RunID:     run.ID,
		ProjectID: "acme-site",
		EventType: "task_started",
		Agent:     "engineer",
		Content:   "t1: Write failing test",
	})
	require.NoError(t, err)
	assert.Equal(t, "task_started", row.EventType)

	var verr *ValidationError
	_, err = service.CreateEventLog(ctx, models.CreateEventLogRequest{RunID: run.ID})
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)

	events, err := service.ListEvents(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "engineer", events[0].Agent)
}

func TestEventService_AgentMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")

	_, err := service.CreateAgentMessage(ctx, run.ID, models.AgentMessage{
		From:    "engineer",
		To:      "pm",
		TaskID:  "t1",
		Type:    models.MessageTypeQuestion,
		Message: "should the redirect preserve query params?",
	})
	require.NoError(t, err)

	_, err = service.CreateAgentMessage(ctx, run.ID, models.AgentMessage{
		From:    "reviewer",
		To:      "engineer",
		Type:    models.MessageTypeSuggestion,
		Message: "add a regression test for the empty-path case",
	})
	require.NoError(t, err)

	forPM, err := service.ListMessagesFor(ctx, run.ID, "pm")
	require.NoError(t, err)
	require.Len(t, forPM, 1)
	assert.Equal(t, "engineer", forPM[0].FromAgent)
	assert.Equal(t, "question", forPM[0].MessageType)

	var verr *ValidationError
	_, err = service.CreateAgentMessage(ctx, run.ID, models.AgentMessage{From: "engineer", To: "pm"})
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)
}

func TestEventService_CreatePMDecision(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")

	row, err := service.CreatePMDecision(ctx, models.CreatePMDecisionLogRequest{
		RunID:       run.ID,
		Round:       1,
		TriggerKind: "task_completed",
		Reasoning:   "t1 passed, unblock t2",
		ActionsJSON: `[{"action":"execute","task_ids":["t2"]}]`,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, row.Round)
	assert.False(t, row.ParseFailed)

	// Rounds are unique within a run.
	_, err = service.CreatePMDecision(ctx, models.CreatePMDecisionLogRequest{
		RunID:       run.ID,
		Round:       1,
		TriggerKind: "task_completed",
	})
	require.Error(t, err)
}

func TestEventService_PurgeOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")

	_, err := client.EventLog.Create().
		SetID(uuid.NewString()).
		SetRunID(run.ID).
		SetProjectID("acme-site").
		SetEventType("task_started").
		SetAgent("engineer").
		SetContent("t1: old entry").
		SetCreatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = service.CreateEventLog(ctx, models.CreateEventLogRequest{
		RunID:     run.ID,
		ProjectID: "acme-site",
		EventType: "task_completed",
		Agent:     "engineer",
		Content:   "t1: recent entry",
	})
	require.NoError(t, err)

	count, err := service.PurgeOldEvents(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	events, err := service.ListEvents(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "task_completed", events[0].EventType)
}
