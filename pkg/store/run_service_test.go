package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/pkg/models"
	testdb "github.com/foremanhq/foreman/test/database"
)

// newTestRun seeds a run record and returns it.
func newTestRun(t *testing.T, svc *RunService, projectID string) *ent.PipelineRun {
	t.Helper()
	run, err := svc.CreateRun(context.Background(), models.CreatePipelineRunRequest{
		RunID:     uuid.NewString(),
		ProjectID: projectID,
		Request:   "add a health endpoint",
		GraphJSON: `{"tasks":[]}`,
	})
	require.NoError(t, err)
	return run
}

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("creates run in running status with heartbeat", func(t *testing.T) {
		req := models.CreatePipelineRunRequest{
			RunID:     uuid.NewString(),
			ProjectID: "acme-site",
			Request:   "fix the login redirect loop",
			GraphJSON: `{"tasks":[]}`,
		}

		run, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.RunID, run.ID)
		assert.Equal(t, req.ProjectID, run.ProjectID)
		assert.Equal(t, pipelinerun.StatusRunning, run.Status)
		assert.Equal(t, 0, run.DecisionCount)
		assert.NotNil(t, run.LastHeartbeat)
		assert.Nil(t, run.CompletedAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateRun(ctx, models.CreatePipelineRunRequest{ProjectID: "p"})
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)

		_, err = service.CreateRun(ctx, models.CreatePipelineRunRequest{RunID: uuid.NewString()})
		require.Error(t, err)
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects duplicate run id", func(t *testing.T) {
		run := newTestRun(t, service, "acme-site")
		_, err := service.CreateRun(ctx, models.CreatePipelineRunRequest{
			RunID:     run.ID,
			ProjectID: "acme-site",
			Request:   "again",
			GraphJSON: "{}",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestRunService_GetRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, service, "acme-site")

	got, err := service.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)

	_, err = service.GetRun(ctx, "no-such-run")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunService_Checkpoint(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		run := newTestRun(t, service, "acme-site")

		graph := `{"tasks":[{"id":"t1"}]}`
		count := 3
		cost := 1.25
		err := service.Checkpoint(ctx, run.ID, models.RunCheckpoint{
			GraphJSON:     &graph,
			DecisionCount: &count,
			RunningCost:   &cost,
		})
		require.NoError(t, err)

		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, graph, got.GraphJSON)
		assert.Equal(t, 3, got.DecisionCount)
		assert.InDelta(t, 1.25, got.RunningCost, 1e-9)
		assert.Equal(t, pipelinerun.StatusRunning, got.Status)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("terminal status sets completed_at", func(t *testing.T) {
		run := newTestRun(t, service, "acme-site")

		status := models.RunStatusCompleted
		err := service.Checkpoint(ctx, run.ID, models.RunCheckpoint{Status: &status})
		require.NoError(t, err)

		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.WithinDuration(t, time.Now(), *got.CompletedAt, time.Minute)
	})

	t.Run("unknown run returns not found", func(t *testing.T) {
		status := models.RunStatusFailed
		err := service.Checkpoint(ctx, "no-such-run", models.RunCheckpoint{Status: &status})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_StaleRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	stale := newTestRun(t, service, "acme-site")
	fresh := newTestRun(t, service, "acme-site")
	finished := newTestRun(t, service, "acme-site")

	old := time.Now().Add(-30 * time.Minute)
	require.NoError(t, service.Checkpoint(ctx, stale.ID, models.RunCheckpoint{Heartbeat: &old}))

	// A completed run with an old heartbeat is not an orphan.
	status := models.RunStatusCompleted
	require.NoError(t, service.Checkpoint(ctx, finished.ID, models.RunCheckpoint{
		Status:    &status,
		Heartbeat: &old,
	}))

	runs, err := service.StaleRuns(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, stale.ID, runs[0].ID)

	// The fresh run shows up once its heartbeat ages past the threshold.
	require.NoError(t, service.Heartbeat(ctx, fresh.ID))
	runs, err = service.StaleRuns(ctx, time.Nanosecond)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRunService_ListRunsByProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	first := newTestRun(t, service, "proj-a")
	second := newTestRun(t, service, "proj-a")
	newTestRun(t, service, "proj-b")

	runs, err := service.ListRunsByProject(ctx, "proj-a")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	ids := []string{runs[0].ID, runs[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestRunService_PurgeTerminalRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	old := newTestRun(t, service, "acme-site")
	recent := newTestRun(t, service, "acme-site")
	active := newTestRun(t, service, "acme-site")

	// Backdate one terminal run past the retention window.
	require.NoError(t, client.PipelineRun.UpdateOneID(old.ID).
		SetStatus(pipelinerun.StatusCompleted).
		SetCompletedAt(time.Now().Add(-100*24*time.Hour)).
		Exec(ctx))
	require.NoError(t, client.PipelineRun.UpdateOneID(recent.ID).
		SetStatus(pipelinerun.StatusFailed).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	count, err := service.PurgeTerminalRuns(ctx, 90*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = service.GetRun(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetRun(ctx, recent.ID)
	assert.NoError(t, err)
	_, err = service.GetRun(ctx, active.ID)
	assert.NoError(t, err, "non-terminal runs are never purged")
}
