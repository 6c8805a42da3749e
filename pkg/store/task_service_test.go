package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/ent/task"
	"github.com/foremanhq/foreman/pkg/models"
	testdb "github.com/foremanhq/foreman/test/database"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")

	t.Run("creates task row mirroring the graph node", func(t *testing.T) {
		row, err := service.CreateTask(ctx, models.CreateTaskRequest{
			RunID:       run.ID,
			GraphTaskID: "t1",
			Title:       "Write failing test",
			Description: "Reproduce the redirect loop in a test",
			Agent:       "engineer",
			Role:        "implement",
			Status:      models.TaskStatusPending,
			DependsOn:   []string{},
		})
		require.NoError(t, err)
		assert.Equal(t, run.ID, row.RunID)
		assert.Equal(t, "t1", row.GraphTaskID)
		assert.Equal(t, task.StatusPending, row.Status)
		assert.Equal(t, 0, row.Attempts)
		assert.Equal(t, 0, row.DecisionRound)
	})

	t.Run("rejects duplicate graph task id within a run", func(t *testing.T) {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			RunID:       run.ID,
			GraphTaskID: "t1",
			Title:       "Duplicate",
			Agent:       "engineer",
			Status:      models.TaskStatusPending,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		var verr *ValidationError

		_, err := service.CreateTask(ctx, models.CreateTaskRequest{GraphTaskID: "t9"})
		require.Error(t, err)
		assert.ErrorAs(t, err, &verr)

		_, err = service.CreateTask(ctx, models.CreateTaskRequest{RunID: run.ID})
		require.Error(t, err)
		assert.ErrorAs(t, err, &verr)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")
	_, err := service.CreateTask(ctx, models.CreateTaskRequest{
		RunID:       run.ID,
		GraphTaskID: "t1",
		Title:       "Implement fix",
		Agent:       "engineer",
		Status:      models.TaskStatusReady,
	})
	require.NoError(t, err)

	t.Run("applies partial update", func(t *testing.T) {
		status := models.TaskStatusDone
		attempts := 2
		output := "patched session middleware"
		cost := 0.42
		err := service.UpdateTask(ctx, run.ID, "t1", models.UpdateTaskRequest{
			Status:   &status,
			Attempts: &attempts,
			Output:   &output,
			CostUSD:  &cost,
		})
		require.NoError(t, err)

		rows, err := service.ListTasks(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, task.StatusDone, rows[0].Status)
		assert.Equal(t, 2, rows[0].Attempts)
		require.NotNil(t, rows[0].Output)
		assert.Equal(t, output, *rows[0].Output)
		// Untouched fields survive.
		assert.Equal(t, "engineer", rows[0].Agent)
		assert.Equal(t, "Implement fix", rows[0].Title)
	})

	t.Run("unknown graph task returns not found", func(t *testing.T) {
		status := models.TaskStatusSkipped
		err := service.UpdateTask(ctx, run.ID, "t99", models.UpdateTaskRequest{Status: &status})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")
	for _, id := range []string{"t2", "t1", "t3"} {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			RunID:       run.ID,
			GraphTaskID: id,
			Title:       "Task " + id,
			Agent:       "engineer",
			Status:      models.TaskStatusPending,
		})
		require.NoError(t, err)
	}

	rows, err := service.ListTasks(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "t1", rows[0].GraphTaskID)
	assert.Equal(t, "t2", rows[1].GraphTaskID)
	assert.Equal(t, "t3", rows[2].GraphTaskID)
}

func TestTaskService_AddNote(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")

	row, err := service.AddNote(ctx, models.CreateTaskNoteRequest{
		RunID:       run.ID,
		GraphTaskID: "t1",
		Author:      "pm",
		Note:        "use the staging credentials from the vault",
	})
	require.NoError(t, err)
	assert.Equal(t, "pm", row.Author)
	assert.Equal(t, "t1", row.GraphTaskID)

	var verr *ValidationError
	_, err = service.AddNote(ctx, models.CreateTaskNoteRequest{RunID: run.ID, GraphTaskID: "t1"})
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)
}
