package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/ent/task"
	"github.com/foremanhq/foreman/pkg/models"
)

// TaskService manages persisted task rows mirroring graph nodes.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	if client == nil {
		panic("NewTaskService: client must not be nil")
	}
	return &TaskService{client: client}
}

// CreateTask persists one task row.
func (s *TaskService) CreateTask(_ context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "run id is required")
	}
	if req.GraphTaskID == "" {
		return nil, NewValidationError("graph_task_id", "graph task id is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.Task.Create().
		SetID(uuid.NewString()).
		SetRunID(req.RunID).
		SetGraphTaskID(req.GraphTaskID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetAgent(req.Agent).
		SetRole(req.Role).
		SetStatus(task.Status(req.Status)).
		SetDependsOn(req.DependsOn).
		SetDecisionRound(req.DecisionRound).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: task %s in run %s", ErrAlreadyExists, req.GraphTaskID, req.RunID)
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return row, nil
}

// UpdateTask applies a partial update to the row for one graph task.
func (s *TaskService) UpdateTask(_ context.Context, runID, graphTaskID string, req models.UpdateTaskRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	upd := s.client.Task.Update().
		Where(task.RunIDEQ(runID), task.GraphTaskIDEQ(graphTaskID))
	if req.Status != nil {
		upd.SetStatus(task.Status(*req.Status))
	}
	if req.Attempts != nil {
		upd.SetAttempts(*req.Attempts)
	}
	if req.Output != nil {
		upd.SetOutput(*req.Output)
	}
	if req.Error != nil {
		upd.SetErrorMessage(*req.Error)
	}
	if req.CostUSD != nil {
		upd.SetCostUsd(*req.CostUSD)
	}
	if req.Agent != nil {
		upd.SetAgent(*req.Agent)
	}
	if req.Role != nil {
		upd.SetRole(*req.Role)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: task %s in run %s", ErrNotFound, graphTaskID, runID)
	}
	return nil
}

// ListTasks returns all task rows of a run in graph id order.
func (s *TaskService) ListTasks(ctx context.Context, runID string) ([]*ent.Task, error) {
	rows, err := s.client.Task.Query().
		Where(task.RunIDEQ(runID)).
		Order(ent.Asc(task.FieldGraphTaskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return rows, nil
}

// AddNote attaches a note to a graph task.
func (s *TaskService) AddNote(_ context.Context, req models.CreateTaskNoteRequest) (*ent.TaskNote, error) {
	if req.Note == "" {
		return nil, NewValidationError("note", "note text is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.TaskNote.Create().
		SetID(uuid.NewString()).
		SetRunID(req.RunID).
		SetGraphTaskID(req.GraphTaskID).
		SetAuthor(req.Author).
		SetNote(req.Note).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task note: %w", err)
	}
	return row, nil
}
