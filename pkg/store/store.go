package store

import (
	"context"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/pkg/models"
)

// Store bundles the persistence services behind the narrow write surface
// the loop and runner consume. Row returns are dropped here; callers that
// need the rows use the underlying services directly.
type Store struct {
	Runs     *RunService
	Tasks    *TaskService
	Attempts *AttemptService
	Events   *EventService
}

// New creates the service bundle over one ent client.
func New(client *ent.Client) *Store {
	return &Store{
		Runs:     NewRunService(client),
		Tasks:    NewTaskService(client),
		Attempts: NewAttemptService(client),
		Events:   NewEventService(client),
	}
}

// CreateAgentRun persists one execution attempt.
func (s *Store) CreateAgentRun(ctx context.Context, req models.CreateAgentRunRequest) error {
	_, err := s.Attempts.CreateAgentRun(ctx, req)
	return err
}

// CreateEventLog appends one audit event.
func (s *Store) CreateEventLog(ctx context.Context, req models.CreateEventLogRequest) error {
	_, err := s.Events.CreateEventLog(ctx, req)
	return err
}

// CreateTask persists one task row.
func (s *Store) CreateTask(ctx context.Context, req models.CreateTaskRequest) error {
	_, err := s.Tasks.CreateTask(ctx, req)
	return err
}

// UpdateTask applies a partial update to one graph task's row.
func (s *Store) UpdateTask(ctx context.Context, runID, graphTaskID string, req models.UpdateTaskRequest) error {
	return s.Tasks.UpdateTask(ctx, runID, graphTaskID, req)
}

// CreateTaskNote attaches a note to a graph task.
func (s *Store) CreateTaskNote(ctx context.Context, req models.CreateTaskNoteRequest) error {
	_, err := s.Tasks.AddNote(ctx, req)
	return err
}

// CreateAgentMessage persists one routed inter-agent envelope.
func (s *Store) CreateAgentMessage(ctx context.Context, runID string, msg models.AgentMessage) error {
	_, err := s.Events.CreateAgentMessage(ctx, runID, msg)
	return err
}

// CreatePMDecision records one decision round.
func (s *Store) CreatePMDecision(ctx context.Context, req models.CreatePMDecisionLogRequest) error {
	_, err := s.Events.CreatePMDecision(ctx, req)
	return err
}

// Checkpoint applies a partial update to the run record.
func (s *Store) Checkpoint(ctx context.Context, runID string, cp models.RunCheckpoint) error {
	return s.Runs.Checkpoint(ctx, runID, cp)
}

// Heartbeat refreshes the run's liveness timestamp.
func (s *Store) Heartbeat(ctx context.Context, runID string) error {
	return s.Runs.Heartbeat(ctx, runID)
}
