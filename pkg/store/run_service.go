// Package store provides the persistence services over the generated ent
// client. The loop and runner write through these; the front end reads.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/pkg/models"
)

// writeTimeout bounds individual persistence writes. Writes use a fresh
// context so a cancelled request context cannot lose a checkpoint.
const writeTimeout = 5 * time.Second

// RunService manages pipeline run records.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{client: client}
}

// CreateRun creates the persisted run record in running status.
func (s *RunService) CreateRun(_ context.Context, req models.CreatePipelineRunRequest) (*ent.PipelineRun, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "run id is required")
	}
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "project id is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	run, err := s.client.PipelineRun.Create().
		SetID(req.RunID).
		SetProjectID(req.ProjectID).
		SetRequest(req.Request).
		SetGraphJSON(req.GraphJSON).
		SetLastHeartbeat(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: run %s", ErrAlreadyExists, req.RunID)
		}
		return nil, fmt.Errorf("failed to create pipeline run: %w", err)
	}
	return run, nil
}

// GetRun retrieves a run by id.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.PipelineRun, error) {
	run, err := s.client.PipelineRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: run %s", ErrNotFound, runID)
		}
		return nil, fmt.Errorf("failed to get pipeline run: %w", err)
	}
	return run, nil
}

// Checkpoint applies a partial update to the run record. Nil fields are
// left untouched; terminal statuses also set completed_at.
func (s *RunService) Checkpoint(_ context.Context, runID string, cp models.RunCheckpoint) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	upd := s.client.PipelineRun.UpdateOneID(runID)
	if cp.Status != nil {
		upd.SetStatus(pipelinerun.Status(*cp.Status))
		if cp.Status.IsTerminal() {
			upd.SetCompletedAt(time.Now())
		}
	}
	if cp.GraphJSON != nil {
		upd.SetGraphJSON(*cp.GraphJSON)
	}
	if cp.DecisionCount != nil {
		upd.SetDecisionCount(*cp.DecisionCount)
	}
	if cp.RunningCost != nil {
		upd.SetRunningCost(*cp.RunningCost)
	}
	if cp.CurrentStep != nil {
		upd.SetCurrentStep(*cp.CurrentStep)
	}
	if cp.ErrorMessage != nil {
		upd.SetErrorMessage(*cp.ErrorMessage)
	}
	if cp.StepsJSON != nil {
		upd.SetStepsJSON(*cp.StepsJSON)
	}
	if cp.Heartbeat != nil {
		upd.SetLastHeartbeat(*cp.Heartbeat)
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: run %s", ErrNotFound, runID)
		}
		return fmt.Errorf("failed to checkpoint run: %w", err)
	}
	return nil
}

// Heartbeat refreshes the run's liveness timestamp.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	now := time.Now()
	return s.Checkpoint(ctx, runID, models.RunCheckpoint{Heartbeat: &now})
}

// StaleRuns lists running runs whose heartbeat is older than threshold.
// The front end treats these as dead workers and offers resume.
func (s *RunService) StaleRuns(ctx context.Context, threshold time.Duration) ([]*ent.PipelineRun, error) {
	cutoff := time.Now().Add(-threshold)
	runs, err := s.client.PipelineRun.Query().
		Where(
			pipelinerun.StatusIn(pipelinerun.StatusRunning, pipelinerun.StatusAwaitingPlan),
			pipelinerun.LastHeartbeatLT(cutoff),
		).
		Order(ent.Asc(pipelinerun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale runs: %w", err)
	}
	return runs, nil
}

// PurgeTerminalRuns deletes finished runs whose completion is older than
// the retention window. Child rows go with them via cascade. Returns the
// number of runs removed.
func (s *RunService) PurgeTerminalRuns(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.client.PipelineRun.Delete().
		Where(
			pipelinerun.StatusIn(pipelinerun.StatusCompleted, pipelinerun.StatusFailed, pipelinerun.StatusAborted),
			pipelinerun.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal runs: %w", err)
	}
	return n, nil
}

// ListRunsByProject returns the project's runs, newest first.
func (s *RunService) ListRunsByProject(ctx context.Context, projectID string) ([]*ent.PipelineRun, error) {
	runs, err := s.client.PipelineRun.Query().
		Where(pipelinerun.ProjectIDEQ(projectID)).
		Order(ent.Desc(pipelinerun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
