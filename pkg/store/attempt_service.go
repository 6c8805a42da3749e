package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/ent/agentrun"
	"github.com/foremanhq/foreman/pkg/models"
)

// AttemptService manages per-attempt AgentRun rows.
type AttemptService struct {
	client *ent.Client
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(client *ent.Client) *AttemptService {
	if client == nil {
		panic("NewAttemptService: client must not be nil")
	}
	return &AttemptService{client: client}
}

// CreateAgentRun persists one execution attempt. Inputs arrive already
// truncated by the runner.
func (s *AttemptService) CreateAgentRun(_ context.Context, req models.CreateAgentRunRequest) (*ent.AgentRun, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "run id is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	create := s.client.AgentRun.Create().
		SetID(uuid.NewString()).
		SetRunID(req.RunID).
		SetGraphTaskID(req.GraphTaskID).
		SetAgent(req.Agent).
		SetRole(req.Role).
		SetProvider(req.Provider).
		SetModel(req.Model).
		SetAttempt(req.Attempt).
		SetSuccess(req.Success).
		SetInput(req.Input).
		SetOutput(req.Output).
		SetErrorKind(req.ErrorKind).
		SetDurationMs(req.DurationMs).
		SetInputTokens(req.InputTokens).
		SetOutputTokens(req.OutputTokens).
		SetCostUsd(req.CostUSD)
	if req.ErrorMessage != "" {
		create.SetErrorMessage(req.ErrorMessage)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}
	return row, nil
}

// ListAttempts returns the attempts for one graph task in order.
func (s *AttemptService) ListAttempts(ctx context.Context, runID, graphTaskID string) ([]*ent.AgentRun, error) {
	rows, err := s.client.AgentRun.Query().
		Where(agentrun.RunIDEQ(runID), agentrun.GraphTaskIDEQ(graphTaskID)).
		Order(ent.Asc(agentrun.FieldAttempt), ent.Asc(agentrun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return rows, nil
}
