package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/ent/agentmessage"
	"github.com/foremanhq/foreman/ent/eventlog"
	"github.com/foremanhq/foreman/pkg/models"
)

// EventService manages event-log entries, routed agent messages, and PM
// decision audit rows.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	if client == nil {
		panic("NewEventService: client must not be nil")
	}
	return &EventService{client: client}
}

// CreateEventLog appends one audit event.
func (s *EventService) CreateEventLog(_ context.Context, req models.CreateEventLogRequest) (*ent.EventLog, error) {
	if req.EventType == "" {
		return nil, NewValidationError("event_type", "event type is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.EventLog.Create().
		SetID(uuid.NewString()).
		SetRunID(req.RunID).
		SetProjectID(req.ProjectID).
		SetEventType(req.EventType).
		SetAgent(req.Agent).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event log: %w", err)
	}
	return row, nil
}

// ListEvents returns a run's events oldest first.
func (s *EventService) ListEvents(ctx context.Context, runID string) ([]*ent.EventLog, error) {
	rows, err := s.client.EventLog.Query().
		Where(eventlog.RunIDEQ(runID)).
		Order(ent.Asc(eventlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return rows, nil
}

// PurgeOldEvents deletes event-log rows older than the TTL. Event logs are
// the highest-volume table; they age out independently of their runs.
func (s *EventService) PurgeOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	n, err := s.client.EventLog.Delete().
		Where(eventlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old events: %w", err)
	}
	return n, nil
}

// CreateAgentMessage persists one routed inter-agent envelope.
func (s *EventService) CreateAgentMessage(_ context.Context, runID string, msg models.AgentMessage) (*ent.AgentMessage, error) {
	if msg.Message == "" {
		return nil, NewValidationError("message", "message text is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.AgentMessage.Create().
		SetID(uuid.NewString()).
		SetRunID(runID).
		SetFromAgent(msg.From).
		SetToAgent(msg.To).
		SetGraphTaskID(msg.TaskID).
		SetMessageType(string(msg.Type)).
		SetMessage(msg.Message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent message: %w", err)
	}
	return row, nil
}

// ListMessagesFor returns messages addressed to one agent, oldest first.
func (s *EventService) ListMessagesFor(ctx context.Context, runID, agent string) ([]*ent.AgentMessage, error) {
	rows, err := s.client.AgentMessage.Query().
		Where(agentmessage.RunIDEQ(runID), agentmessage.ToAgentEQ(agent)).
		Order(ent.Asc(agentmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent messages: %w", err)
	}
	return rows, nil
}

// CreatePMDecision records one decision round for audit.
func (s *EventService) CreatePMDecision(_ context.Context, req models.CreatePMDecisionLogRequest) (*ent.PMDecisionLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.PMDecisionLog.Create().
		SetID(uuid.NewString()).
		SetRunID(req.RunID).
		SetRound(req.Round).
		SetTriggerKind(req.TriggerKind).
		SetReasoning(req.Reasoning).
		SetActionsJSON(req.ActionsJSON).
		SetRawResponse(req.RawResponse).
		SetParseFailed(req.ParseFailed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create PM decision log: %w", err)
	}
	return row, nil
}
