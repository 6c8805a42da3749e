package models

import "time"

// CreatePipelineRunRequest creates the persisted run record.
type CreatePipelineRunRequest struct {
	RunID     string
	ProjectID string
	Request   string
	GraphJSON string
}

// RunCheckpoint carries the fields the loop writes back to the run record.
// Nil pointer fields are left untouched.
type RunCheckpoint struct {
	Status        *RunStatus
	GraphJSON     *string
	DecisionCount *int
	RunningCost   *float64
	CurrentStep   *int
	ErrorMessage  *string
	StepsJSON     *string
	Heartbeat     *time.Time
}

// CreateTaskRequest persists one task row (mirrors a graph node).
type CreateTaskRequest struct {
	RunID         string
	GraphTaskID   string
	Title         string
	Description   string
	Agent         string
	Role          string
	Status        TaskStatus
	DependsOn     []string
	DecisionRound int
}

// UpdateTaskRequest updates the persisted row for a graph task.
type UpdateTaskRequest struct {
	Status   *TaskStatus
	Attempts *int
	Output   *string
	Error    *string
	CostUSD  *float64
	Agent    *string
	Role     *string
}

// CreateAgentRunRequest persists one execution attempt.
type CreateAgentRunRequest struct {
	RunID        string
	GraphTaskID  string
	Agent        string
	Role         string
	Provider     string
	Model        string
	Attempt      int
	Success      bool
	Input        string
	Output       string
	ErrorMessage string
	ErrorKind    string
	DurationMs   int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// CreateTaskNoteRequest persists a note attached to a task (PM answers etc.).
type CreateTaskNoteRequest struct {
	RunID       string
	GraphTaskID string
	Author      string
	Note        string
}

// CreateEventLogRequest persists one event-log entry.
type CreateEventLogRequest struct {
	RunID     string
	ProjectID string
	EventType string
	Agent     string
	Content   string
}

// CreatePMDecisionLogRequest persists one PM decision for audit.
type CreatePMDecisionLogRequest struct {
	RunID       string
	Round       int
	TriggerKind string
	Reasoning   string
	ActionsJSON string
	RawResponse string
	ParseFailed bool
}
