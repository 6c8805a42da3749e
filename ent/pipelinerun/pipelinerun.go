// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinerun type in the database.
	Label = "pipeline_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldRequest holds the string denoting the request field in the database.
	FieldRequest = "request"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGraphJSON holds the string denoting the graph_json field in the database.
	FieldGraphJSON = "graph_json"
	// FieldDecisionCount holds the string denoting the decision_count field in the database.
	FieldDecisionCount = "decision_count"
	// FieldRunningCost holds the string denoting the running_cost field in the database.
	FieldRunningCost = "running_cost"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldStepsJSON holds the string denoting the steps_json field in the database.
	FieldStepsJSON = "steps_json"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeTaskNotes holds the string denoting the task_notes edge name in mutations.
	EdgeTaskNotes = "task_notes"
	// EdgeAgentRuns holds the string denoting the agent_runs edge name in mutations.
	EdgeAgentRuns = "agent_runs"
	// EdgeAgentMessages holds the string denoting the agent_messages edge name in mutations.
	EdgeAgentMessages = "agent_messages"
	// EdgeEventLogs holds the string denoting the event_logs edge name in mutations.
	EdgeEventLogs = "event_logs"
	// EdgePmDecisions holds the string denoting the pm_decisions edge name in mutations.
	EdgePmDecisions = "pm_decisions"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// TaskNoteFieldID holds the string denoting the ID field of the TaskNote.
	TaskNoteFieldID = "note_id"
	// AgentRunFieldID holds the string denoting the ID field of the AgentRun.
	AgentRunFieldID = "agent_run_id"
	// AgentMessageFieldID holds the string denoting the ID field of the AgentMessage.
	AgentMessageFieldID = "message_id"
	// EventLogFieldID holds the string denoting the ID field of the EventLog.
	EventLogFieldID = "event_id"
	// PMDecisionLogFieldID holds the string denoting the ID field of the PMDecisionLog.
	PMDecisionLogFieldID = "decision_id"
	// Table holds the table name of the pipelinerun in the database.
	Table = "pipeline_runs"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "run_id"
	// TaskNotesTable is the table that holds the task_notes relation/edge.
	TaskNotesTable = "task_notes"
	// TaskNotesInverseTable is the table name for the TaskNote entity.
	// It exists in this package in order to avoid circular dependency with the "tasknote" package.
	TaskNotesInverseTable = "task_notes"
	// TaskNotesColumn is the table column denoting the task_notes relation/edge.
	TaskNotesColumn = "run_id"
	// AgentRunsTable is the table that holds the agent_runs relation/edge.
	AgentRunsTable = "agent_runs"
	// AgentRunsInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	AgentRunsInverseTable = "agent_runs"
	// AgentRunsColumn is the table column denoting the agent_runs relation/edge.
	AgentRunsColumn = "run_id"
	// AgentMessagesTable is the table that holds the agent_messages relation/edge.
	AgentMessagesTable = "agent_messages"
	// AgentMessagesInverseTable is the table name for the AgentMessage entity.
	// It exists in this package in order to avoid circular dependency with the "agentmessage" package.
	AgentMessagesInverseTable = "agent_messages"
	// AgentMessagesColumn is the table column denoting the agent_messages relation/edge.
	AgentMessagesColumn = "run_id"
	// EventLogsTable is the table that holds the event_logs relation/edge.
	EventLogsTable = "event_logs"
	// EventLogsInverseTable is the table name for the EventLog entity.
	// It exists in this package in order to avoid circular dependency with the "eventlog" package.
	EventLogsInverseTable = "event_logs"
	// EventLogsColumn is the table column denoting the event_logs relation/edge.
	EventLogsColumn = "run_id"
	// PmDecisionsTable is the table that holds the pm_decisions relation/edge.
	PmDecisionsTable = "pm_decision_logs"
	// PmDecisionsInverseTable is the table name for the PMDecisionLog entity.
	// It exists in this package in order to avoid circular dependency with the "pmdecisionlog" package.
	PmDecisionsInverseTable = "pm_decision_logs"
	// PmDecisionsColumn is the table column denoting the pm_decisions relation/edge.
	PmDecisionsColumn = "run_id"
)

// Columns holds all SQL columns for pipelinerun fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldRequest,
	FieldStatus,
	FieldGraphJSON,
	FieldDecisionCount,
	FieldRunningCost,
	FieldCurrentStep,
	FieldStepsJSON,
	FieldErrorMessage,
	FieldLastHeartbeat,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDecisionCount holds the default value on creation for the "decision_count" field.
	DefaultDecisionCount int
	// DefaultRunningCost holds the default value on creation for the "running_cost" field.
	DefaultRunningCost float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning      Status = "running"
	StatusAwaitingPlan Status = "awaiting_plan"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusAborted      Status = "aborted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusAwaitingPlan, StatusCompleted, StatusFailed, StatusAborted:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByRequest orders the results by the request field.
func ByRequest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequest, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByGraphJSON orders the results by the graph_json field.
func ByGraphJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphJSON, opts...).ToFunc()
}

// ByDecisionCount orders the results by the decision_count field.
func ByDecisionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionCount, opts...).ToFunc()
}

// ByRunningCost orders the results by the running_cost field.
func ByRunningCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunningCost, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByStepsJSON orders the results by the steps_json field.
func ByStepsJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepsJSON, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTaskNotesCount orders the results by task_notes count.
func ByTaskNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTaskNotesStep(), opts...)
	}
}

// ByTaskNotes orders the results by task_notes terms.
func ByTaskNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentRunsCount orders the results by agent_runs count.
func ByAgentRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentRunsStep(), opts...)
	}
}

// ByAgentRuns orders the results by agent_runs terms.
func ByAgentRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentMessagesCount orders the results by agent_messages count.
func ByAgentMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentMessagesStep(), opts...)
	}
}

// ByAgentMessages orders the results by agent_messages terms.
func ByAgentMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventLogsCount orders the results by event_logs count.
func ByEventLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventLogsStep(), opts...)
	}
}

// ByEventLogs orders the results by event_logs terms.
func ByEventLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPmDecisionsCount orders the results by pm_decisions count.
func ByPmDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPmDecisionsStep(), opts...)
	}
}

// ByPmDecisions orders the results by pm_decisions terms.
func ByPmDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPmDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newTaskNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskNotesInverseTable, TaskNoteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TaskNotesTable, TaskNotesColumn),
	)
}
func newAgentRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentRunsInverseTable, AgentRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentRunsTable, AgentRunsColumn),
	)
}
func newAgentMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentMessagesInverseTable, AgentMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentMessagesTable, AgentMessagesColumn),
	)
}
func newEventLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventLogsInverseTable, EventLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventLogsTable, EventLogsColumn),
	)
}
func newPmDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PmDecisionsInverseTable, PMDecisionLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PmDecisionsTable, PmDecisionsColumn),
	)
}
