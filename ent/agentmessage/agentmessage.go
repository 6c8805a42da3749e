// Code generated by ent, DO NOT EDIT.

package agentmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentmessage type in the database.
	Label = "agent_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldFromAgent holds the string denoting the from_agent field in the database.
	FieldFromAgent = "from_agent"
	// FieldToAgent holds the string denoting the to_agent field in the database.
	FieldToAgent = "to_agent"
	// FieldGraphTaskID holds the string denoting the graph_task_id field in the database.
	FieldGraphTaskID = "graph_task_id"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// PipelineRunFieldID holds the string denoting the ID field of the PipelineRun.
	PipelineRunFieldID = "run_id"
	// Table holds the table name of the agentmessage in the database.
	Table = "agent_messages"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "agent_messages"
	// RunInverseTable is the table name for the PipelineRun entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinerun" package.
	RunInverseTable = "pipeline_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for agentmessage fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldFromAgent,
	FieldToAgent,
	FieldGraphTaskID,
	FieldMessageType,
	FieldMessage,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByFromAgent orders the results by the from_agent field.
func ByFromAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromAgent, opts...).ToFunc()
}

// ByToAgent orders the results by the to_agent field.
func ByToAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToAgent, opts...).ToFunc()
}

// ByGraphTaskID orders the results by the graph_task_id field.
func ByGraphTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphTaskID, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, PipelineRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
