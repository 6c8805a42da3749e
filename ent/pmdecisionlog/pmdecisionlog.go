// Code generated by ent, DO NOT EDIT.

package pmdecisionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pmdecisionlog type in the database.
	Label = "pm_decision_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldRound holds the string denoting the round field in the database.
	FieldRound = "round"
	// FieldTriggerKind holds the string denoting the trigger_kind field in the database.
	FieldTriggerKind = "trigger_kind"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldActionsJSON holds the string denoting the actions_json field in the database.
	FieldActionsJSON = "actions_json"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldParseFailed holds the string denoting the parse_failed field in the database.
	FieldParseFailed = "parse_failed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// PipelineRunFieldID holds the string denoting the ID field of the PipelineRun.
	PipelineRunFieldID = "run_id"
	// Table holds the table name of the pmdecisionlog in the database.
	Table = "pm_decision_logs"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "pm_decision_logs"
	// RunInverseTable is the table name for the PipelineRun entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinerun" package.
	RunInverseTable = "pipeline_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for pmdecisionlog fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldRound,
	FieldTriggerKind,
	FieldReasoning,
	FieldActionsJSON,
	FieldRawResponse,
	FieldParseFailed,
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
	// DefaultParseFailed holds the default value on creation for the "parse_failed" field.
	DefaultParseFailed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PMDecisionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByRound orders the results by the round field.
func ByRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRound, opts...).ToFunc()
}

// ByTriggerKind orders the results by the trigger_kind field.
func ByTriggerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerKind, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByActionsJSON orders the results by the actions_json field.
func ByActionsJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionsJSON, opts...).ToFunc()
}

// ByRawResponse orders the results by the raw_response field.
func ByRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawResponse, opts...).ToFunc()
}

// ByParseFailed orders the results by the parse_failed field.
func ByParseFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParseFailed, opts...).ToFunc()
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
