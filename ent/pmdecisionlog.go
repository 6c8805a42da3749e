// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/ent/pmdecisionlog"
)

// PMDecisionLog is the model entity for the PMDecisionLog schema.
type PMDecisionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// 1-based decision counter within the run
	Round int `json:"round,omitempty"`
	// TriggerKind holds the value of the "trigger_kind" field.
	TriggerKind string `json:"trigger_kind,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// ActionsJSON holds the value of the "actions_json" field.
	ActionsJSON string `json:"actions_json,omitempty"`
	// Unparsed model output, for post-mortems
	RawResponse string `json:"raw_response,omitempty"`
	// ParseFailed holds the value of the "parse_failed" field.
	ParseFailed bool `json:"parse_failed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PMDecisionLogQuery when eager-loading is set.
	Edges        PMDecisionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PMDecisionLogEdges holds the relations/edges for other nodes in the graph.
type PMDecisionLogEdges struct {
	// Run holds the value of the run edge.
	Run *PipelineRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PMDecisionLogEdges) RunOrErr() (*PipelineRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipelinerun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PMDecisionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pmdecisionlog.FieldParseFailed:
			values[i] = new(sql.NullBool)
		case pmdecisionlog.FieldRound:
			values[i] = new(sql.NullInt64)
		case pmdecisionlog.FieldID, pmdecisionlog.FieldRunID, pmdecisionlog.FieldTriggerKind, pmdecisionlog.FieldReasoning, pmdecisionlog.FieldActionsJSON, pmdecisionlog.FieldRawResponse:
			values[i] = new(sql.NullString)
		case pmdecisionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PMDecisionLog fields.
func (_m *PMDecisionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pmdecisionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pmdecisionlog.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case pmdecisionlog.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case pmdecisionlog.FieldTriggerKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_kind", values[i])
			} else if value.Valid {
				_m.TriggerKind = value.String
			}
		case pmdecisionlog.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case pmdecisionlog.FieldActionsJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actions_json", values[i])
			} else if value.Valid {
				_m.ActionsJSON = value.String
			}
		case pmdecisionlog.FieldRawResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_response", values[i])
			} else if value.Valid {
				_m.RawResponse = value.String
			}
		case pmdecisionlog.FieldParseFailed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field parse_failed", values[i])
			} else if value.Valid {
				_m.ParseFailed = value.Bool
			}
		case pmdecisionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PMDecisionLog.
// This includes values selected through modifiers, order, etc.
func (_m *PMDecisionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the PMDecisionLog entity.
func (_m *PMDecisionLog) QueryRun() *PipelineRunQuery {
	return NewPMDecisionLogClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this PMDecisionLog.
// Note that you need to call PMDecisionLog.Unwrap() before calling this method if this PMDecisionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PMDecisionLog) Update() *PMDecisionLogUpdateOne {
	return NewPMDecisionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PMDecisionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PMDecisionLog) Unwrap() *PMDecisionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PMDecisionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PMDecisionLog) String() string {
	var builder strings.Builder
	builder.WriteString("PMDecisionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("trigger_kind=")
	builder.WriteString(_m.TriggerKind)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("actions_json=")
	builder.WriteString(_m.ActionsJSON)
	builder.WriteString(", ")
	builder.WriteString("raw_response=")
	builder.WriteString(_m.RawResponse)
	builder.WriteString(", ")
	builder.WriteString("parse_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParseFailed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PMDecisionLogs is a parsable slice of PMDecisionLog.
type PMDecisionLogs []*PMDecisionLog
