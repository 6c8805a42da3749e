// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/foremanhq/foreman/ent/agentmessage"
	"github.com/foremanhq/foreman/ent/pipelinerun"
)

// AgentMessage is the model entity for the AgentMessage schema.
type AgentMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// FromAgent holds the value of the "from_agent" field.
	FromAgent string `json:"from_agent,omitempty"`
	// Recipient agent name, or 'pm'
	ToAgent string `json:"to_agent,omitempty"`
	// Task the sender was executing
	GraphTaskID string `json:"graph_task_id,omitempty"`
	// question, flag, suggestion, handoff, ...
	MessageType string `json:"message_type,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentMessageQuery when eager-loading is set.
	Edges        AgentMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentMessageEdges holds the relations/edges for other nodes in the graph.
type AgentMessageEdges struct {
	// Run holds the value of the run edge.
	Run *PipelineRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentMessageEdges) RunOrErr() (*PipelineRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipelinerun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentmessage.FieldID, agentmessage.FieldRunID, agentmessage.FieldFromAgent, agentmessage.FieldToAgent, agentmessage.FieldGraphTaskID, agentmessage.FieldMessageType, agentmessage.FieldMessage:
			values[i] = new(sql.NullString)
		case agentmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentMessage fields.
func (_m *AgentMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentmessage.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agentmessage.FieldFromAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_agent", values[i])
			} else if value.Valid {
				_m.FromAgent = value.String
			}
		case agentmessage.FieldToAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_agent", values[i])
			} else if value.Valid {
				_m.ToAgent = value.String
			}
		case agentmessage.FieldGraphTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graph_task_id", values[i])
			} else if value.Valid {
				_m.GraphTaskID = value.String
			}
		case agentmessage.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = value.String
			}
		case agentmessage.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case agentmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentMessage.
// This includes values selected through modifiers, order, etc.
func (_m *AgentMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentMessage entity.
func (_m *AgentMessage) QueryRun() *PipelineRunQuery {
	return NewAgentMessageClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this AgentMessage.
// Note that you need to call AgentMessage.Unwrap() before calling this method if this AgentMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentMessage) Update() *AgentMessageUpdateOne {
	return NewAgentMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentMessage) Unwrap() *AgentMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentMessage) String() string {
	var builder strings.Builder
	builder.WriteString("AgentMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("from_agent=")
	builder.WriteString(_m.FromAgent)
	builder.WriteString(", ")
	builder.WriteString("to_agent=")
	builder.WriteString(_m.ToAgent)
	builder.WriteString(", ")
	builder.WriteString("graph_task_id=")
	builder.WriteString(_m.GraphTaskID)
	builder.WriteString(", ")
	builder.WriteString("message_type=")
	builder.WriteString(_m.MessageType)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentMessages is a parsable slice of AgentMessage.
type AgentMessages []*AgentMessage
