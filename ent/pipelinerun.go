// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/foremanhq/foreman/ent/pipelinerun"
)

// PipelineRun is the model entity for the PipelineRun schema.
type PipelineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Project identifier (live lookup, no snapshot)
	ProjectID string `json:"project_id,omitempty"`
	// User-visible request the run fulfils
	Request string `json:"request,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinerun.Status `json:"status,omitempty"`
	// Serialized task graph, rewritten at each checkpoint
	GraphJSON string `json:"graph_json,omitempty"`
	// DecisionCount holds the value of the "decision_count" field.
	DecisionCount int `json:"decision_count,omitempty"`
	// Accumulated cost in USD across all attempts
	RunningCost float64 `json:"running_cost,omitempty"`
	// CurrentStep holds the value of the "current_step" field.
	CurrentStep *int `json:"current_step,omitempty"`
	// Completed step summaries
	StepsJSON string `json:"steps_json,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For orphan detection
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineRunQuery when eager-loading is set.
	Edges        PipelineRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineRunEdges holds the relations/edges for other nodes in the graph.
type PipelineRunEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// TaskNotes holds the value of the task_notes edge.
	TaskNotes []*TaskNote `json:"task_notes,omitempty"`
	// AgentRuns holds the value of the agent_runs edge.
	AgentRuns []*AgentRun `json:"agent_runs,omitempty"`
	// AgentMessages holds the value of the agent_messages edge.
	AgentMessages []*AgentMessage `json:"agent_messages,omitempty"`
	// EventLogs holds the value of the event_logs edge.
	EventLogs []*EventLog `json:"event_logs,omitempty"`
	// PmDecisions holds the value of the pm_decisions edge.
	PmDecisions []*PMDecisionLog `json:"pm_decisions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// TaskNotesOrErr returns the TaskNotes value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) TaskNotesOrErr() ([]*TaskNote, error) {
	if e.loadedTypes[1] {
		return e.TaskNotes, nil
	}
	return nil, &NotLoadedError{edge: "task_notes"}
}

// AgentRunsOrErr returns the AgentRuns value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) AgentRunsOrErr() ([]*AgentRun, error) {
	if e.loadedTypes[2] {
		return e.AgentRuns, nil
	}
	return nil, &NotLoadedError{edge: "agent_runs"}
}

// AgentMessagesOrErr returns the AgentMessages value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) AgentMessagesOrErr() ([]*AgentMessage, error) {
	if e.loadedTypes[3] {
		return e.AgentMessages, nil
	}
	return nil, &NotLoadedError{edge: "agent_messages"}
}

// EventLogsOrErr returns the EventLogs value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) EventLogsOrErr() ([]*EventLog, error) {
	if e.loadedTypes[4] {
		return e.EventLogs, nil
	}
	return nil, &NotLoadedError{edge: "event_logs"}
}

// PmDecisionsOrErr returns the PmDecisions value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) PmDecisionsOrErr() ([]*PMDecisionLog, error) {
	if e.loadedTypes[5] {
		return e.PmDecisions, nil
	}
	return nil, &NotLoadedError{edge: "pm_decisions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldRunningCost:
			values[i] = new(sql.NullFloat64)
		case pipelinerun.FieldDecisionCount, pipelinerun.FieldCurrentStep:
			values[i] = new(sql.NullInt64)
		case pipelinerun.FieldID, pipelinerun.FieldProjectID, pipelinerun.FieldRequest, pipelinerun.FieldStatus, pipelinerun.FieldGraphJSON, pipelinerun.FieldStepsJSON, pipelinerun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case pipelinerun.FieldLastHeartbeat, pipelinerun.FieldCreatedAt, pipelinerun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRun fields.
func (_m *PipelineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinerun.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case pipelinerun.FieldRequest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value.Valid {
				_m.Request = value.String
			}
		case pipelinerun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinerun.Status(value.String)
			}
		case pipelinerun.FieldGraphJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graph_json", values[i])
			} else if value.Valid {
				_m.GraphJSON = value.String
			}
		case pipelinerun.FieldDecisionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field decision_count", values[i])
			} else if value.Valid {
				_m.DecisionCount = int(value.Int64)
			}
		case pipelinerun.FieldRunningCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field running_cost", values[i])
			} else if value.Valid {
				_m.RunningCost = value.Float64
			}
		case pipelinerun.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = new(int)
				*_m.CurrentStep = int(value.Int64)
			}
		case pipelinerun.FieldStepsJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field steps_json", values[i])
			} else if value.Valid {
				_m.StepsJSON = value.String
			}
		case pipelinerun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case pipelinerun.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = new(time.Time)
				*_m.LastHeartbeat = value.Time
			}
		case pipelinerun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinerun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRun.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryTasks() *TaskQuery {
	return NewPipelineRunClient(_m.config).QueryTasks(_m)
}

// QueryTaskNotes queries the "task_notes" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryTaskNotes() *TaskNoteQuery {
	return NewPipelineRunClient(_m.config).QueryTaskNotes(_m)
}

// QueryAgentRuns queries the "agent_runs" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryAgentRuns() *AgentRunQuery {
	return NewPipelineRunClient(_m.config).QueryAgentRuns(_m)
}

// QueryAgentMessages queries the "agent_messages" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryAgentMessages() *AgentMessageQuery {
	return NewPipelineRunClient(_m.config).QueryAgentMessages(_m)
}

// QueryEventLogs queries the "event_logs" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryEventLogs() *EventLogQuery {
	return NewPipelineRunClient(_m.config).QueryEventLogs(_m)
}

// QueryPmDecisions queries the "pm_decisions" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryPmDecisions() *PMDecisionLogQuery {
	return NewPipelineRunClient(_m.config).QueryPmDecisions(_m)
}

// Update returns a builder for updating this PipelineRun.
// Note that you need to call PipelineRun.Unwrap() before calling this method if this PipelineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRun) Update() *PipelineRunUpdateOne {
	return NewPipelineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRun) Unwrap() *PipelineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRun) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("request=")
	builder.WriteString(_m.Request)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("graph_json=")
	builder.WriteString(_m.GraphJSON)
	builder.WriteString(", ")
	builder.WriteString("decision_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecisionCount))
	builder.WriteString(", ")
	builder.WriteString("running_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunningCost))
	builder.WriteString(", ")
	if v := _m.CurrentStep; v != nil {
		builder.WriteString("current_step=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("steps_json=")
	builder.WriteString(_m.StepsJSON)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeat; v != nil {
		builder.WriteString("last_heartbeat=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRuns is a parsable slice of PipelineRun.
type PipelineRuns []*PipelineRun
