// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/agentmessage"
	"github.com/foremanhq/foreman/ent/agentrun"
	"github.com/foremanhq/foreman/ent/eventlog"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/ent/pmdecisionlog"
	"github.com/foremanhq/foreman/ent/predicate"
	"github.com/foremanhq/foreman/ent/task"
	"github.com/foremanhq/foreman/ent/tasknote"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *PipelineRunUpdate) SetProjectID(v string) *PipelineRunUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableProjectID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *PipelineRunUpdate) SetRequest(v string) *PipelineRunUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableRequest(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGraphJSON sets the "graph_json" field.
func (_u *PipelineRunUpdate) SetGraphJSON(v string) *PipelineRunUpdate {
	_u.mutation.SetGraphJSON(v)
	return _u
}

// SetNillableGraphJSON sets the "graph_json" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableGraphJSON(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetGraphJSON(*v)
	}
	return _u
}

// SetDecisionCount sets the "decision_count" field.
func (_u *PipelineRunUpdate) SetDecisionCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetDecisionCount()
	_u.mutation.SetDecisionCount(v)
	return _u
}

// SetNillableDecisionCount sets the "decision_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableDecisionCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetDecisionCount(*v)
	}
	return _u
}

// AddDecisionCount adds value to the "decision_count" field.
func (_u *PipelineRunUpdate) AddDecisionCount(v int) *PipelineRunUpdate {
	_u.mutation.AddDecisionCount(v)
	return _u
}

// SetRunningCost sets the "running_cost" field.
func (_u *PipelineRunUpdate) SetRunningCost(v float64) *PipelineRunUpdate {
	_u.mutation.ResetRunningCost()
	_u.mutation.SetRunningCost(v)
	return _u
}

// SetNillableRunningCost sets the "running_cost" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableRunningCost(v *float64) *PipelineRunUpdate {
	if v != nil {
		_u.SetRunningCost(*v)
	}
	return _u
}

// AddRunningCost adds value to the "running_cost" field.
func (_u *PipelineRunUpdate) AddRunningCost(v float64) *PipelineRunUpdate {
	_u.mutation.AddRunningCost(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *PipelineRunUpdate) SetCurrentStep(v int) *PipelineRunUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCurrentStep(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *PipelineRunUpdate) AddCurrentStep(v int) *PipelineRunUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *PipelineRunUpdate) ClearCurrentStep() *PipelineRunUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepsJSON sets the "steps_json" field.
func (_u *PipelineRunUpdate) SetStepsJSON(v string) *PipelineRunUpdate {
	_u.mutation.SetStepsJSON(v)
	return _u
}

// SetNillableStepsJSON sets the "steps_json" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStepsJSON(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetStepsJSON(*v)
	}
	return _u
}

// ClearStepsJSON clears the value of the "steps_json" field.
func (_u *PipelineRunUpdate) ClearStepsJSON() *PipelineRunUpdate {
	_u.mutation.ClearStepsJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdate) SetErrorMessage(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorMessage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdate) ClearErrorMessage() *PipelineRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *PipelineRunUpdate) SetLastHeartbeat(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableLastHeartbeat(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *PipelineRunUpdate) ClearLastHeartbeat() *PipelineRunUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *PipelineRunUpdate) AddTaskIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *PipelineRunUpdate) AddTasks(v ...*Task) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddTaskNoteIDs adds the "task_notes" edge to the TaskNote entity by IDs.
func (_u *PipelineRunUpdate) AddTaskNoteIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddTaskNoteIDs(ids...)
	return _u
}

// AddTaskNotes adds the "task_notes" edges to the TaskNote entity.
func (_u *PipelineRunUpdate) AddTaskNotes(v ...*TaskNote) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskNoteIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_u *PipelineRunUpdate) AddAgentRunIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddAgentRunIDs(ids...)
	return _u
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_u *PipelineRunUpdate) AddAgentRuns(v ...*AgentRun) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRunIDs(ids...)
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by IDs.
func (_u *PipelineRunUpdate) AddAgentMessageIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddAgentMessageIDs(ids...)
	return _u
}

// AddAgentMessages adds the "agent_messages" edges to the AgentMessage entity.
func (_u *PipelineRunUpdate) AddAgentMessages(v ...*AgentMessage) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentMessageIDs(ids...)
}

// AddEventLogIDs adds the "event_logs" edge to the EventLog entity by IDs.
func (_u *PipelineRunUpdate) AddEventLogIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddEventLogIDs(ids...)
	return _u
}

// AddEventLogs adds the "event_logs" edges to the EventLog entity.
func (_u *PipelineRunUpdate) AddEventLogs(v ...*EventLog) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLogIDs(ids...)
}

// AddPmDecisionIDs adds the "pm_decisions" edge to the PMDecisionLog entity by IDs.
func (_u *PipelineRunUpdate) AddPmDecisionIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddPmDecisionIDs(ids...)
	return _u
}

// AddPmDecisions adds the "pm_decisions" edges to the PMDecisionLog entity.
func (_u *PipelineRunUpdate) AddPmDecisions(v ...*PMDecisionLog) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPmDecisionIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *PipelineRunUpdate) ClearTasks() *PipelineRunUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *PipelineRunUpdate) RemoveTaskIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *PipelineRunUpdate) RemoveTasks(v ...*Task) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearTaskNotes clears all "task_notes" edges to the TaskNote entity.
func (_u *PipelineRunUpdate) ClearTaskNotes() *PipelineRunUpdate {
	_u.mutation.ClearTaskNotes()
	return _u
}

// RemoveTaskNoteIDs removes the "task_notes" edge to TaskNote entities by IDs.
func (_u *PipelineRunUpdate) RemoveTaskNoteIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveTaskNoteIDs(ids...)
	return _u
}

// RemoveTaskNotes removes "task_notes" edges to TaskNote entities.
func (_u *PipelineRunUpdate) RemoveTaskNotes(v ...*TaskNote) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskNoteIDs(ids...)
}

// ClearAgentRuns clears all "agent_runs" edges to the AgentRun entity.
func (_u *PipelineRunUpdate) ClearAgentRuns() *PipelineRunUpdate {
	_u.mutation.ClearAgentRuns()
	return _u
}

// RemoveAgentRunIDs removes the "agent_runs" edge to AgentRun entities by IDs.
func (_u *PipelineRunUpdate) RemoveAgentRunIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveAgentRunIDs(ids...)
	return _u
}

// RemoveAgentRuns removes "agent_runs" edges to AgentRun entities.
func (_u *PipelineRunUpdate) RemoveAgentRuns(v ...*AgentRun) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRunIDs(ids...)
}

// ClearAgentMessages clears all "agent_messages" edges to the AgentMessage entity.
func (_u *PipelineRunUpdate) ClearAgentMessages() *PipelineRunUpdate {
	_u.mutation.ClearAgentMessages()
	return _u
}

// RemoveAgentMessageIDs removes the "agent_messages" edge to AgentMessage entities by IDs.
func (_u *PipelineRunUpdate) RemoveAgentMessageIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveAgentMessageIDs(ids...)
	return _u
}

// RemoveAgentMessages removes "agent_messages" edges to AgentMessage entities.
func (_u *PipelineRunUpdate) RemoveAgentMessages(v ...*AgentMessage) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentMessageIDs(ids...)
}

// ClearEventLogs clears all "event_logs" edges to the EventLog entity.
func (_u *PipelineRunUpdate) ClearEventLogs() *PipelineRunUpdate {
	_u.mutation.ClearEventLogs()
	return _u
}

// RemoveEventLogIDs removes the "event_logs" edge to EventLog entities by IDs.
func (_u *PipelineRunUpdate) RemoveEventLogIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveEventLogIDs(ids...)
	return _u
}

// RemoveEventLogs removes "event_logs" edges to EventLog entities.
func (_u *PipelineRunUpdate) RemoveEventLogs(v ...*EventLog) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLogIDs(ids...)
}

// ClearPmDecisions clears all "pm_decisions" edges to the PMDecisionLog entity.
func (_u *PipelineRunUpdate) ClearPmDecisions() *PipelineRunUpdate {
	_u.mutation.ClearPmDecisions()
	return _u
}

// RemovePmDecisionIDs removes the "pm_decisions" edge to PMDecisionLog entities by IDs.
func (_u *PipelineRunUpdate) RemovePmDecisionIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemovePmDecisionIDs(ids...)
	return _u
}

// RemovePmDecisions removes "pm_decisions" edges to PMDecisionLog entities.
func (_u *PipelineRunUpdate) RemovePmDecisions(v ...*PMDecisionLog) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePmDecisionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(pipelinerun.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(pipelinerun.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GraphJSON(); ok {
		_spec.SetField(pipelinerun.FieldGraphJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.DecisionCount(); ok {
		_spec.SetField(pipelinerun.FieldDecisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDecisionCount(); ok {
		_spec.AddField(pipelinerun.FieldDecisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunningCost(); ok {
		_spec.SetField(pipelinerun.FieldRunningCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRunningCost(); ok {
		_spec.AddField(pipelinerun.FieldRunningCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(pipelinerun.FieldCurrentStep, field.TypeInt, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(pipelinerun.FieldCurrentStep, field.TypeInt)
	}
	if value, ok := _u.mutation.StepsJSON(); ok {
		_spec.SetField(pipelinerun.FieldStepsJSON, field.TypeString, value)
	}
	if _u.mutation.StepsJSONCleared() {
		_spec.ClearField(pipelinerun.FieldStepsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(pipelinerun.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TasksTable,
			Columns: []string{pipelinerun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TasksTable,
			Columns: []string{pipelinerun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TasksTable,
			Columns: []string{pipelinerun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TaskNotesTable,
			Columns: []string{pipelinerun.TaskNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskNotesIDs(); len(nodes) > 0 && !_u.mutation.TaskNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TaskNotesTable,
			Columns: []string{pipelinerun.TaskNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TaskNotesTable,
			Columns: []string{pipelinerun.TaskNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentRunsTable,
			Columns: []string{pipelinerun.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRunsIDs(); len(nodes) > 0 && !_u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentRunsTable,
			Columns: []string{pipelinerun.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentRunsTable,
			Columns: []string{pipelinerun.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentMessagesTable,
			Columns: []string{pipelinerun.AgentMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentMessagesIDs(); len(nodes) > 0 && !_u.mutation.AgentMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentMessagesTable,
			Columns: []string{pipelinerun.AgentMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentMessagesTable,
			Columns: []string{pipelinerun.AgentMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.EventLogsTable,
			Columns: []string{pipelinerun.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLogsIDs(); len(nodes) > 0 && !_u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.EventLogsTable,
			Columns: []string{pipelinerun.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.EventLogsTable,
			Columns: []string{pipelinerun.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PmDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.PmDecisionsTable,
			Columns: []string{pipelinerun.PmDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPmDecisionsIDs(); len(nodes) > 0 && !_u.mutation.PmDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.PmDecisionsTable,
			Columns: []string{pipelinerun.PmDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PmDecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.PmDecisionsTable,
			Columns: []string{pipelinerun.PmDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetProjectID sets the "project_id" field.
func (_u *PipelineRunUpdateOne) SetProjectID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableProjectID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *PipelineRunUpdateOne) SetRequest(v string) *PipelineRunUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableRequest(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGraphJSON sets the "graph_json" field.
func (_u *PipelineRunUpdateOne) SetGraphJSON(v string) *PipelineRunUpdateOne {
	_u.mutation.SetGraphJSON(v)
	return _u
}

// SetNillableGraphJSON sets the "graph_json" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableGraphJSON(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetGraphJSON(*v)
	}
	return _u
}

// SetDecisionCount sets the "decision_count" field.
func (_u *PipelineRunUpdateOne) SetDecisionCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetDecisionCount()
	_u.mutation.SetDecisionCount(v)
	return _u
}

// SetNillableDecisionCount sets the "decision_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableDecisionCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetDecisionCount(*v)
	}
	return _u
}

// AddDecisionCount adds value to the "decision_count" field.
func (_u *PipelineRunUpdateOne) AddDecisionCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddDecisionCount(v)
	return _u
}

// SetRunningCost sets the "running_cost" field.
func (_u *PipelineRunUpdateOne) SetRunningCost(v float64) *PipelineRunUpdateOne {
	_u.mutation.ResetRunningCost()
	_u.mutation.SetRunningCost(v)
	return _u
}

// SetNillableRunningCost sets the "running_cost" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableRunningCost(v *float64) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetRunningCost(*v)
	}
	return _u
}

// AddRunningCost adds value to the "running_cost" field.
func (_u *PipelineRunUpdateOne) AddRunningCost(v float64) *PipelineRunUpdateOne {
	_u.mutation.AddRunningCost(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *PipelineRunUpdateOne) SetCurrentStep(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCurrentStep(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *PipelineRunUpdateOne) AddCurrentStep(v int) *PipelineRunUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *PipelineRunUpdateOne) ClearCurrentStep() *PipelineRunUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepsJSON sets the "steps_json" field.
func (_u *PipelineRunUpdateOne) SetStepsJSON(v string) *PipelineRunUpdateOne {
	_u.mutation.SetStepsJSON(v)
	return _u
}

// SetNillableStepsJSON sets the "steps_json" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStepsJSON(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStepsJSON(*v)
	}
	return _u
}

// ClearStepsJSON clears the value of the "steps_json" field.
func (_u *PipelineRunUpdateOne) ClearStepsJSON() *PipelineRunUpdateOne {
	_u.mutation.ClearStepsJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdateOne) SetErrorMessage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorMessage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdateOne) ClearErrorMessage() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *PipelineRunUpdateOne) SetLastHeartbeat(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableLastHeartbeat(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *PipelineRunUpdateOne) ClearLastHeartbeat() *PipelineRunUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *PipelineRunUpdateOne) AddTaskIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *PipelineRunUpdateOne) AddTasks(v ...*Task) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddTaskNoteIDs adds the "task_notes" edge to the TaskNote entity by IDs.
func (_u *PipelineRunUpdateOne) AddTaskNoteIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddTaskNoteIDs(ids...)
	return _u
}

// AddTaskNotes adds the "task_notes" edges to the TaskNote entity.
func (_u *PipelineRunUpdateOne) AddTaskNotes(v ...*TaskNote) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskNoteIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_u *PipelineRunUpdateOne) AddAgentRunIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddAgentRunIDs(ids...)
	return _u
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_u *PipelineRunUpdateOne) AddAgentRuns(v ...*AgentRun) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRunIDs(ids...)
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by IDs.
func (_u *PipelineRunUpdateOne) AddAgentMessageIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddAgentMessageIDs(ids...)
	return _u
}

// AddAgentMessages adds the "agent_messages" edges to the AgentMessage entity.
func (_u *PipelineRunUpdateOne) AddAgentMessages(v ...*AgentMessage) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentMessageIDs(ids...)
}

// AddEventLogIDs adds the "event_logs" edge to the EventLog entity by IDs.
func (_u *PipelineRunUpdateOne) AddEventLogIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddEventLogIDs(ids...)
	return _u
}

// AddEventLogs adds the "event_logs" edges to the EventLog entity.
func (_u *PipelineRunUpdateOne) AddEventLogs(v ...*EventLog) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLogIDs(ids...)
}

// AddPmDecisionIDs adds the "pm_decisions" edge to the PMDecisionLog entity by IDs.
func (_u *PipelineRunUpdateOne) AddPmDecisionIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddPmDecisionIDs(ids...)
	return _u
}

// AddPmDecisions adds the "pm_decisions" edges to the PMDecisionLog entity.
func (_u *PipelineRunUpdateOne) AddPmDecisions(v ...*PMDecisionLog) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPmDecisionIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *PipelineRunUpdateOne) ClearTasks() *PipelineRunUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveTaskIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *PipelineRunUpdateOne) RemoveTasks(v ...*Task) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearTaskNotes clears all "task_notes" edges to the TaskNote entity.
func (_u *PipelineRunUpdateOne) ClearTaskNotes() *PipelineRunUpdateOne {
	_u.mutation.ClearTaskNotes()
	return _u
}

// RemoveTaskNoteIDs removes the "task_notes" edge to TaskNote entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveTaskNoteIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveTaskNoteIDs(ids...)
	return _u
}

// RemoveTaskNotes removes "task_notes" edges to TaskNote entities.
func (_u *PipelineRunUpdateOne) RemoveTaskNotes(v ...*TaskNote) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskNoteIDs(ids...)
}

// ClearAgentRuns clears all "agent_runs" edges to the AgentRun entity.
func (_u *PipelineRunUpdateOne) ClearAgentRuns() *PipelineRunUpdateOne {
	_u.mutation.ClearAgentRuns()
	return _u
}

// RemoveAgentRunIDs removes the "agent_runs" edge to AgentRun entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveAgentRunIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveAgentRunIDs(ids...)
	return _u
}

// RemoveAgentRuns removes "agent_runs" edges to AgentRun entities.
func (_u *PipelineRunUpdateOne) RemoveAgentRuns(v ...*AgentRun) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRunIDs(ids...)
}

// ClearAgentMessages clears all "agent_messages" edges to the AgentMessage entity.
func (_u *PipelineRunUpdateOne) ClearAgentMessages() *PipelineRunUpdateOne {
	_u.mutation.ClearAgentMessages()
	return _u
}

// RemoveAgentMessageIDs removes the "agent_messages" edge to AgentMessage entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveAgentMessageIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveAgentMessageIDs(ids...)
	return _u
}

// RemoveAgentMessages removes "agent_messages" edges to AgentMessage entities.
func (_u *PipelineRunUpdateOne) RemoveAgentMessages(v ...*AgentMessage) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentMessageIDs(ids...)
}

// ClearEventLogs clears all "event_logs" edges to the EventLog entity.
func (_u *PipelineRunUpdateOne) ClearEventLogs() *PipelineRunUpdateOne {
	_u.mutation.ClearEventLogs()
	return _u
}

// RemoveEventLogIDs removes the "event_logs" edge to EventLog entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveEventLogIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveEventLogIDs(ids...)
	return _u
}

// RemoveEventLogs removes "event_logs" edges to EventLog entities.
func (_u *PipelineRunUpdateOne) RemoveEventLogs(v ...*EventLog) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLogIDs(ids...)
}

// ClearPmDecisions clears all "pm_decisions" edges to the PMDecisionLog entity.
func (_u *PipelineRunUpdateOne) ClearPmDecisions() *PipelineRunUpdateOne {
	_u.mutation.ClearPmDecisions()
	return _u
}

// RemovePmDecisionIDs removes the "pm_decisions" edge to PMDecisionLog entities by IDs.
func (_u *PipelineRunUpdateOne) RemovePmDecisionIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemovePmDecisionIDs(ids...)
	return _u
}

// RemovePmDecisions removes "pm_decisions" edges to PMDecisionLog entities.
func (_u *PipelineRunUpdateOne) RemovePmDecisions(v ...*PMDecisionLog) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePmDecisionIDs(ids...)
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(pipelinerun.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(pipelinerun.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GraphJSON(); ok {
		_spec.SetField(pipelinerun.FieldGraphJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.DecisionCount(); ok {
		_spec.SetField(pipelinerun.FieldDecisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDecisionCount(); ok {
		_spec.AddField(pipelinerun.FieldDecisionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunningCost(); ok {
		_spec.SetField(pipelinerun.FieldRunningCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRunningCost(); ok {
		_spec.AddField(pipelinerun.FieldRunningCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(pipelinerun.FieldCurrentStep, field.TypeInt, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(pipelinerun.FieldCurrentStep, field.TypeInt)
	}
	if value, ok := _u.mutation.StepsJSON(); ok {
		_spec.SetField(pipelinerun.FieldStepsJSON, field.TypeString, value)
	}
	if _u.mutation.StepsJSONCleared() {
		_spec.ClearField(pipelinerun.FieldStepsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(pipelinerun.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TasksTable,
			Columns: []string{pipelinerun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TasksTable,
			Columns: []string{pipelinerun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TasksTable,
			Columns: []string{pipelinerun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TaskNotesTable,
			Columns: []string{pipelinerun.TaskNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskNotesIDs(); len(nodes) > 0 && !_u.mutation.TaskNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TaskNotesTable,
			Columns: []string{pipelinerun.TaskNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.TaskNotesTable,
			Columns: []string{pipelinerun.TaskNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentRunsTable,
			Columns: []string{pipelinerun.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRunsIDs(); len(nodes) > 0 && !_u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentRunsTable,
			Columns: []string{pipelinerun.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentRunsTable,
			Columns: []string{pipelinerun.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentMessagesTable,
			Columns: []string{pipelinerun.AgentMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentMessagesIDs(); len(nodes) > 0 && !_u.mutation.AgentMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentMessagesTable,
			Columns: []string{pipelinerun.AgentMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.AgentMessagesTable,
			Columns: []string{pipelinerun.AgentMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.EventLogsTable,
			Columns: []string{pipelinerun.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLogsIDs(); len(nodes) > 0 && !_u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.EventLogsTable,
			Columns: []string{pipelinerun.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.EventLogsTable,
			Columns: []string{pipelinerun.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PmDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.PmDecisionsTable,
			Columns: []string{pipelinerun.PmDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPmDecisionsIDs(); len(nodes) > 0 && !_u.mutation.PmDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.PmDecisionsTable,
			Columns: []string{pipelinerun.PmDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PmDecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.PmDecisionsTable,
			Columns: []string{pipelinerun.PmDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
