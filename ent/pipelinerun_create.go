// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/agentmessage"
	"github.com/foremanhq/foreman/ent/agentrun"
	"github.com/foremanhq/foreman/ent/eventlog"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/ent/pmdecisionlog"
	"github.com/foremanhq/foreman/ent/task"
	"github.com/foremanhq/foreman/ent/tasknote"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *PipelineRunCreate) SetProjectID(v string) *PipelineRunCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetRequest sets the "request" field.
func (_c *PipelineRunCreate) SetRequest(v string) *PipelineRunCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGraphJSON sets the "graph_json" field.
func (_c *PipelineRunCreate) SetGraphJSON(v string) *PipelineRunCreate {
	_c.mutation.SetGraphJSON(v)
	return _c
}

// SetDecisionCount sets the "decision_count" field.
func (_c *PipelineRunCreate) SetDecisionCount(v int) *PipelineRunCreate {
	_c.mutation.SetDecisionCount(v)
	return _c
}

// SetNillableDecisionCount sets the "decision_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableDecisionCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetDecisionCount(*v)
	}
	return _c
}

// SetRunningCost sets the "running_cost" field.
func (_c *PipelineRunCreate) SetRunningCost(v float64) *PipelineRunCreate {
	_c.mutation.SetRunningCost(v)
	return _c
}

// SetNillableRunningCost sets the "running_cost" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableRunningCost(v *float64) *PipelineRunCreate {
	if v != nil {
		_c.SetRunningCost(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *PipelineRunCreate) SetCurrentStep(v int) *PipelineRunCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCurrentStep(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetStepsJSON sets the "steps_json" field.
func (_c *PipelineRunCreate) SetStepsJSON(v string) *PipelineRunCreate {
	_c.mutation.SetStepsJSON(v)
	return _c
}

// SetNillableStepsJSON sets the "steps_json" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStepsJSON(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetStepsJSON(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineRunCreate) SetErrorMessage(v string) *PipelineRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableErrorMessage(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *PipelineRunCreate) SetLastHeartbeat(v time.Time) *PipelineRunCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableLastHeartbeat(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineRunCreate) SetCreatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCreatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineRunCreate) SetCompletedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompletedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *PipelineRunCreate) AddTaskIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *PipelineRunCreate) AddTasks(v ...*Task) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddTaskNoteIDs adds the "task_notes" edge to the TaskNote entity by IDs.
func (_c *PipelineRunCreate) AddTaskNoteIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddTaskNoteIDs(ids...)
	return _c
}

// AddTaskNotes adds the "task_notes" edges to the TaskNote entity.
func (_c *PipelineRunCreate) AddTaskNotes(v ...*TaskNote) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskNoteIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_c *PipelineRunCreate) AddAgentRunIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddAgentRunIDs(ids...)
	return _c
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_c *PipelineRunCreate) AddAgentRuns(v ...*AgentRun) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentRunIDs(ids...)
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by IDs.
func (_c *PipelineRunCreate) AddAgentMessageIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddAgentMessageIDs(ids...)
	return _c
}

// AddAgentMessages adds the "agent_messages" edges to the AgentMessage entity.
func (_c *PipelineRunCreate) AddAgentMessages(v ...*AgentMessage) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentMessageIDs(ids...)
}

// AddEventLogIDs adds the "event_logs" edge to the EventLog entity by IDs.
func (_c *PipelineRunCreate) AddEventLogIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddEventLogIDs(ids...)
	return _c
}

// AddEventLogs adds the "event_logs" edges to the EventLog entity.
func (_c *PipelineRunCreate) AddEventLogs(v ...*EventLog) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventLogIDs(ids...)
}

// AddPmDecisionIDs adds the "pm_decisions" edge to the PMDecisionLog entity by IDs.
func (_c *PipelineRunCreate) AddPmDecisionIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddPmDecisionIDs(ids...)
	return _c
}

// AddPmDecisions adds the "pm_decisions" edges to the PMDecisionLog entity.
func (_c *PipelineRunCreate) AddPmDecisions(v ...*PMDecisionLog) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPmDecisionIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DecisionCount(); !ok {
		v := pipelinerun.DefaultDecisionCount
		_c.mutation.SetDecisionCount(v)
	}
	if _, ok := _c.mutation.RunningCost(); !ok {
		v := pipelinerun.DefaultRunningCost
		_c.mutation.SetRunningCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "PipelineRun.project_id"`)}
	}
	if _, ok := _c.mutation.Request(); !ok {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required field "PipelineRun.request"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GraphJSON(); !ok {
		return &ValidationError{Name: "graph_json", err: errors.New(`ent: missing required field "PipelineRun.graph_json"`)}
	}
	if _, ok := _c.mutation.DecisionCount(); !ok {
		return &ValidationError{Name: "decision_count", err: errors.New(`ent: missing required field "PipelineRun.decision_count"`)}
	}
	if _, ok := _c.mutation.RunningCost(); !ok {
		return &ValidationError{Name: "running_cost", err: errors.New(`ent: missing required field "PipelineRun.running_cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineRun.created_at"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(pipelinerun.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(pipelinerun.FieldRequest, field.TypeString, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GraphJSON(); ok {
		_spec.SetField(pipelinerun.FieldGraphJSON, field.TypeString, value)
		_node.GraphJSON = value
	}
	if value, ok := _c.mutation.DecisionCount(); ok {
		_spec.SetField(pipelinerun.FieldDecisionCount, field.TypeInt, value)
		_node.DecisionCount = value
	}
	if value, ok := _c.mutation.RunningCost(); ok {
		_spec.SetField(pipelinerun.FieldRunningCost, field.TypeFloat64, value)
		_node.RunningCost = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.StepsJSON(); ok {
		_spec.SetField(pipelinerun.FieldStepsJSON, field.TypeString, value)
		_node.StepsJSON = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TaskNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PmDecisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
