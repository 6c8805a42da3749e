// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/agentrun"
	"github.com/foremanhq/foreman/ent/predicate"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_u *AgentRunUpdate) SetGraphTaskID(v string) *AgentRunUpdate {
	_u.mutation.SetGraphTaskID(v)
	return _u
}

// SetNillableGraphTaskID sets the "graph_task_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableGraphTaskID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetGraphTaskID(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *AgentRunUpdate) SetAgent(v string) *AgentRunUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAgent(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentRunUpdate) SetRole(v string) *AgentRunUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableRole(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AgentRunUpdate) ClearRole() *AgentRunUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentRunUpdate) SetProvider(v string) *AgentRunUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableProvider(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdate) SetModel(v string) *AgentRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableModel(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AgentRunUpdate) SetAttempt(v int) *AgentRunUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAttempt(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AgentRunUpdate) AddAttempt(v int) *AgentRunUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentRunUpdate) SetSuccess(v bool) *AgentRunUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableSuccess(v *bool) *AgentRunUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *AgentRunUpdate) SetInput(v string) *AgentRunUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableInput(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *AgentRunUpdate) ClearInput() *AgentRunUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentRunUpdate) SetOutput(v string) *AgentRunUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableOutput(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentRunUpdate) ClearOutput() *AgentRunUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdate) SetErrorMessage(v string) *AgentRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorMessage(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdate) ClearErrorMessage() *AgentRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *AgentRunUpdate) SetErrorKind(v string) *AgentRunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorKind(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *AgentRunUpdate) ClearErrorKind() *AgentRunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentRunUpdate) SetDurationMs(v int) *AgentRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableDurationMs(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentRunUpdate) AddDurationMs(v int) *AgentRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentRunUpdate) SetInputTokens(v int) *AgentRunUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableInputTokens(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentRunUpdate) AddInputTokens(v int) *AgentRunUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentRunUpdate) SetOutputTokens(v int) *AgentRunUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableOutputTokens(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentRunUpdate) AddOutputTokens(v int) *AgentRunUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AgentRunUpdate) SetCostUsd(v float64) *AgentRunUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCostUsd(v *float64) *AgentRunUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AgentRunUpdate) AddCostUsd(v float64) *AgentRunUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.run"`)
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GraphTaskID(); ok {
		_spec.SetField(agentrun.FieldGraphTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentrun.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentrun.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(agentrun.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agentrun.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentrun.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentrun.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(agentrun.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentrun.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentrun.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(agentrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(agentrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(agentrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(agentrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_u *AgentRunUpdateOne) SetGraphTaskID(v string) *AgentRunUpdateOne {
	_u.mutation.SetGraphTaskID(v)
	return _u
}

// SetNillableGraphTaskID sets the "graph_task_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableGraphTaskID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetGraphTaskID(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *AgentRunUpdateOne) SetAgent(v string) *AgentRunUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAgent(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentRunUpdateOne) SetRole(v string) *AgentRunUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableRole(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AgentRunUpdateOne) ClearRole() *AgentRunUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentRunUpdateOne) SetProvider(v string) *AgentRunUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableProvider(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdateOne) SetModel(v string) *AgentRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableModel(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AgentRunUpdateOne) SetAttempt(v int) *AgentRunUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAttempt(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AgentRunUpdateOne) AddAttempt(v int) *AgentRunUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentRunUpdateOne) SetSuccess(v bool) *AgentRunUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableSuccess(v *bool) *AgentRunUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *AgentRunUpdateOne) SetInput(v string) *AgentRunUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableInput(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *AgentRunUpdateOne) ClearInput() *AgentRunUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentRunUpdateOne) SetOutput(v string) *AgentRunUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableOutput(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentRunUpdateOne) ClearOutput() *AgentRunUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdateOne) SetErrorMessage(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorMessage(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdateOne) ClearErrorMessage() *AgentRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *AgentRunUpdateOne) SetErrorKind(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorKind(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *AgentRunUpdateOne) ClearErrorKind() *AgentRunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentRunUpdateOne) SetDurationMs(v int) *AgentRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableDurationMs(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentRunUpdateOne) AddDurationMs(v int) *AgentRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentRunUpdateOne) SetInputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableInputTokens(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentRunUpdateOne) AddInputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentRunUpdateOne) SetOutputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableOutputTokens(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentRunUpdateOne) AddOutputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AgentRunUpdateOne) SetCostUsd(v float64) *AgentRunUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCostUsd(v *float64) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AgentRunUpdateOne) AddCostUsd(v float64) *AgentRunUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.run"`)
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if value, ok := _u.mutation.GraphTaskID(); ok {
		_spec.SetField(agentrun.FieldGraphTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentrun.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentrun.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(agentrun.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agentrun.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentrun.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentrun.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(agentrun.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentrun.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentrun.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(agentrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(agentrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(agentrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(agentrun.FieldCostUsd, field.TypeFloat64, value)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
