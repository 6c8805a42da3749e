// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/pmdecisionlog"
	"github.com/foremanhq/foreman/ent/predicate"
)

// PMDecisionLogUpdate is the builder for updating PMDecisionLog entities.
type PMDecisionLogUpdate struct {
	config
	hooks    []Hook
	mutation *PMDecisionLogMutation
}

// Where appends a list predicates to the PMDecisionLogUpdate builder.
func (_u *PMDecisionLogUpdate) Where(ps ...predicate.PMDecisionLog) *PMDecisionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRound sets the "round" field.
func (_u *PMDecisionLogUpdate) SetRound(v int) *PMDecisionLogUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *PMDecisionLogUpdate) SetNillableRound(v *int) *PMDecisionLogUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *PMDecisionLogUpdate) AddRound(v int) *PMDecisionLogUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *PMDecisionLogUpdate) SetTriggerKind(v string) *PMDecisionLogUpdate {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *PMDecisionLogUpdate) SetNillableTriggerKind(v *string) *PMDecisionLogUpdate {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PMDecisionLogUpdate) SetReasoning(v string) *PMDecisionLogUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PMDecisionLogUpdate) SetNillableReasoning(v *string) *PMDecisionLogUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PMDecisionLogUpdate) ClearReasoning() *PMDecisionLogUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetActionsJSON sets the "actions_json" field.
func (_u *PMDecisionLogUpdate) SetActionsJSON(v string) *PMDecisionLogUpdate {
	_u.mutation.SetActionsJSON(v)
	return _u
}

// SetNillableActionsJSON sets the "actions_json" field if the given value is not nil.
func (_u *PMDecisionLogUpdate) SetNillableActionsJSON(v *string) *PMDecisionLogUpdate {
	if v != nil {
		_u.SetActionsJSON(*v)
	}
	return _u
}

// ClearActionsJSON clears the value of the "actions_json" field.
func (_u *PMDecisionLogUpdate) ClearActionsJSON() *PMDecisionLogUpdate {
	_u.mutation.ClearActionsJSON()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *PMDecisionLogUpdate) SetRawResponse(v string) *PMDecisionLogUpdate {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *PMDecisionLogUpdate) SetNillableRawResponse(v *string) *PMDecisionLogUpdate {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *PMDecisionLogUpdate) ClearRawResponse() *PMDecisionLogUpdate {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetParseFailed sets the "parse_failed" field.
func (_u *PMDecisionLogUpdate) SetParseFailed(v bool) *PMDecisionLogUpdate {
	_u.mutation.SetParseFailed(v)
	return _u
}

// SetNillableParseFailed sets the "parse_failed" field if the given value is not nil.
func (_u *PMDecisionLogUpdate) SetNillableParseFailed(v *bool) *PMDecisionLogUpdate {
	if v != nil {
		_u.SetParseFailed(*v)
	}
	return _u
}

// Mutation returns the PMDecisionLogMutation object of the builder.
func (_u *PMDecisionLogUpdate) Mutation() *PMDecisionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PMDecisionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PMDecisionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PMDecisionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PMDecisionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PMDecisionLogUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PMDecisionLog.run"`)
	}
	return nil
}

func (_u *PMDecisionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pmdecisionlog.Table, pmdecisionlog.Columns, sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(pmdecisionlog.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(pmdecisionlog.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(pmdecisionlog.FieldTriggerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(pmdecisionlog.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(pmdecisionlog.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ActionsJSON(); ok {
		_spec.SetField(pmdecisionlog.FieldActionsJSON, field.TypeString, value)
	}
	if _u.mutation.ActionsJSONCleared() {
		_spec.ClearField(pmdecisionlog.FieldActionsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(pmdecisionlog.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(pmdecisionlog.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ParseFailed(); ok {
		_spec.SetField(pmdecisionlog.FieldParseFailed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pmdecisionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PMDecisionLogUpdateOne is the builder for updating a single PMDecisionLog entity.
type PMDecisionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PMDecisionLogMutation
}

// SetRound sets the "round" field.
func (_u *PMDecisionLogUpdateOne) SetRound(v int) *PMDecisionLogUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *PMDecisionLogUpdateOne) SetNillableRound(v *int) *PMDecisionLogUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *PMDecisionLogUpdateOne) AddRound(v int) *PMDecisionLogUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *PMDecisionLogUpdateOne) SetTriggerKind(v string) *PMDecisionLogUpdateOne {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *PMDecisionLogUpdateOne) SetNillableTriggerKind(v *string) *PMDecisionLogUpdateOne {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PMDecisionLogUpdateOne) SetReasoning(v string) *PMDecisionLogUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PMDecisionLogUpdateOne) SetNillableReasoning(v *string) *PMDecisionLogUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PMDecisionLogUpdateOne) ClearReasoning() *PMDecisionLogUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetActionsJSON sets the "actions_json" field.
func (_u *PMDecisionLogUpdateOne) SetActionsJSON(v string) *PMDecisionLogUpdateOne {
	_u.mutation.SetActionsJSON(v)
	return _u
}

// SetNillableActionsJSON sets the "actions_json" field if the given value is not nil.
func (_u *PMDecisionLogUpdateOne) SetNillableActionsJSON(v *string) *PMDecisionLogUpdateOne {
	if v != nil {
		_u.SetActionsJSON(*v)
	}
	return _u
}

// ClearActionsJSON clears the value of the "actions_json" field.
func (_u *PMDecisionLogUpdateOne) ClearActionsJSON() *PMDecisionLogUpdateOne {
	_u.mutation.ClearActionsJSON()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *PMDecisionLogUpdateOne) SetRawResponse(v string) *PMDecisionLogUpdateOne {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *PMDecisionLogUpdateOne) SetNillableRawResponse(v *string) *PMDecisionLogUpdateOne {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *PMDecisionLogUpdateOne) ClearRawResponse() *PMDecisionLogUpdateOne {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetParseFailed sets the "parse_failed" field.
func (_u *PMDecisionLogUpdateOne) SetParseFailed(v bool) *PMDecisionLogUpdateOne {
	_u.mutation.SetParseFailed(v)
	return _u
}

// SetNillableParseFailed sets the "parse_failed" field if the given value is not nil.
func (_u *PMDecisionLogUpdateOne) SetNillableParseFailed(v *bool) *PMDecisionLogUpdateOne {
	if v != nil {
		_u.SetParseFailed(*v)
	}
	return _u
}

// Mutation returns the PMDecisionLogMutation object of the builder.
func (_u *PMDecisionLogUpdateOne) Mutation() *PMDecisionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the PMDecisionLogUpdate builder.
func (_u *PMDecisionLogUpdateOne) Where(ps ...predicate.PMDecisionLog) *PMDecisionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PMDecisionLogUpdateOne) Select(field string, fields ...string) *PMDecisionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PMDecisionLog entity.
func (_u *PMDecisionLogUpdateOne) Save(ctx context.Context) (*PMDecisionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PMDecisionLogUpdateOne) SaveX(ctx context.Context) *PMDecisionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PMDecisionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PMDecisionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PMDecisionLogUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PMDecisionLog.run"`)
	}
	return nil
}

func (_u *PMDecisionLogUpdateOne) sqlSave(ctx context.Context) (_node *PMDecisionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pmdecisionlog.Table, pmdecisionlog.Columns, sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PMDecisionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pmdecisionlog.FieldID)
		for _, f := range fields {
			if !pmdecisionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pmdecisionlog.FieldID {
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
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(pmdecisionlog.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(pmdecisionlog.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(pmdecisionlog.FieldTriggerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(pmdecisionlog.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(pmdecisionlog.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ActionsJSON(); ok {
		_spec.SetField(pmdecisionlog.FieldActionsJSON, field.TypeString, value)
	}
	if _u.mutation.ActionsJSONCleared() {
		_spec.ClearField(pmdecisionlog.FieldActionsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(pmdecisionlog.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(pmdecisionlog.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ParseFailed(); ok {
		_spec.SetField(pmdecisionlog.FieldParseFailed, field.TypeBool, value)
	}
	_node = &PMDecisionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pmdecisionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
