// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/eventlog"
	"github.com/foremanhq/foreman/ent/predicate"
)

// EventLogUpdate is the builder for updating EventLog entities.
type EventLogUpdate struct {
	config
	hooks    []Hook
	mutation *EventLogMutation
}

// Where appends a list predicates to the EventLogUpdate builder.
func (_u *EventLogUpdate) Where(ps ...predicate.EventLog) *EventLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *EventLogUpdate) SetProjectID(v string) *EventLogUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EventLogUpdate) SetNillableProjectID(v *string) *EventLogUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventLogUpdate) SetEventType(v string) *EventLogUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventLogUpdate) SetNillableEventType(v *string) *EventLogUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *EventLogUpdate) SetAgent(v string) *EventLogUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *EventLogUpdate) SetNillableAgent(v *string) *EventLogUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *EventLogUpdate) ClearAgent() *EventLogUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// SetContent sets the "content" field.
func (_u *EventLogUpdate) SetContent(v string) *EventLogUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EventLogUpdate) SetNillableContent(v *string) *EventLogUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *EventLogUpdate) ClearContent() *EventLogUpdate {
	_u.mutation.ClearContent()
	return _u
}

// Mutation returns the EventLogMutation object of the builder.
func (_u *EventLogUpdate) Mutation() *EventLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventLogUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventLog.run"`)
	}
	return nil
}

func (_u *EventLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventlog.Table, eventlog.Columns, sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(eventlog.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventlog.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(eventlog.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(eventlog.FieldAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(eventlog.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(eventlog.FieldContent, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventLogUpdateOne is the builder for updating a single EventLog entity.
type EventLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventLogMutation
}

// SetProjectID sets the "project_id" field.
func (_u *EventLogUpdateOne) SetProjectID(v string) *EventLogUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EventLogUpdateOne) SetNillableProjectID(v *string) *EventLogUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventLogUpdateOne) SetEventType(v string) *EventLogUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventLogUpdateOne) SetNillableEventType(v *string) *EventLogUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *EventLogUpdateOne) SetAgent(v string) *EventLogUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *EventLogUpdateOne) SetNillableAgent(v *string) *EventLogUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *EventLogUpdateOne) ClearAgent() *EventLogUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// SetContent sets the "content" field.
func (_u *EventLogUpdateOne) SetContent(v string) *EventLogUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EventLogUpdateOne) SetNillableContent(v *string) *EventLogUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *EventLogUpdateOne) ClearContent() *EventLogUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// Mutation returns the EventLogMutation object of the builder.
func (_u *EventLogUpdateOne) Mutation() *EventLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventLogUpdate builder.
func (_u *EventLogUpdateOne) Where(ps ...predicate.EventLog) *EventLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventLogUpdateOne) Select(field string, fields ...string) *EventLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventLog entity.
func (_u *EventLogUpdateOne) Save(ctx context.Context) (*EventLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventLogUpdateOne) SaveX(ctx context.Context) *EventLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventLogUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventLog.run"`)
	}
	return nil
}

func (_u *EventLogUpdateOne) sqlSave(ctx context.Context) (_node *EventLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventlog.Table, eventlog.Columns, sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventlog.FieldID)
		for _, f := range fields {
			if !eventlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventlog.FieldID {
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
		_spec.SetField(eventlog.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventlog.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(eventlog.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(eventlog.FieldAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(eventlog.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(eventlog.FieldContent, field.TypeString)
	}
	_node = &EventLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
