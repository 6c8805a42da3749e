// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/agentmessage"
	"github.com/foremanhq/foreman/ent/predicate"
)

// AgentMessageUpdate is the builder for updating AgentMessage entities.
type AgentMessageUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMessageMutation
}

// Where appends a list predicates to the AgentMessageUpdate builder.
func (_u *AgentMessageUpdate) Where(ps ...predicate.AgentMessage) *AgentMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromAgent sets the "from_agent" field.
func (_u *AgentMessageUpdate) SetFromAgent(v string) *AgentMessageUpdate {
	_u.mutation.SetFromAgent(v)
	return _u
}

// SetNillableFromAgent sets the "from_agent" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableFromAgent(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetFromAgent(*v)
	}
	return _u
}

// SetToAgent sets the "to_agent" field.
func (_u *AgentMessageUpdate) SetToAgent(v string) *AgentMessageUpdate {
	_u.mutation.SetToAgent(v)
	return _u
}

// SetNillableToAgent sets the "to_agent" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableToAgent(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetToAgent(*v)
	}
	return _u
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_u *AgentMessageUpdate) SetGraphTaskID(v string) *AgentMessageUpdate {
	_u.mutation.SetGraphTaskID(v)
	return _u
}

// SetNillableGraphTaskID sets the "graph_task_id" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableGraphTaskID(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetGraphTaskID(*v)
	}
	return _u
}

// ClearGraphTaskID clears the value of the "graph_task_id" field.
func (_u *AgentMessageUpdate) ClearGraphTaskID() *AgentMessageUpdate {
	_u.mutation.ClearGraphTaskID()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *AgentMessageUpdate) SetMessageType(v string) *AgentMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableMessageType(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// ClearMessageType clears the value of the "message_type" field.
func (_u *AgentMessageUpdate) ClearMessageType() *AgentMessageUpdate {
	_u.mutation.ClearMessageType()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AgentMessageUpdate) SetMessage(v string) *AgentMessageUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableMessage(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_u *AgentMessageUpdate) Mutation() *AgentMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentMessageUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentMessage.run"`)
	}
	return nil
}

func (_u *AgentMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentmessage.Table, agentmessage.Columns, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromAgent(); ok {
		_spec.SetField(agentmessage.FieldFromAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToAgent(); ok {
		_spec.SetField(agentmessage.FieldToAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraphTaskID(); ok {
		_spec.SetField(agentmessage.FieldGraphTaskID, field.TypeString, value)
	}
	if _u.mutation.GraphTaskIDCleared() {
		_spec.ClearField(agentmessage.FieldGraphTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(agentmessage.FieldMessageType, field.TypeString, value)
	}
	if _u.mutation.MessageTypeCleared() {
		_spec.ClearField(agentmessage.FieldMessageType, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(agentmessage.FieldMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentMessageUpdateOne is the builder for updating a single AgentMessage entity.
type AgentMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMessageMutation
}

// SetFromAgent sets the "from_agent" field.
func (_u *AgentMessageUpdateOne) SetFromAgent(v string) *AgentMessageUpdateOne {
	_u.mutation.SetFromAgent(v)
	return _u
}

// SetNillableFromAgent sets the "from_agent" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableFromAgent(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetFromAgent(*v)
	}
	return _u
}

// SetToAgent sets the "to_agent" field.
func (_u *AgentMessageUpdateOne) SetToAgent(v string) *AgentMessageUpdateOne {
	_u.mutation.SetToAgent(v)
	return _u
}

// SetNillableToAgent sets the "to_agent" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableToAgent(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetToAgent(*v)
	}
	return _u
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_u *AgentMessageUpdateOne) SetGraphTaskID(v string) *AgentMessageUpdateOne {
	_u.mutation.SetGraphTaskID(v)
	return _u
}

// SetNillableGraphTaskID sets the "graph_task_id" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableGraphTaskID(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetGraphTaskID(*v)
	}
	return _u
}

// ClearGraphTaskID clears the value of the "graph_task_id" field.
func (_u *AgentMessageUpdateOne) ClearGraphTaskID() *AgentMessageUpdateOne {
	_u.mutation.ClearGraphTaskID()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *AgentMessageUpdateOne) SetMessageType(v string) *AgentMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableMessageType(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// ClearMessageType clears the value of the "message_type" field.
func (_u *AgentMessageUpdateOne) ClearMessageType() *AgentMessageUpdateOne {
	_u.mutation.ClearMessageType()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AgentMessageUpdateOne) SetMessage(v string) *AgentMessageUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableMessage(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_u *AgentMessageUpdateOne) Mutation() *AgentMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentMessageUpdate builder.
func (_u *AgentMessageUpdateOne) Where(ps ...predicate.AgentMessage) *AgentMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentMessageUpdateOne) Select(field string, fields ...string) *AgentMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentMessage entity.
func (_u *AgentMessageUpdateOne) Save(ctx context.Context) (*AgentMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMessageUpdateOne) SaveX(ctx context.Context) *AgentMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentMessageUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentMessage.run"`)
	}
	return nil
}

func (_u *AgentMessageUpdateOne) sqlSave(ctx context.Context) (_node *AgentMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentmessage.Table, agentmessage.Columns, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentmessage.FieldID)
		for _, f := range fields {
			if !agentmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentmessage.FieldID {
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
	if value, ok := _u.mutation.FromAgent(); ok {
		_spec.SetField(agentmessage.FieldFromAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToAgent(); ok {
		_spec.SetField(agentmessage.FieldToAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraphTaskID(); ok {
		_spec.SetField(agentmessage.FieldGraphTaskID, field.TypeString, value)
	}
	if _u.mutation.GraphTaskIDCleared() {
		_spec.ClearField(agentmessage.FieldGraphTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(agentmessage.FieldMessageType, field.TypeString, value)
	}
	if _u.mutation.MessageTypeCleared() {
		_spec.ClearField(agentmessage.FieldMessageType, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(agentmessage.FieldMessage, field.TypeString, value)
	}
	_node = &AgentMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
