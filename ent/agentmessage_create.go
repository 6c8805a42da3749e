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
	"github.com/foremanhq/foreman/ent/pipelinerun"
)

// AgentMessageCreate is the builder for creating a AgentMessage entity.
type AgentMessageCreate struct {
	config
	mutation *AgentMessageMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentMessageCreate) SetRunID(v string) *AgentMessageCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *AgentMessageCreate) SetFromAgent(v string) *AgentMessageCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetToAgent sets the "to_agent" field.
func (_c *AgentMessageCreate) SetToAgent(v string) *AgentMessageCreate {
	_c.mutation.SetToAgent(v)
	return _c
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_c *AgentMessageCreate) SetGraphTaskID(v string) *AgentMessageCreate {
	_c.mutation.SetGraphTaskID(v)
	return _c
}

// SetNillableGraphTaskID sets the "graph_task_id" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableGraphTaskID(v *string) *AgentMessageCreate {
	if v != nil {
		_c.SetGraphTaskID(*v)
	}
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *AgentMessageCreate) SetMessageType(v string) *AgentMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableMessageType(v *string) *AgentMessageCreate {
	if v != nil {
		_c.SetMessageType(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *AgentMessageCreate) SetMessage(v string) *AgentMessageCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentMessageCreate) SetCreatedAt(v time.Time) *AgentMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableCreatedAt(v *time.Time) *AgentMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentMessageCreate) SetID(v string) *AgentMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the PipelineRun entity.
func (_c *AgentMessageCreate) SetRun(v *PipelineRun) *AgentMessageCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_c *AgentMessageCreate) Mutation() *AgentMessageMutation {
	return _c.mutation
}

// Save creates the AgentMessage in the database.
func (_c *AgentMessageCreate) Save(ctx context.Context) (*AgentMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentMessageCreate) SaveX(ctx context.Context) *AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentMessageCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentMessage.run_id"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "AgentMessage.from_agent"`)}
	}
	if _, ok := _c.mutation.ToAgent(); !ok {
		return &ValidationError{Name: "to_agent", err: errors.New(`ent: missing required field "AgentMessage.to_agent"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "AgentMessage.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentMessage.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentMessage.run"`)}
	}
	return nil
}

func (_c *AgentMessageCreate) sqlSave(ctx context.Context) (*AgentMessage, error) {
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
			return nil, fmt.Errorf("unexpected AgentMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentMessageCreate) createSpec() (*AgentMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentmessage.Table, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(agentmessage.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.ToAgent(); ok {
		_spec.SetField(agentmessage.FieldToAgent, field.TypeString, value)
		_node.ToAgent = value
	}
	if value, ok := _c.mutation.GraphTaskID(); ok {
		_spec.SetField(agentmessage.FieldGraphTaskID, field.TypeString, value)
		_node.GraphTaskID = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(agentmessage.FieldMessageType, field.TypeString, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(agentmessage.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentmessage.RunTable,
			Columns: []string{agentmessage.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentMessageCreateBulk is the builder for creating many AgentMessage entities in bulk.
type AgentMessageCreateBulk struct {
	config
	err      error
	builders []*AgentMessageCreate
}

// Save creates the AgentMessage entities in the database.
func (_c *AgentMessageCreateBulk) Save(ctx context.Context) ([]*AgentMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMessageMutation)
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
func (_c *AgentMessageCreateBulk) SaveX(ctx context.Context) []*AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
