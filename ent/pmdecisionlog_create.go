// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/ent/pmdecisionlog"
)

// PMDecisionLogCreate is the builder for creating a PMDecisionLog entity.
type PMDecisionLogCreate struct {
	config
	mutation *PMDecisionLogMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *PMDecisionLogCreate) SetRunID(v string) *PMDecisionLogCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *PMDecisionLogCreate) SetRound(v int) *PMDecisionLogCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetTriggerKind sets the "trigger_kind" field.
func (_c *PMDecisionLogCreate) SetTriggerKind(v string) *PMDecisionLogCreate {
	_c.mutation.SetTriggerKind(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *PMDecisionLogCreate) SetReasoning(v string) *PMDecisionLogCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *PMDecisionLogCreate) SetNillableReasoning(v *string) *PMDecisionLogCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetActionsJSON sets the "actions_json" field.
func (_c *PMDecisionLogCreate) SetActionsJSON(v string) *PMDecisionLogCreate {
	_c.mutation.SetActionsJSON(v)
	return _c
}

// SetNillableActionsJSON sets the "actions_json" field if the given value is not nil.
func (_c *PMDecisionLogCreate) SetNillableActionsJSON(v *string) *PMDecisionLogCreate {
	if v != nil {
		_c.SetActionsJSON(*v)
	}
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *PMDecisionLogCreate) SetRawResponse(v string) *PMDecisionLogCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *PMDecisionLogCreate) SetNillableRawResponse(v *string) *PMDecisionLogCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetParseFailed sets the "parse_failed" field.
func (_c *PMDecisionLogCreate) SetParseFailed(v bool) *PMDecisionLogCreate {
	_c.mutation.SetParseFailed(v)
	return _c
}

// SetNillableParseFailed sets the "parse_failed" field if the given value is not nil.
func (_c *PMDecisionLogCreate) SetNillableParseFailed(v *bool) *PMDecisionLogCreate {
	if v != nil {
		_c.SetParseFailed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PMDecisionLogCreate) SetCreatedAt(v time.Time) *PMDecisionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PMDecisionLogCreate) SetNillableCreatedAt(v *time.Time) *PMDecisionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PMDecisionLogCreate) SetID(v string) *PMDecisionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the PipelineRun entity.
func (_c *PMDecisionLogCreate) SetRun(v *PipelineRun) *PMDecisionLogCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the PMDecisionLogMutation object of the builder.
func (_c *PMDecisionLogCreate) Mutation() *PMDecisionLogMutation {
	return _c.mutation
}

// Save creates the PMDecisionLog in the database.
func (_c *PMDecisionLogCreate) Save(ctx context.Context) (*PMDecisionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PMDecisionLogCreate) SaveX(ctx context.Context) *PMDecisionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PMDecisionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PMDecisionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PMDecisionLogCreate) defaults() {
	if _, ok := _c.mutation.ParseFailed(); !ok {
		v := pmdecisionlog.DefaultParseFailed
		_c.mutation.SetParseFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pmdecisionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PMDecisionLogCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "PMDecisionLog.run_id"`)}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "PMDecisionLog.round"`)}
	}
	if _, ok := _c.mutation.TriggerKind(); !ok {
		return &ValidationError{Name: "trigger_kind", err: errors.New(`ent: missing required field "PMDecisionLog.trigger_kind"`)}
	}
	if _, ok := _c.mutation.ParseFailed(); !ok {
		return &ValidationError{Name: "parse_failed", err: errors.New(`ent: missing required field "PMDecisionLog.parse_failed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PMDecisionLog.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "PMDecisionLog.run"`)}
	}
	return nil
}

func (_c *PMDecisionLogCreate) sqlSave(ctx context.Context) (*PMDecisionLog, error) {
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
			return nil, fmt.Errorf("unexpected PMDecisionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PMDecisionLogCreate) createSpec() (*PMDecisionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &PMDecisionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pmdecisionlog.Table, sqlgraph.NewFieldSpec(pmdecisionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(pmdecisionlog.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.TriggerKind(); ok {
		_spec.SetField(pmdecisionlog.FieldTriggerKind, field.TypeString, value)
		_node.TriggerKind = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(pmdecisionlog.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.ActionsJSON(); ok {
		_spec.SetField(pmdecisionlog.FieldActionsJSON, field.TypeString, value)
		_node.ActionsJSON = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(pmdecisionlog.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = value
	}
	if value, ok := _c.mutation.ParseFailed(); ok {
		_spec.SetField(pmdecisionlog.FieldParseFailed, field.TypeBool, value)
		_node.ParseFailed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pmdecisionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pmdecisionlog.RunTable,
			Columns: []string{pmdecisionlog.RunColumn},
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

// PMDecisionLogCreateBulk is the builder for creating many PMDecisionLog entities in bulk.
type PMDecisionLogCreateBulk struct {
	config
	err      error
	builders []*PMDecisionLogCreate
}

// Save creates the PMDecisionLog entities in the database.
func (_c *PMDecisionLogCreateBulk) Save(ctx context.Context) ([]*PMDecisionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PMDecisionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PMDecisionLogMutation)
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
func (_c *PMDecisionLogCreateBulk) SaveX(ctx context.Context) []*PMDecisionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PMDecisionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PMDecisionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
