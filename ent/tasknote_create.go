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
	"github.com/foremanhq/foreman/ent/tasknote"
)

// TaskNoteCreate is the builder for creating a TaskNote entity.
type TaskNoteCreate struct {
	config
	mutation *TaskNoteMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *TaskNoteCreate) SetRunID(v string) *TaskNoteCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_c *TaskNoteCreate) SetGraphTaskID(v string) *TaskNoteCreate {
	_c.mutation.SetGraphTaskID(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *TaskNoteCreate) SetAuthor(v string) *TaskNoteCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *TaskNoteCreate) SetNote(v string) *TaskNoteCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskNoteCreate) SetCreatedAt(v time.Time) *TaskNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskNoteCreate) SetNillableCreatedAt(v *time.Time) *TaskNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskNoteCreate) SetID(v string) *TaskNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the PipelineRun entity.
func (_c *TaskNoteCreate) SetRun(v *PipelineRun) *TaskNoteCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the TaskNoteMutation object of the builder.
func (_c *TaskNoteCreate) Mutation() *TaskNoteMutation {
	return _c.mutation
}

// Save creates the TaskNote in the database.
func (_c *TaskNoteCreate) Save(ctx context.Context) (*TaskNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskNoteCreate) SaveX(ctx context.Context) *TaskNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tasknote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskNoteCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TaskNote.run_id"`)}
	}
	if _, ok := _c.mutation.GraphTaskID(); !ok {
		return &ValidationError{Name: "graph_task_id", err: errors.New(`ent: missing required field "TaskNote.graph_task_id"`)}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "TaskNote.author"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "TaskNote.note"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskNote.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "TaskNote.run"`)}
	}
	return nil
}

func (_c *TaskNoteCreate) sqlSave(ctx context.Context) (*TaskNote, error) {
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
			return nil, fmt.Errorf("unexpected TaskNote.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskNoteCreate) createSpec() (*TaskNote, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tasknote.Table, sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GraphTaskID(); ok {
		_spec.SetField(tasknote.FieldGraphTaskID, field.TypeString, value)
		_node.GraphTaskID = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(tasknote.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(tasknote.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tasknote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tasknote.RunTable,
			Columns: []string{tasknote.RunColumn},
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

// TaskNoteCreateBulk is the builder for creating many TaskNote entities in bulk.
type TaskNoteCreateBulk struct {
	config
	err      error
	builders []*TaskNoteCreate
}

// Save creates the TaskNote entities in the database.
func (_c *TaskNoteCreateBulk) Save(ctx context.Context) ([]*TaskNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskNoteMutation)
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
func (_c *TaskNoteCreateBulk) SaveX(ctx context.Context) []*TaskNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
