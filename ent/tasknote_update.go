// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/foremanhq/foreman/ent/predicate"
	"github.com/foremanhq/foreman/ent/tasknote"
)

// TaskNoteUpdate is the builder for updating TaskNote entities.
type TaskNoteUpdate struct {
	config
	hooks    []Hook
	mutation *TaskNoteMutation
}

// Where appends a list predicates to the TaskNoteUpdate builder.
func (_u *TaskNoteUpdate) Where(ps ...predicate.TaskNote) *TaskNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_u *TaskNoteUpdate) SetGraphTaskID(v string) *TaskNoteUpdate {
	_u.mutation.SetGraphTaskID(v)
	return _u
}

// SetNillableGraphTaskID sets the "graph_task_id" field if the given value is not nil.
func (_u *TaskNoteUpdate) SetNillableGraphTaskID(v *string) *TaskNoteUpdate {
	if v != nil {
		_u.SetGraphTaskID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *TaskNoteUpdate) SetAuthor(v string) *TaskNoteUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *TaskNoteUpdate) SetNillableAuthor(v *string) *TaskNoteUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *TaskNoteUpdate) SetNote(v string) *TaskNoteUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *TaskNoteUpdate) SetNillableNote(v *string) *TaskNoteUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the TaskNoteMutation object of the builder.
func (_u *TaskNoteUpdate) Mutation() *TaskNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskNoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskNoteUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskNote.run"`)
	}
	return nil
}

func (_u *TaskNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasknote.Table, tasknote.Columns, sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GraphTaskID(); ok {
		_spec.SetField(tasknote.FieldGraphTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(tasknote.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(tasknote.FieldNote, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasknote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskNoteUpdateOne is the builder for updating a single TaskNote entity.
type TaskNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskNoteMutation
}

// SetGraphTaskID sets the "graph_task_id" field.
func (_u *TaskNoteUpdateOne) SetGraphTaskID(v string) *TaskNoteUpdateOne {
	_u.mutation.SetGraphTaskID(v)
	return _u
}

// SetNillableGraphTaskID sets the "graph_task_id" field if the given value is not nil.
func (_u *TaskNoteUpdateOne) SetNillableGraphTaskID(v *string) *TaskNoteUpdateOne {
	if v != nil {
		_u.SetGraphTaskID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *TaskNoteUpdateOne) SetAuthor(v string) *TaskNoteUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *TaskNoteUpdateOne) SetNillableAuthor(v *string) *TaskNoteUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *TaskNoteUpdateOne) SetNote(v string) *TaskNoteUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *TaskNoteUpdateOne) SetNillableNote(v *string) *TaskNoteUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the TaskNoteMutation object of the builder.
func (_u *TaskNoteUpdateOne) Mutation() *TaskNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskNoteUpdate builder.
func (_u *TaskNoteUpdateOne) Where(ps ...predicate.TaskNote) *TaskNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskNoteUpdateOne) Select(field string, fields ...string) *TaskNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskNote entity.
func (_u *TaskNoteUpdateOne) Save(ctx context.Context) (*TaskNote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskNoteUpdateOne) SaveX(ctx context.Context) *TaskNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskNoteUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskNote.run"`)
	}
	return nil
}

func (_u *TaskNoteUpdateOne) sqlSave(ctx context.Context) (_node *TaskNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasknote.Table, tasknote.Columns, sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasknote.FieldID)
		for _, f := range fields {
			if !tasknote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasknote.FieldID {
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
		_spec.SetField(tasknote.FieldGraphTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(tasknote.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(tasknote.FieldNote, field.TypeString, value)
	}
	_node = &TaskNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasknote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
