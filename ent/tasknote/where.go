// Code generated by ent, DO NOT EDIT.

package tasknote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/foremanhq/foreman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldRunID, v))
}

// GraphTaskID applies equality check predicate on the "graph_task_id" field. It's identical to GraphTaskIDEQ.
func GraphTaskID(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldGraphTaskID, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldAuthor, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContainsFold(FieldRunID, v))
}

// GraphTaskIDEQ applies the EQ predicate on the "graph_task_id" field.
func GraphTaskIDEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldGraphTaskID, v))
}

// GraphTaskIDNEQ applies the NEQ predicate on the "graph_task_id" field.
func GraphTaskIDNEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNEQ(FieldGraphTaskID, v))
}

// GraphTaskIDIn applies the In predicate on the "graph_task_id" field.
func GraphTaskIDIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldIn(FieldGraphTaskID, vs...))
}

// GraphTaskIDNotIn applies the NotIn predicate on the "graph_task_id" field.
func GraphTaskIDNotIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNotIn(FieldGraphTaskID, vs...))
}

// GraphTaskIDGT applies the GT predicate on the "graph_task_id" field.
func GraphTaskIDGT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGT(FieldGraphTaskID, v))
}

// GraphTaskIDGTE applies the GTE predicate on the "graph_task_id" field.
func GraphTaskIDGTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGTE(FieldGraphTaskID, v))
}

// GraphTaskIDLT applies the LT predicate on the "graph_task_id" field.
func GraphTaskIDLT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLT(FieldGraphTaskID, v))
}

// GraphTaskIDLTE applies the LTE predicate on the "graph_task_id" field.
func GraphTaskIDLTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLTE(FieldGraphTaskID, v))
}

// GraphTaskIDContains applies the Contains predicate on the "graph_task_id" field.
func GraphTaskIDContains(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContains(FieldGraphTaskID, v))
}

// GraphTaskIDHasPrefix applies the HasPrefix predicate on the "graph_task_id" field.
func GraphTaskIDHasPrefix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasPrefix(FieldGraphTaskID, v))
}

// GraphTaskIDHasSuffix applies the HasSuffix predicate on the "graph_task_id" field.
func GraphTaskIDHasSuffix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasSuffix(FieldGraphTaskID, v))
}

// GraphTaskIDEqualFold applies the EqualFold predicate on the "graph_task_id" field.
func GraphTaskIDEqualFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEqualFold(FieldGraphTaskID, v))
}

// GraphTaskIDContainsFold applies the ContainsFold predicate on the "graph_task_id" field.
func GraphTaskIDContainsFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContainsFold(FieldGraphTaskID, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContainsFold(FieldAuthor, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldContainsFold(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskNote {
	return predicate.TaskNote(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.TaskNote {
	return predicate.TaskNote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.PipelineRun) predicate.TaskNote {
	return predicate.TaskNote(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskNote) predicate.TaskNote {
	return predicate.TaskNote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskNote) predicate.TaskNote {
	return predicate.TaskNote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskNote) predicate.TaskNote {
	return predicate.TaskNote(sql.NotPredicates(p))
}
