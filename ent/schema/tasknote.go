package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskNote holds the schema definition for the TaskNote entity: free-form
// annotations attached to a graph task (PM answers, rejection notes).
type TaskNote struct {
	ent.Schema
}

// Fields of the TaskNote.
func (TaskNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("note_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("graph_task_id"),
		field.String("author").
			Comment("pm, user, or an agent name"),
		field.Text("note"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskNote.
func (TaskNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("task_notes").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskNote.
func (TaskNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "graph_task_id"),
	}
}
