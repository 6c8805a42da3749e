package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: the persisted
// mirror of one graph node, rewritten as the loop transitions it.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("graph_task_id").
			Comment("Stable in-graph identifier, conventionally t<N>"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("agent"),
		field.String("role").
			Optional(),
		field.Enum("status").
			Values("pending", "ready", "running", "blocked", "done", "failed", "skipped", "cancelled").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.JSON("depends_on", []string{}).
			Optional(),
		field.Text("output").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Float("cost_usd").
			Default(0),
		field.Int("decision_round").
			Default(0).
			Comment("PM decision that added this task (0 = initial plan)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("tasks").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "graph_task_id").
			Unique(),
		index.Fields("status"),
	}
}
