package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity: one
// execution attempt of one task against one provider/model.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_run_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("graph_task_id"),
		field.String("agent"),
		field.String("role").
			Optional(),
		field.String("provider"),
		field.String("model"),
		field.Int("attempt").
			Comment("1-based attempt index within the task execution"),
		field.Bool("success").
			Default(false),
		field.Text("input").
			Optional().
			Comment("Prompt, truncated at write time"),
		field.Text("output").
			Optional().
			Comment("Output, truncated at write time"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Comment("transient, permanent, or unknown"),
		field.Int("duration_ms").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("agent_runs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "graph_task_id"),
		index.Fields("provider"),
	}
}
