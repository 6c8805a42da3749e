package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity.
// One row per worker invocation; created by the front end, mutated only
// by the worker via checkpoint writes.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Comment("Project identifier (live lookup, no snapshot)"),
		field.Text("request").
			Comment("User-visible request the run fulfils"),
		field.Enum("status").
			Values("running", "awaiting_plan", "completed", "failed", "aborted").
			Default("running"),
		field.Text("graph_json").
			Comment("Serialized task graph, rewritten at each checkpoint"),
		field.Int("decision_count").
			Default(0),
		field.Float("running_cost").
			Default(0).
			Comment("Accumulated cost in USD across all attempts"),
		field.Int("current_step").
			Optional().
			Nillable(),
		field.Text("steps_json").
			Optional().
			Comment("Completed step summaries"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("task_notes", TaskNote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_runs", AgentRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_messages", AgentMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("event_logs", EventLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pm_decisions", PMDecisionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("project_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat"),
	}
}
