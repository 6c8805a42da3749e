package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventLog holds the schema definition for the EventLog entity: the
// append-only audit trail of loop and runner events.
type EventLog struct {
	ent.Schema
}

// Fields of the EventLog.
func (EventLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("project_id"),
		field.String("event_type").
			Comment("task_started, task_completed, provider_fallback, ..."),
		field.String("agent").
			Optional(),
		field.Text("content").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EventLog.
func (EventLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("event_logs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EventLog.
func (EventLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "event_type"),
		index.Fields("created_at"),
	}
}
