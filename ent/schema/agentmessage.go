package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentMessage holds the schema definition for the AgentMessage entity:
// one routed inter-agent envelope.
type AgentMessage struct {
	ent.Schema
}

// Fields of the AgentMessage.
func (AgentMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("from_agent"),
		field.String("to_agent").
			Comment("Recipient agent name, or 'pm'"),
		field.String("graph_task_id").
			Optional().
			Comment("Task the sender was executing"),
		field.String("message_type").
			Optional().
			Comment("question, flag, suggestion, handoff, ..."),
		field.Text("message"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentMessage.
func (AgentMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("agent_messages").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentMessage.
func (AgentMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "to_agent"),
	}
}
