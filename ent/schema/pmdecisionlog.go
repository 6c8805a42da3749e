package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PMDecisionLog holds the schema definition for the PMDecisionLog entity:
// one decision round, kept for audit and resume.
type PMDecisionLog struct {
	ent.Schema
}

// Fields of the PMDecisionLog.
func (PMDecisionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("round").
			Comment("1-based decision counter within the run"),
		field.String("trigger_kind"),
		field.Text("reasoning").
			Optional(),
		field.Text("actions_json").
			Optional(),
		field.Text("raw_response").
			Optional().
			Comment("Unparsed model output, for post-mortems"),
		field.Bool("parse_failed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PMDecisionLog.
func (PMDecisionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("pm_decisions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PMDecisionLog.
func (PMDecisionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "round").
			Unique(),
	}
}
