package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity: the
// long-lived workspace pipeline runs execute against.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("workspace_dir").
			Optional().
			Comment("Working directory agents execute in"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Per-project provider/model overrides"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
