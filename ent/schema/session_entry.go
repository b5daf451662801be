package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEntry is one persisted session key. The client stores exactly two:
// the learner name and the current course snapshot.
type SessionEntry struct {
	ent.Schema
}

func (SessionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Session key, e.g. username or current_course"),
		field.Text("value").
			Comment("Raw string for username, JSON for the course snapshot"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (SessionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
