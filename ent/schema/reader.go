package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Reader is the local profile. A single row is created on first run;
// attempts reference it by ID.
type Reader struct {
	ent.Schema
}

func (Reader) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name chosen at first run"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the profile was created"),
	}
}
