package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Passage is a generated reading session shared across attempts.
// Once written it is immutable; readers reference it by ID.
type Passage struct {
	ent.Schema
}

func (Passage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			NotEmpty().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("topic").
			NotEmpty().
			Comment("business, fiction, or quick-read"),
		field.String("difficulty").
			NotEmpty().
			Comment("standard or challenge"),
		field.String("title").
			NotEmpty().
			Comment("Passage title"),
		field.Text("body").
			NotEmpty().
			Comment("Full passage text, paragraphs separated by blank lines"),
		field.String("avg_time").
			Default("").
			Comment("Estimated reading time, e.g. '3-4 mins'"),
		field.Text("summary").
			Default("").
			Comment("One-paragraph summary of the passage"),
		field.JSON("questions", []map[string]any{}).
			Optional().
			Comment("Comprehension questions; empty for quick-read"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the passage was generated"),
	}
}

func (Passage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "difficulty"),
		index.Fields("created_at"),
	}
}
