package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one reader's pass through a passage: the answers
// they selected, and the score once submitted.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("reader_id").
			Comment("Reader who owns this attempt"),
		field.String("passage_id").
			NotEmpty().
			Comment("Passage this attempt is against"),
		field.String("topic").
			NotEmpty().
			Comment("Denormalized from the passage for resume queries"),
		field.String("difficulty").
			NotEmpty().
			Comment("Denormalized from the passage for resume queries"),
		field.JSON("answers", map[string]int{}).
			Optional().
			Comment("Selected option index keyed by question ID"),
		field.Int("score").
			Default(0).
			Comment("Correct answers at submission; 0 until completed"),
		field.Int("total").
			Default(0).
			Comment("Question count of the passage"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the attempt has been submitted"),
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("When the attempt was created"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the attempt was submitted"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reader_id", "topic", "difficulty"),
		index.Fields("reader_id", "completed"),
		index.Fields("passage_id"),
	}
}
