// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Passage is the predicate function for passage builders.
type Passage func(*sql.Selector)

// Reader is the predicate function for reader builders.
type Reader func(*sql.Selector)
