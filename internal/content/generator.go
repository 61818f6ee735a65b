package content

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates the generative backend returned no text at
// all. Distinct from a malformed response, which surfaces as a parse or
// schema-validation error.
var ErrEmptyResponse = errors.New("empty response from generative backend")

// Generator produces reading sessions for a (topic, difficulty) pair.
type Generator interface {
	// Generate produces a validated Session. It is purely functional
	// given its inputs: no side effects beyond the outbound network
	// call, and no internal retry policy beyond transport-level
	// retries — the caller decides whether to try again.
	Generate(ctx context.Context, topic Topic, difficulty Difficulty) (*Session, error)
}

// Validator checks a generated session for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate checks the session against the profile it was generated
	// for and returns nil if it passes.
	Validate(s *Session, p Profile) *ValidationError
}

// ValidationError describes why a session failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
