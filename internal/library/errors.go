package library

import (
	"errors"
	"fmt"
)

// ErrNoGenerator is returned when a fresh passage is needed but no
// content generator is configured.
var ErrNoGenerator = errors.New("no content generator configured; set an LLM API key")

// Step identifies which stage of the acquisition protocol failed.
type Step string

const (
	StepResume   Step = "resume"
	StepReuse    Step = "reuse"
	StepGenerate Step = "generate"
)

// AcquisitionError wraps a failure that prevented acquiring a session.
type AcquisitionError struct {
	Step Step
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire reading session (%s): %v", e.Step, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
