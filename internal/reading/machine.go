// Package reading holds the answer-scoring state machine for a single
// pass through a passage. The machine is pure state; persistence is the
// caller's concern.
package reading

import (
	"errors"
	"fmt"

	"github.com/readerline/readerline/internal/content"
)

// Phase is the lifecycle stage of a reading run.
type Phase int

const (
	// PhasePresenting accepts answer selections.
	PhasePresenting Phase = iota
	// PhaseSubmitted has a final score; selections are frozen.
	PhaseSubmitted
	// PhaseReview replays a previously completed run.
	PhaseReview
)

func (p Phase) String() string {
	switch p {
	case PhasePresenting:
		return "presenting"
	case PhaseSubmitted:
		return "submitted"
	case PhaseReview:
		return "review"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	// ErrNotPresenting is returned when a selection is made after submission.
	ErrNotPresenting = errors.New("answers are frozen after submission")
	// ErrUnknownQuestion is returned for question IDs not in the session.
	ErrUnknownQuestion = errors.New("unknown question id")
	// ErrInvalidOption is returned for out-of-range option indices.
	ErrInvalidOption = errors.New("option index out of range")
	// ErrUnanswered is returned when submitting with unanswered questions.
	ErrUnanswered = errors.New("all questions must be answered before submitting")
)

// Machine tracks answers and scoring for one session.
type Machine struct {
	session *content.Session
	byID    map[int]content.Question
	phase   Phase
	answers map[int]int
	score   int
}

// NewMachine starts a fresh run over the session.
func NewMachine(s *content.Session) *Machine {
	return newMachine(s, nil, PhasePresenting)
}

// Resume starts a run pre-seeded with previously selected answers.
// Selections for unknown question IDs are dropped.
func Resume(s *content.Session, answers map[int]int) *Machine {
	return newMachine(s, answers, PhasePresenting)
}

// NewReview replays a completed run with its recorded answers. The
// score is recomputed from the answers, so a record whose stored score
// drifted from its answers still displays consistently.
func NewReview(s *content.Session, answers map[int]int) *Machine {
	m := newMachine(s, answers, PhaseReview)
	m.score = Score(s, m.answers)
	return m
}

func newMachine(s *content.Session, answers map[int]int, phase Phase) *Machine {
	byID := make(map[int]content.Question, len(s.Questions))
	for _, q := range s.Questions {
		byID[q.ID] = q
	}

	kept := make(map[int]int, len(answers))
	for qid, sel := range answers {
		if _, ok := byID[qid]; ok {
			kept[qid] = sel
		}
	}

	return &Machine{
		session: s,
		byID:    byID,
		phase:   phase,
		answers: kept,
	}
}

// Session returns the session under review.
func (m *Machine) Session() *content.Session {
	return m.session
}

// Phase returns the current lifecycle stage.
func (m *Machine) Phase() Phase {
	return m.phase
}

// SelectAnswer records the option choice for a question. Selecting again
// overwrites the previous choice. Only valid while presenting.
func (m *Machine) SelectAnswer(questionID, optionIndex int) error {
	if m.phase != PhasePresenting {
		return ErrNotPresenting
	}
	q, ok := m.byID[questionID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: question %d option %d", ErrInvalidOption, questionID, optionIndex)
	}
	m.answers[questionID] = optionIndex
	return nil
}

// Answer returns the current selection for a question.
func (m *Machine) Answer(questionID int) (int, bool) {
	sel, ok := m.answers[questionID]
	return sel, ok
}

// Answers returns a copy of the current selections keyed by question ID.
func (m *Machine) Answers() map[int]int {
	out := make(map[int]int, len(m.answers))
	for qid, sel := range m.answers {
		out[qid] = sel
	}
	return out
}

// AnsweredCount returns how many questions have a selection.
func (m *Machine) AnsweredCount() int {
	return len(m.answers)
}

// QuestionCount returns the number of questions in the session.
func (m *Machine) QuestionCount() int {
	return len(m.session.Questions)
}

// CanSubmit reports whether every question has a selection.
// Sessions without questions are always submittable.
func (m *Machine) CanSubmit() bool {
	return m.phase == PhasePresenting && len(m.answers) == len(m.session.Questions)
}

// Submit freezes the selections and computes the score. The score is
// computed exactly once; subsequent calls return ErrNotPresenting.
func (m *Machine) Submit() (int, error) {
	if m.phase != PhasePresenting {
		return 0, ErrNotPresenting
	}
	if !m.CanSubmit() {
		return 0, fmt.Errorf("%w: %d/%d answered",
			ErrUnanswered, len(m.answers), len(m.session.Questions))
	}
	m.score = Score(m.session, m.answers)
	m.phase = PhaseSubmitted
	return m.score, nil
}

// Score returns the final score. Zero until submitted.
func (m *Machine) Score() int {
	return m.score
}

// Correct reports whether the recorded selection for a question matches
// the correct option. False while still presenting.
func (m *Machine) Correct(questionID int) bool {
	if m.phase == PhasePresenting {
		return false
	}
	q, ok := m.byID[questionID]
	if !ok {
		return false
	}
	sel, ok := m.answers[questionID]
	return ok && sel == q.CorrectIndex
}

// Score counts the selections matching each question's correct option.
func Score(s *content.Session, answers map[int]int) int {
	score := 0
	for _, q := range s.Questions {
		if sel, ok := answers[q.ID]; ok && sel == q.CorrectIndex {
			score++
		}
	}
	return score
}
