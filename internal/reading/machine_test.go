package reading

import (
	"errors"
	"testing"

	"github.com/readerline/readerline/internal/content"
)

func twoQuestionSession() *content.Session {
	return &content.Session{
		Title:   "T",
		Passage: "P",
		Questions: []content.Question{
			{ID: 1, Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "e1"},
			{ID: 2, Text: "Q2", Options: []string{"a", "b"}, CorrectIndex: 0, Explanation: "e2"},
		},
	}
}

func quickReadSession() *content.Session {
	return &content.Session{Title: "T", Passage: "P"}
}

func TestSelectAndOverwrite(t *testing.T) {
	m := NewMachine(twoQuestionSession())

	if err := m.SelectAnswer(1, 0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := m.SelectAnswer(1, 2); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	sel, ok := m.Answer(1)
	if !ok || sel != 2 {
		t.Errorf("answer(1) = %d,%v, want 2,true", sel, ok)
	}
	if m.AnsweredCount() != 1 {
		t.Errorf("answered = %d, want 1", m.AnsweredCount())
	}
}

func TestSelectRejectsUnknownQuestion(t *testing.T) {
	m := NewMachine(twoQuestionSession())
	err := m.SelectAnswer(99, 0)
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestSelectRejectsOutOfRangeOption(t *testing.T) {
	m := NewMachine(twoQuestionSession())
	if err := m.SelectAnswer(2, 2); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
	if err := m.SelectAnswer(2, -1); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}

func TestSubmitGatedOnAllAnswered(t *testing.T) {
	m := NewMachine(twoQuestionSession())

	if m.CanSubmit() {
		t.Fatal("should not be submittable with no answers")
	}
	if _, err := m.Submit(); !errors.Is(err, ErrUnanswered) {
		t.Fatalf("err = %v, want ErrUnanswered", err)
	}

	m.SelectAnswer(1, 2)
	if m.CanSubmit() {
		t.Fatal("should not be submittable with one of two answered")
	}

	m.SelectAnswer(2, 0)
	if !m.CanSubmit() {
		t.Fatal("should be submittable with all answered")
	}
}

func TestSubmitScoresOnce(t *testing.T) {
	m := NewMachine(twoQuestionSession())
	m.SelectAnswer(1, 2) // correct
	m.SelectAnswer(2, 1) // wrong

	score, err := m.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	if m.Phase() != PhaseSubmitted {
		t.Errorf("phase = %s, want submitted", m.Phase())
	}

	// Selections are frozen and the score is immutable.
	if err := m.SelectAnswer(2, 0); !errors.Is(err, ErrNotPresenting) {
		t.Fatalf("select after submit: %v, want ErrNotPresenting", err)
	}
	if _, err := m.Submit(); !errors.Is(err, ErrNotPresenting) {
		t.Fatalf("double submit: %v, want ErrNotPresenting", err)
	}
	if m.Score() != 1 {
		t.Errorf("score after resubmit attempt = %d, want 1", m.Score())
	}
}

func TestCorrectPerQuestionAfterSubmit(t *testing.T) {
	m := NewMachine(twoQuestionSession())
	m.SelectAnswer(1, 2)
	m.SelectAnswer(2, 1)

	if m.Correct(1) {
		t.Error("Correct should be false while presenting")
	}
	m.Submit()

	if !m.Correct(1) {
		t.Error("question 1 should be correct")
	}
	if m.Correct(2) {
		t.Error("question 2 should be wrong")
	}
}

func TestQuickReadSubmitsWithoutQuestions(t *testing.T) {
	m := NewMachine(quickReadSession())

	if !m.CanSubmit() {
		t.Fatal("session without questions should always be submittable")
	}
	score, err := m.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestResumeSeedsAnswers(t *testing.T) {
	m := Resume(twoQuestionSession(), map[int]int{1: 2, 99: 0})

	if m.AnsweredCount() != 1 {
		t.Fatalf("answered = %d, want 1 (unknown ids dropped)", m.AnsweredCount())
	}
	sel, ok := m.Answer(1)
	if !ok || sel != 2 {
		t.Errorf("answer(1) = %d,%v, want 2,true", sel, ok)
	}
	if m.Phase() != PhasePresenting {
		t.Errorf("phase = %s, want presenting", m.Phase())
	}

	// Resumed runs still gate and score normally.
	m.SelectAnswer(2, 0)
	score, err := m.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if score != 2 {
		t.Errorf("score = %d, want 2", score)
	}
}

func TestReviewIsReadOnly(t *testing.T) {
	m := NewReview(twoQuestionSession(), map[int]int{1: 2, 2: 1})

	if m.Phase() != PhaseReview {
		t.Fatalf("phase = %s, want review", m.Phase())
	}
	if m.Score() != 1 {
		t.Errorf("score = %d, want 1", m.Score())
	}
	if !m.Correct(1) || m.Correct(2) {
		t.Error("review correctness mismatch")
	}
	if err := m.SelectAnswer(1, 0); !errors.Is(err, ErrNotPresenting) {
		t.Fatalf("select in review: %v, want ErrNotPresenting", err)
	}
	if _, err := m.Submit(); !errors.Is(err, ErrNotPresenting) {
		t.Fatalf("submit in review: %v, want ErrNotPresenting", err)
	}
}

func TestReviewScoreDerivedFromAnswers(t *testing.T) {
	// Only the second answer is correct; the replayed score must come
	// from the answers, not from whatever the record claimed.
	m := NewReview(twoQuestionSession(), map[int]int{1: 0, 2: 0})
	if m.Score() != 1 {
		t.Errorf("score = %d, want 1", m.Score())
	}

	// Answers for questions no longer in the session do not count.
	m = NewReview(twoQuestionSession(), map[int]int{2: 0, 42: 0})
	if m.Score() != 1 {
		t.Errorf("score with stale answer = %d, want 1", m.Score())
	}
}

func TestScoreIgnoresUnansweredAndUnknown(t *testing.T) {
	s := twoQuestionSession()
	if got := Score(s, map[int]int{1: 2, 42: 1}); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
	if got := Score(s, nil); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}
