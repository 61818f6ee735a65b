package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/readerline/readerline/internal/library"
	"github.com/readerline/readerline/internal/router"
	"github.com/readerline/readerline/internal/store"
)

type fakePassageRepo struct {
	passages map[string]*store.Passage
}

func (f *fakePassageRepo) Save(context.Context, *store.Passage) error { return nil }

func (f *fakePassageRepo) ByID(_ context.Context, id string) (*store.Passage, error) {
	return f.passages[id], nil
}

func (f *fakePassageRepo) ByTopic(context.Context, string, string) ([]*store.Passage, error) {
	return nil, nil
}

type fakeAttemptRepo struct {
	attempts []*store.Attempt
}

func (f *fakeAttemptRepo) Create(context.Context, *store.Attempt) error      { return nil }
func (f *fakeAttemptRepo) ByID(context.Context, int) (*store.Attempt, error) { return nil, nil }

func (f *fakeAttemptRepo) LatestIncomplete(context.Context, int, string, string) (*store.Attempt, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) AttemptedPassageIDs(context.Context, int, string, string) (map[string]bool, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) UpdateAnswers(context.Context, int, map[int]int) error { return nil }
func (f *fakeAttemptRepo) Complete(context.Context, int, map[int]int, int) error { return nil }

func (f *fakeAttemptRepo) ByReader(context.Context, int, int) ([]*store.Attempt, error) {
	return f.attempts, nil
}

func newTestHistory(attempts []*store.Attempt, passages map[string]*store.Passage) *HistoryScreen {
	if passages == nil {
		passages = make(map[string]*store.Passage)
	}
	attemptRepo := &fakeAttemptRepo{attempts: attempts}
	lib := library.New(&fakePassageRepo{passages: passages}, attemptRepo, nil, nil)

	s := New(Deps{
		Reader:   &store.Reader{ID: 1, Name: "Alex"},
		Attempts: attemptRepo,
		Library:  lib,
	})
	s.Update(s.Init()())
	return s
}

func completedAttempt(id int, passageID string, score, total int) *store.Attempt {
	now := time.Now()
	return &store.Attempt{
		ID:          id,
		ReaderID:    1,
		PassageID:   passageID,
		Topic:       "business",
		Difficulty:  "standard",
		Score:       score,
		Total:       total,
		Completed:   true,
		StartedAt:   now,
		CompletedAt: &now,
	}
}

func TestOnlyCompletedAttemptsListed(t *testing.T) {
	attempts := []*store.Attempt{
		completedAttempt(1, "p1", 2, 3),
		{ID: 2, ReaderID: 1, PassageID: "p2", Topic: "fiction", Difficulty: "standard"},
	}
	s := newTestHistory(attempts, nil)

	if len(s.attempts) != 1 {
		t.Fatalf("listed attempts = %d, want 1", len(s.attempts))
	}
	if s.attempts[0].ID != 1 {
		t.Errorf("listed attempt ID = %d, want 1", s.attempts[0].ID)
	}
}

func TestViewShowsScoreAndQuickRead(t *testing.T) {
	attempts := []*store.Attempt{
		completedAttempt(1, "p1", 2, 3),
		completedAttempt(2, "p2", 0, 0),
	}
	s := newTestHistory(attempts, nil)

	view := s.View(100, 30)
	if !strings.Contains(view, "2/3") {
		t.Error("expected scored attempt line")
	}
	if !strings.Contains(view, "quick read") {
		t.Error("expected quick read label for zero-question attempt")
	}
}

func TestEmptyHistoryMessage(t *testing.T) {
	s := newTestHistory(nil, nil)
	view := s.View(100, 30)
	if !strings.Contains(view, "Nothing read yet") {
		t.Error("expected empty-state message")
	}
}

func TestEnterOpensReview(t *testing.T) {
	passages := map[string]*store.Passage{
		"p1": {
			ID:    "p1",
			Topic: "business", Difficulty: "standard",
			Title: "The Quarterly Pivot",
			Body:  "Some text.",
			Questions: []store.Question{
				{ID: 1, Text: "Q?", Options: []string{"A", "B"}, CorrectIndex: 0},
			},
		},
	}
	s := newTestHistory([]*store.Attempt{completedAttempt(1, "p1", 1, 1)}, passages)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}

	msg := cmd()
	ready, ok := msg.(reviewReadyMsg)
	if !ok {
		t.Fatalf("expected reviewReadyMsg, got %T", msg)
	}
	if ready.session == nil || ready.session.Title != "The Quarterly Pivot" {
		t.Fatalf("unexpected session: %+v", ready.session)
	}

	_, cmd = s.Update(ready)
	if cmd == nil {
		t.Fatal("expected a push command after review loads")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg for the review screen")
	}
}

func TestMissingPassageShowsError(t *testing.T) {
	s := newTestHistory([]*store.Attempt{completedAttempt(1, "gone", 1, 2)}, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd()

	_, cmd = s.Update(msg)
	if cmd != nil {
		t.Fatal("missing passage should not push a screen")
	}
	if !strings.Contains(s.View(100, 30), "no longer in the library") {
		t.Error("expected missing-passage message")
	}
}
