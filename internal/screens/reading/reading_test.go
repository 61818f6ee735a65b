package reading

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/library"
	"github.com/readerline/readerline/internal/screen"
	"github.com/readerline/readerline/internal/store"
)

// fakeAttemptRepo records persistence calls.
type fakeAttemptRepo struct {
	mu        sync.Mutex
	updates   []map[int]int
	completed []int
	scores    []int
}

func (f *fakeAttemptRepo) Create(context.Context, *store.Attempt) error { return nil }

func (f *fakeAttemptRepo) ByID(context.Context, int) (*store.Attempt, error) { return nil, nil }

func (f *fakeAttemptRepo) LatestIncomplete(context.Context, int, string, string) (*store.Attempt, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) AttemptedPassageIDs(context.Context, int, string, string) (map[string]bool, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) UpdateAnswers(_ context.Context, _ int, answers map[int]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, answers)
	return nil
}

func (f *fakeAttemptRepo) Complete(_ context.Context, id int, _ map[int]int, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, id)
	f.scores = append(f.scores, score)
	return nil
}

func (f *fakeAttemptRepo) ByReader(context.Context, int, int) ([]*store.Attempt, error) {
	return nil, nil
}

func testSession() *content.Session {
	return &content.Session{
		Title:   "The Quarterly Pivot",
		Passage: "First paragraph of the passage.\n\nSecond paragraph of the passage.",
		AvgTime: "3-4 mins",
		Summary: "A team rethinks its roadmap.",
		Questions: []content.Question{
			{ID: 1, Text: "What changed?", Options: []string{"The roadmap", "The office"}, CorrectIndex: 0, Explanation: "The roadmap was reworked."},
			{ID: 2, Text: "Who decided?", Options: []string{"The intern", "The team"}, CorrectIndex: 1},
		},
	}
}

func quickReadSession() *content.Session {
	return &content.Session{
		Title:   "Morning Note",
		Passage: "A short read with nothing to answer.",
		AvgTime: "1-2 mins",
		Summary: "A brief note.",
	}
}

// newTestScreen builds a screen and delivers a ready session directly,
// bypassing acquisition.
func newTestScreen(t *testing.T, session *content.Session, attemptID int) (*ReadingScreen, *fakeAttemptRepo) {
	t.Helper()
	repo := &fakeAttemptRepo{}
	s := New(Deps{
		Reader:   &store.Reader{ID: 1, Name: "Alex"},
		Attempts: repo,
	}, content.TopicBusiness, content.DifficultyStandard)

	s.Update(sessionReadyMsg{acq: &library.Acquisition{
		Session:   session,
		AttemptID: attemptID,
	}})
	return s, repo
}

func press(s *ReadingScreen, key string) tea.Cmd {
	var msg tea.Msg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := s.Update(msg)
	return cmd
}

// runCmds executes a command tree so background persistence runs.
func runCmds(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmds(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestSelectionPersistsAnswers(t *testing.T) {
	s, repo := newTestScreen(t, testSession(), 7)

	cmd := press(s, "a")
	runCmds(cmd)

	if got, ok := s.machine.Answer(1); !ok || got != 0 {
		t.Errorf("machine answer = %d, %v; want 0, true", got, ok)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("expected 1 UpdateAnswers call, got %d", len(repo.updates))
	}
	if repo.updates[0][1] != 0 {
		t.Errorf("persisted answers = %v", repo.updates[0])
	}
}

func TestSubmitGatedUntilAllAnswered(t *testing.T) {
	s, repo := newTestScreen(t, testSession(), 7)

	runCmds(press(s, "a"))
	runCmds(press(s, "s"))
	if s.finished() {
		t.Fatal("submit should be ignored with unanswered questions")
	}

	runCmds(press(s, "right"))
	runCmds(press(s, "b"))
	msgs := runCmds(press(s, "s"))

	if !s.finished() {
		t.Fatal("expected submission after all questions answered")
	}
	if len(repo.completed) != 1 || repo.completed[0] != 7 {
		t.Errorf("Complete calls = %v, want [7]", repo.completed)
	}
	if repo.scores[0] != 2 {
		t.Errorf("persisted score = %d, want 2", repo.scores[0])
	}

	found := false
	for _, m := range msgs {
		if _, ok := m.(screen.RefreshProfileMsg); ok {
			found = true
		}
	}
	if !found {
		t.Error("expected RefreshProfileMsg after completion")
	}
}

func TestGatingLabelShowsProgress(t *testing.T) {
	s, _ := newTestScreen(t, testSession(), 7)

	view := s.View(120, 40)
	if !strings.Contains(view, "Answer all questions (0/2)") {
		t.Errorf("expected gating label in view:\n%s", view)
	}

	runCmds(press(s, "a"))
	view = s.View(120, 40)
	if !strings.Contains(view, "Answer all questions (1/2)") {
		t.Error("expected gating label to update after one answer")
	}
}

func TestResultsShowScoreAndExplanation(t *testing.T) {
	s, _ := newTestScreen(t, testSession(), 7)

	runCmds(press(s, "b")) // wrong
	runCmds(press(s, "right"))
	runCmds(press(s, "b")) // right
	runCmds(press(s, "left"))
	runCmds(press(s, "s"))

	view := s.View(120, 40)
	if !strings.Contains(view, "Score: 1/2") {
		t.Errorf("expected score line in view:\n%s", view)
	}
	if !strings.Contains(view, "The roadmap was reworked.") {
		t.Error("expected the explanation for the focused question")
	}
}

func TestAnswersFrozenAfterSubmit(t *testing.T) {
	s, repo := newTestScreen(t, testSession(), 7)

	runCmds(press(s, "a"))
	runCmds(press(s, "right"))
	runCmds(press(s, "b"))
	runCmds(press(s, "s"))

	updates := len(repo.updates)
	runCmds(press(s, "a"))
	runCmds(press(s, "b"))

	if len(repo.updates) != updates {
		t.Error("selections after submit should not persist")
	}
	if got, _ := s.machine.Answer(1); got != 0 {
		t.Errorf("answer changed after submit: %d", got)
	}
}

func TestQuickReadFinishesOnEnter(t *testing.T) {
	s, repo := newTestScreen(t, quickReadSession(), 9)

	runCmds(press(s, "enter"))

	if !s.finished() {
		t.Fatal("quick read should finish on enter")
	}
	if len(repo.completed) != 1 || repo.completed[0] != 9 {
		t.Errorf("Complete calls = %v, want [9]", repo.completed)
	}
	if repo.scores[0] != 0 {
		t.Errorf("quick read score = %d, want 0", repo.scores[0])
	}
}

func TestSummaryToggle(t *testing.T) {
	s, _ := newTestScreen(t, quickReadSession(), 9)
	runCmds(press(s, "enter"))

	view := s.View(100, 40)
	if strings.Contains(view, "A brief note.") {
		t.Fatal("summary should be hidden by default")
	}

	runCmds(press(s, "m"))
	view = s.View(100, 40)
	if !strings.Contains(view, "A brief note.") {
		t.Error("expected summary after pressing m")
	}
}

func TestSplitRatioClamped(t *testing.T) {
	s, _ := newTestScreen(t, testSession(), 7)

	for i := 0; i < 30; i++ {
		press(s, "[")
	}
	if s.splitRatio < minSplitRatio-1e-9 {
		t.Errorf("ratio below minimum: %f", s.splitRatio)
	}

	for i := 0; i < 30; i++ {
		press(s, "]")
	}
	if s.splitRatio > maxSplitRatio+1e-9 {
		t.Errorf("ratio above maximum: %f", s.splitRatio)
	}
}

func TestResumedAnswersSeedSelectors(t *testing.T) {
	repo := &fakeAttemptRepo{}
	s := New(Deps{Attempts: repo}, content.TopicBusiness, content.DifficultyStandard)
	s.Update(sessionReadyMsg{acq: &library.Acquisition{
		Session:        testSession(),
		AttemptID:      5,
		Resumed:        true,
		InitialAnswers: map[int]int{1: 1},
	}})

	if s.choices[0].ChosenIndex != 1 {
		t.Errorf("seeded choice = %d, want 1", s.choices[0].ChosenIndex)
	}
	if s.machine.AnsweredCount() != 1 {
		t.Errorf("answered = %d, want 1", s.machine.AnsweredCount())
	}
}

func TestReviewIsReadOnly(t *testing.T) {
	// Stored score is stale on purpose; the view must show the score
	// implied by the replayed answers.
	attempt := &store.Attempt{
		ID:         3,
		Topic:      string(content.TopicBusiness),
		Difficulty: string(content.DifficultyStandard),
		Answers:    map[int]int{1: 0, 2: 1},
		Score:      0,
		Completed:  true,
	}
	repo := &fakeAttemptRepo{}
	s := NewReview(Deps{Attempts: repo}, testSession(), attempt)

	if !s.finished() {
		t.Fatal("review should start finished")
	}

	runCmds(press(s, "a"))
	runCmds(press(s, "b"))
	if len(repo.updates) != 0 || len(repo.completed) != 0 {
		t.Error("review must not write to the store")
	}

	view := s.View(120, 40)
	if !strings.Contains(view, "Score: 2/2") {
		t.Errorf("expected recorded score in review view:\n%s", view)
	}
}

func TestAcquisitionErrorShown(t *testing.T) {
	s := New(Deps{}, content.TopicFiction, content.DifficultyChallenge)
	s.Update(sessionReadyMsg{err: context.DeadlineExceeded})

	view := s.View(100, 40)
	if !strings.Contains(view, "Could not start a session") {
		t.Error("expected error view")
	}
}
