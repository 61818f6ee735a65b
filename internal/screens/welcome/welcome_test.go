package welcome

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/readerline/readerline/internal/router"
	"github.com/readerline/readerline/internal/screen"
	"github.com/readerline/readerline/internal/store"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

// fakeReaderRepo records created profiles.
type fakeReaderRepo struct {
	created []string
}

func (f *fakeReaderRepo) First(context.Context) (*store.Reader, error) { return nil, nil }

func (f *fakeReaderRepo) Create(_ context.Context, name string) (*store.Reader, error) {
	f.created = append(f.created, name)
	return &store.Reader{ID: len(f.created), Name: name}, nil
}

func newTestWelcome() (*WelcomeScreen, *fakeReaderRepo, *int) {
	repo := &fakeReaderRepo{}
	callCount := 0
	factory := func(*store.Reader) screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(repo, factory), repo, &callCount
}

func typeName(w *WelcomeScreen, name string) {
	for _, r := range name {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterWithEmptyNameShowsError(t *testing.T) {
	w, repo, _ := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("empty name should not produce a command")
	}
	if w.errMsg == "" {
		t.Error("expected an error message for empty name")
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no profile created, got %d", len(repo.created))
	}
}

func TestEnterCreatesProfile(t *testing.T) {
	w, repo, _ := newTestWelcome()
	typeName(w, "Alex")

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from submit")
	}

	msg := cmd()
	created, ok := msg.(profileCreatedMsg)
	if !ok {
		t.Fatalf("expected profileCreatedMsg, got %T", msg)
	}
	if created.err != nil {
		t.Fatalf("create: %v", created.err)
	}
	if len(repo.created) != 1 || repo.created[0] != "Alex" {
		t.Errorf("created = %v, want [Alex]", repo.created)
	}
}

func TestProfileCreatedReplacesWithHome(t *testing.T) {
	w, _, callCount := newTestWelcome()

	_, cmd := w.Update(profileCreatedMsg{reader: &store.Reader{ID: 1, Name: "Alex"}})
	if cmd == nil {
		t.Fatal("expected a command after profile creation")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}

	// The batch should include a ReplaceScreenMsg.
	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if _, ok := msg.(router.ReplaceScreenMsg); ok {
			found = true
		}
	})
	if !found {
		t.Error("expected a ReplaceScreenMsg in the batch")
	}
}

func TestSubmitWhileSavingIgnored(t *testing.T) {
	w, repo, _ := newTestWelcome()
	typeName(w, "Alex")

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second submit while saving should be ignored")
	}
	if len(repo.created) != 0 {
		// Create only runs when the command is executed; no command ran yet.
		t.Errorf("expected no synchronous creation, got %d", len(repo.created))
	}
}

func TestViewShowsPrompt(t *testing.T) {
	w, _, _ := newTestWelcome()
	view := w.View(100, 30)
	if !strings.Contains(view, "What should we call you?") {
		t.Error("expected the name prompt in the view")
	}
}

// collectMsgs executes a command tree and passes each produced message
// to fn. Batches are expanded; nested commands are not re-executed.
func collectMsgs(cmd tea.Cmd, fn func(tea.Msg)) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			collectMsgs(c, fn)
		}
		return
	}
	fn(msg)
}
