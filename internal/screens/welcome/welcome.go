package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/readerline/readerline/internal/router"
	"github.com/readerline/readerline/internal/screen"
	"github.com/readerline/readerline/internal/store"
	"github.com/readerline/readerline/internal/ui/components"
	"github.com/readerline/readerline/internal/ui/layout"
	"github.com/readerline/readerline/internal/ui/theme"
)

const maxNameLength = 24

// profileCreatedMsg carries the outcome of saving the new profile.
type profileCreatedMsg struct {
	reader *store.Reader
	err    error
}

// WelcomeScreen asks for the reader's name on first run, then replaces
// itself with the home screen.
type WelcomeScreen struct {
	readers     store.ReaderRepo
	homeFactory func(*store.Reader) screen.Screen
	input       components.TextInput
	saving      bool
	errMsg      string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen
// produced by homeFactory once a profile exists.
func New(readers store.ReaderRepo, homeFactory func(*store.Reader) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		readers:     readers,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Your name...", false, maxNameLength),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start reading"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileCreatedMsg:
		w.saving = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		homeScreen := w.homeFactory(msg.reader)
		return w, tea.Batch(
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: homeScreen} },
			func() tea.Msg { return screen.RefreshProfileMsg{} },
		)

	case tea.KeyMsg:
		if w.saving {
			return w, nil
		}
		if msg.String() == "enter" {
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				w.errMsg = "Please enter a name."
				return w, nil
			}
			w.errMsg = ""
			w.saving = true
			return w, w.createProfile(name)
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) createProfile(name string) tea.Cmd {
	readers := w.readers
	return func() tea.Msg {
		reader, err := readers.Create(context.Background(), name)
		return profileCreatedMsg{reader: reader, err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Sharpen your reading, one passage at a time.")
	sections = append(sections, tagline)
	sections = append(sections, "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("What should we call you?")
	sections = append(sections, prompt)
	sections = append(sections, w.input.View())

	if w.saving {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Saving..."))
	} else if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
