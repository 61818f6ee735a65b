package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/library"
	"github.com/readerline/readerline/internal/router"
	"github.com/readerline/readerline/internal/screen"
	"github.com/readerline/readerline/internal/screens/reading"
	"github.com/readerline/readerline/internal/store"
	"github.com/readerline/readerline/internal/ui/layout"
	"github.com/readerline/readerline/internal/ui/theme"
)

const historyLimit = 50

// Deps holds the history screen's dependencies.
type Deps struct {
	Reader   *store.Reader
	Attempts store.AttemptRepo
	Library  *library.Service
}

type historyLoadedMsg struct {
	attempts []*store.Attempt
	err      error
}

type reviewReadyMsg struct {
	session *content.Session
	attempt *store.Attempt
	err     error
}

// HistoryScreen lists completed attempts and opens them for review.
type HistoryScreen struct {
	deps     Deps
	attempts []*store.Attempt
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(deps Deps) *HistoryScreen {
	return &HistoryScreen{deps: deps}
}

func (s *HistoryScreen) Init() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		if deps.Reader == nil {
			return historyLoadedMsg{}
		}
		all, err := deps.Attempts.ByReader(context.Background(), deps.Reader.ID, historyLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		completed := make([]*store.Attempt, 0, len(all))
		for _, a := range all {
			if a.Completed {
				completed = append(completed, a)
			}
		}
		return historyLoadedMsg{attempts: completed}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Review"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.attempts = msg.attempts
		}
		return s, nil

	case reviewReadyMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		if msg.session == nil {
			// The backing passage was removed; nothing to replay.
			s.errMsg = "This passage is no longer in the library."
			return s, nil
		}
		review := reading.NewReview(reading.Deps{
			Reader:   s.deps.Reader,
			Library:  s.deps.Library,
			Attempts: s.deps.Attempts,
		}, msg.session, msg.attempt)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: review} }

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.attempts) {
				s.errMsg = ""
				return s, s.openReview(s.attempts[s.selected])
			}
			return s, nil
		}
	}
	return s, nil
}

// openReview loads the attempt's passage and pushes the review screen.
func (s *HistoryScreen) openReview(attempt *store.Attempt) tea.Cmd {
	lib := s.deps.Library
	return func() tea.Msg {
		session, err := lib.SessionFor(context.Background(), attempt.PassageID)
		return reviewReadyMsg{session: session, attempt: attempt, err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" && len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing read yet. Pick a topic and start!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		when := a.StartedAt
		if a.CompletedAt != nil {
			when = *a.CompletedAt
		}
		dateStr := when.Format("Jan 02, 2006")

		scoreStr := "quick read"
		if a.Total > 0 {
			scoreStr = fmt.Sprintf("%d/%d", a.Score, a.Total)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-16s %-10s %s",
			prefix, dateStr,
			content.Topic(a.Topic).Display(),
			content.Difficulty(a.Difficulty).Display(),
			scoreStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press Enter to revisit a passage and its answers.")))

	return b.String()
}
