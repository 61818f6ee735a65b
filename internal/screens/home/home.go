package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/library"
	"github.com/readerline/readerline/internal/router"
	"github.com/readerline/readerline/internal/screen"
	"github.com/readerline/readerline/internal/screens/history"
	"github.com/readerline/readerline/internal/screens/reading"
	"github.com/readerline/readerline/internal/store"
	"github.com/readerline/readerline/internal/ui/components"
	"github.com/readerline/readerline/internal/ui/layout"
	"github.com/readerline/readerline/internal/ui/theme"
)

// Deps holds the home screen's dependencies.
type Deps struct {
	Reader   *store.Reader
	Library  *library.Service
	Attempts store.AttemptRepo
	Logger   *log.Logger
}

// statsLoadedMsg carries the per-topic completed counts.
type statsLoadedMsg struct {
	counts map[content.Topic]int
}

// HomeScreen is the topic picker and entry point of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	difficulty content.Difficulty
	counts     map[content.Topic]int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:       deps,
		difficulty: content.DifficultyStandard,
		counts:     make(map[content.Topic]int),
	}

	items := make([]components.MenuItem, 0, len(content.AllTopics())+2)
	for _, topic := range content.AllTopics() {
		topic := topic
		items = append(items, components.MenuItem{
			Label: topic.Display(),
			Action: func() tea.Cmd {
				return h.startReading(topic)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "History",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(history.Deps{
					Reader:   deps.Reader,
					Attempts: deps.Attempts,
					Library:  deps.Library,
				})}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startReading(topic content.Topic) tea.Cmd {
	deps := h.deps
	difficulty := h.difficulty
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: reading.New(reading.Deps{
			Reader:   deps.Reader,
			Library:  deps.Library,
			Attempts: deps.Attempts,
			Logger:   deps.Logger,
		}, topic, difficulty)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// loadStats counts completed attempts per topic for the progress line.
func (h *HomeScreen) loadStats() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		counts := make(map[content.Topic]int)
		if deps.Reader == nil {
			return statsLoadedMsg{counts: counts}
		}
		attempts, err := deps.Attempts.ByReader(context.Background(), deps.Reader.ID, 0)
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Warn("failed to load attempt stats", "err", err)
			}
			return statsLoadedMsg{counts: counts}
		}
		for _, a := range attempts {
			if a.Completed {
				counts[content.Topic(a.Topic)]++
			}
		}
		return statsLoadedMsg{counts: counts}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "D", Description: "Difficulty"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.counts = msg.counts
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "d" || msg.String() == "tab" {
			if h.difficulty == content.DifficultyStandard {
				h.difficulty = content.DifficultyChallenge
			} else {
				h.difficulty = content.DifficultyStandard
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	greeting := "Welcome back"
	if h.deps.Reader != nil {
		greeting = fmt.Sprintf("Welcome back, %s", h.deps.Reader.Name)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(greeting))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Pick a topic to read."))
	sections = append(sections, "")

	sections = append(sections, h.renderMenu())
	sections = append(sections, "")

	diffLabel := fmt.Sprintf("Difficulty: %s  (press d to switch)", h.difficulty.Display())
	sections = append(sections, theme.Hint.Render(diffLabel))

	content := strings.Join(sections, "\n")
	card := theme.Card.Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderMenu renders the topic menu with per-topic completed counts.
func (h *HomeScreen) renderMenu() string {
	var b strings.Builder
	topics := content.AllTopics()

	for i, item := range h.menu.Items {
		label := item.Label
		if i < len(topics) {
			if n := h.counts[topics[i]]; n > 0 {
				label = fmt.Sprintf("%s  %s", label,
					lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("(%d read)", n)))
			}
		}

		if i == h.menu.Selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
