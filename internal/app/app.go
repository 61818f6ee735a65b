package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/readerline/readerline/internal/library"
	"github.com/readerline/readerline/internal/router"
	"github.com/readerline/readerline/internal/screen"
	"github.com/readerline/readerline/internal/screens/home"
	"github.com/readerline/readerline/internal/screens/welcome"
	"github.com/readerline/readerline/internal/store"
	"github.com/readerline/readerline/internal/ui/layout"
)

// Options holds the dependencies the TUI needs.
type Options struct {
	Attempts store.AttemptRepo
	Readers  store.ReaderRepo

	// Library runs the session acquisition protocol. Its generator may be
	// nil when no LLM provider is configured; acquiring then falls back
	// to stored passages only.
	Library *library.Service

	Logger *log.Logger
}

// profileLoadedMsg carries the header state after a profile refresh.
type profileLoadedMsg struct {
	name      string
	completed int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router

	readerName string
	completed  int
	width      int
	height     int
}

// newAppModel routes to the welcome screen on first run, otherwise home.
func newAppModel(opts Options) AppModel {
	reader, err := opts.Readers.First(context.Background())
	if err != nil && opts.Logger != nil {
		opts.Logger.Warn("failed to load reader profile", "err", err)
	}

	homeFactory := func(r *store.Reader) screen.Screen {
		return home.New(home.Deps{
			Reader:   r,
			Library:  opts.Library,
			Attempts: opts.Attempts,
			Logger:   opts.Logger,
		})
	}

	var initial screen.Screen
	var name string
	if reader == nil {
		initial = welcome.New(opts.Readers, homeFactory)
	} else {
		initial = homeFactory(reader)
		name = reader.Name
	}

	return AppModel{
		opts:       opts,
		router:     router.New(initial),
		readerName: name,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.refreshProfile()
}

// refreshProfile reloads the header's reader name and completed count.
func (m AppModel) refreshProfile() tea.Cmd {
	readers := m.opts.Readers
	attempts := m.opts.Attempts
	return func() tea.Msg {
		ctx := context.Background()
		reader, err := readers.First(ctx)
		if err != nil || reader == nil {
			return profileLoadedMsg{}
		}
		all, err := attempts.ByReader(ctx, reader.ID, 0)
		if err != nil {
			return profileLoadedMsg{name: reader.Name}
		}
		completed := 0
		for _, a := range all {
			if a.Completed {
				completed++
			}
		}
		return profileLoadedMsg{name: reader.Name, completed: completed}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileLoadedMsg:
		m.readerName = msg.name
		m.completed = msg.completed
		return m, nil

	case screen.RefreshProfileMsg:
		return m, m.refreshProfile()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.readerName, m.completed, m.width)

	var footerHints []layout.KeyHint
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinted.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
