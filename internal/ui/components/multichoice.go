package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/readerline/readerline/internal/ui/theme"
)

// optionLabels letter the choices A through E.
var optionLabels = []string{"A", "B", "C", "D", "E"}

// MultiChoice is a multiple-choice selector with a persistent answer.
// The cursor moves independently of the recorded choice; Enter records
// the option under the cursor and may be pressed again to change it.
// In results mode the correct and chosen options are highlighted.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Cursor       int
	ChosenIndex  int // -1 until an option is chosen
	Results      bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Chosen reports whether an option has been recorded.
func (m MultiChoice) Chosen() bool {
	return m.ChosenIndex >= 0
}

// IsCorrect reports whether the recorded choice is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.ChosenIndex == m.CorrectIndex
}

// Choose records the option at the given index. Out-of-range indices
// and calls in results mode are ignored.
func (m *MultiChoice) Choose(i int) {
	if m.Results || i < 0 || i >= len(m.Options) {
		return
	}
	m.ChosenIndex = i
	m.Cursor = i
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and choice recording.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Results {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", " ":
		m.Choose(m.Cursor)
	default:
		// Letter shortcuts jump straight to an option.
		for i := range m.Options {
			if i < len(optionLabels) && kmsg.String() == labelKey(i) {
				m.Choose(i)
				break
			}
		}
	}

	return m, nil
}

func labelKey(i int) string {
	return string(rune('a' + i))
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == m.Cursor && !m.Results {
			prefix = "▸ "
		}

		marker := " "
		if i == m.ChosenIndex {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case m.Results && i == m.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Results && i == m.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Results:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == m.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
