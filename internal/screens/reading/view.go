package reading

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/readerline/readerline/internal/ui/components"
	"github.com/readerline/readerline/internal/ui/theme"
)

func (s *ReadingScreen) View(width, height int) string {
	if s.loading {
		return s.renderLoading(width, height)
	}
	if s.errMsg != "" {
		return s.renderError(width, height)
	}
	if s.machine == nil {
		return ""
	}

	if s.machine.Session().QuickRead() {
		return s.renderQuickRead(width, height)
	}
	return s.renderSplit(width, height)
}

func (s *ReadingScreen) renderLoading(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Preparing your passage...")
	hint := theme.Hint.Render(fmt.Sprintf("%s · %s", s.topic.Display(), s.difficulty.Display()))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg+"\n\n"+hint)
}

func (s *ReadingScreen) renderError(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Could not start a session")
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 70)).
		Render(s.errMsg)
	hint := theme.Hint.Render("Press any key to go back.")
	card := theme.Card.Render(title + "\n\n" + body + "\n\n" + hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderQuickRead uses the full width for the passage; there is no
// question pane.
func (s *ReadingScreen) renderQuickRead(width, height int) string {
	textWidth := min(width-8, 78)
	lines := s.passageLines(textWidth)

	var footer []string
	if s.finished() {
		footer = append(footer, theme.Correct.Render("✓ Finished"))
		if s.showSummary {
			footer = append(footer, "", s.renderSummary(textWidth))
		}
	} else {
		footer = append(footer, theme.Hint.Render("Press Enter when you are done reading."))
	}

	viewHeight := height - len(footer) - 4
	body := s.renderScrolled(lines, viewHeight, textWidth)

	content := body + "\n\n" + strings.Join(footer, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

// renderSplit lays out the passage pane and question pane side by side.
func (s *ReadingScreen) renderSplit(width, height int) string {
	gap := 3
	passageWidth := int(float64(width-gap) * s.splitRatio)
	questionWidth := width - gap - passageWidth
	if passageWidth < 10 {
		passageWidth = 10
	}
	if questionWidth < 10 {
		questionWidth = 10
	}

	left := s.renderPassagePane(passageWidth, height)
	right := s.renderQuestionPane(questionWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(passageWidth).Render(left),
		strings.Repeat(" ", gap),
		lipgloss.NewStyle().Width(questionWidth).Render(right),
	)
}

func (s *ReadingScreen) renderPassagePane(width, height int) string {
	textWidth := width - 4
	if textWidth < 1 {
		textWidth = 1
	}

	session := s.machine.Session()
	titleStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if s.focusQuestions {
		titleStyle = titleStyle.Foreground(theme.TextDim)
	}

	header := titleStyle.Render(session.Title)
	if session.AvgTime != "" {
		header += "  " + theme.Hint.Render(session.AvgTime)
	}

	lines := s.passageLines(textWidth)
	viewHeight := height - 4
	body := s.renderScrolled(lines, viewHeight, textWidth)

	return "  " + header + "\n\n" + body
}

func (s *ReadingScreen) renderQuestionPane(width, height int) string {
	if len(s.choices) == 0 {
		return ""
	}

	var sections []string

	nav := fmt.Sprintf("Question %d of %d", s.current+1, len(s.choices))
	navStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if !s.focusQuestions && !s.finished() {
		navStyle = navStyle.Foreground(theme.TextDim)
	}
	sections = append(sections, navStyle.Render(nav))
	sections = append(sections, "")

	sections = append(sections, s.choices[s.current].View())

	if s.finished() {
		session := s.machine.Session()
		q := session.Questions[s.current]
		if q.Explanation != "" {
			expl := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(min(width-4, 60)).
				Render(q.Explanation)
			sections = append(sections, theme.Hint.Render("Why:"))
			sections = append(sections, expl)
			sections = append(sections, "")
		}

		scoreLine := fmt.Sprintf("Score: %d/%d", s.machine.Score(), s.machine.QuestionCount())
		style := theme.Correct
		if s.machine.Score() < s.machine.QuestionCount() {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		sections = append(sections, style.Render(scoreLine))

		if s.showSummary {
			sections = append(sections, "")
			sections = append(sections, s.renderSummary(min(width-4, 60)))
		}
	} else {
		bar := components.NewProgressBar("Answered",
			float64(s.machine.AnsweredCount())/float64(s.machine.QuestionCount()),
			false, min(width-4, 40))
		sections = append(sections, bar.View())
		sections = append(sections, "")

		if s.machine.CanSubmit() {
			sections = append(sections, components.NewButton("Submit (s)", true, nil).View())
		} else {
			gate := fmt.Sprintf("Answer all questions (%d/%d)",
				s.machine.AnsweredCount(), s.machine.QuestionCount())
			sections = append(sections, theme.Hint.Render(gate))
		}
	}

	return strings.Join(sections, "\n")
}

// renderSummary renders the passage's context summary box.
func (s *ReadingScreen) renderSummary(width int) string {
	summary := s.machine.Session().Summary
	if summary == "" {
		summary = "No summary available for this passage."
	}
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Summary")
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(summary)
	return label + "\n" + body
}

// passageLines wraps the passage paragraphs to the given width, with a
// blank line between paragraphs.
func (s *ReadingScreen) passageLines(width int) []string {
	var lines []string
	for i, para := range s.machine.Session().Paragraphs() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, wrapText(para, width)...)
	}
	return lines
}

// renderScrolled renders a window of lines at the current scroll offset,
// clamping the offset so the last page stays full.
func (s *ReadingScreen) renderScrolled(lines []string, viewHeight, width int) string {
	if viewHeight < 1 {
		viewHeight = 1
	}

	maxScroll := len(lines) - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + viewHeight
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[s.scroll:end]

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("  " + strings.Join(window, "\n  "))

	if maxScroll > 0 {
		pct := int(float64(s.scroll) / float64(maxScroll) * 100)
		body += "\n\n  " + theme.Hint.Render(fmt.Sprintf("↑↓ scroll · %d%%", pct))
	}
	return body
}

// wrapText greedily wraps words to the given width.
func wrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}
