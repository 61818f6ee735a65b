// Package reading implements the split-pane reading screen: passage on
// the left, questions on the right, with submit gating and a review
// mode for completed attempts.
package reading

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/library"
	readlogic "github.com/readerline/readerline/internal/reading"
	"github.com/readerline/readerline/internal/router"
	"github.com/readerline/readerline/internal/screen"
	"github.com/readerline/readerline/internal/store"
	"github.com/readerline/readerline/internal/ui/components"
	"github.com/readerline/readerline/internal/ui/layout"
)

const (
	defaultSplitRatio = 0.55
	minSplitRatio     = 0.2
	maxSplitRatio     = 0.85
	splitStep         = 0.05
)

// Deps holds the reading screen's dependencies.
type Deps struct {
	Reader   *store.Reader
	Library  *library.Service
	Attempts store.AttemptRepo
	Logger   *log.Logger
}

// ReadingScreen presents one session from acquisition through scoring.
type ReadingScreen struct {
	deps       Deps
	topic      content.Topic
	difficulty content.Difficulty

	machine   *readlogic.Machine
	attemptID int
	choices   []components.MultiChoice

	current        int // focused question index
	focusQuestions bool
	scroll         int
	splitRatio     float64
	showSummary    bool
	review         bool
	loading        bool
	errMsg         string
}

var _ screen.Screen = (*ReadingScreen)(nil)
var _ screen.KeyHintProvider = (*ReadingScreen)(nil)

// New creates a screen that acquires a session for the topic and
// difficulty when initialized.
func New(deps Deps, topic content.Topic, difficulty content.Difficulty) *ReadingScreen {
	return &ReadingScreen{
		deps:       deps,
		topic:      topic,
		difficulty: difficulty,
		splitRatio: defaultSplitRatio,
		loading:    true,
	}
}

// NewReview creates a read-only screen replaying a completed attempt.
func NewReview(deps Deps, session *content.Session, attempt *store.Attempt) *ReadingScreen {
	s := &ReadingScreen{
		deps:       deps,
		topic:      content.Topic(attempt.Topic),
		difficulty: content.Difficulty(attempt.Difficulty),
		splitRatio: defaultSplitRatio,
		review:     true,
	}
	s.install(readlogic.NewReview(session, attempt.Answers), attempt.ID)
	return s
}

// install wires a machine into the screen and builds the per-question
// selectors from its current answers.
func (s *ReadingScreen) install(m *readlogic.Machine, attemptID int) {
	s.machine = m
	s.attemptID = attemptID
	s.current = 0
	s.scroll = 0
	s.showSummary = false

	qs := m.Session().Questions
	s.choices = make([]components.MultiChoice, len(qs))
	for i, q := range qs {
		mc := components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
		if sel, ok := m.Answer(q.ID); ok {
			mc.ChosenIndex = sel
			mc.Cursor = sel
		}
		mc.Results = m.Phase() != readlogic.PhasePresenting
		s.choices[i] = mc
	}
	s.focusQuestions = len(qs) > 0
}

func (s *ReadingScreen) Init() tea.Cmd {
	if s.review {
		return nil
	}
	return s.acquire()
}

// acquire runs the acquisition protocol off the UI goroutine.
func (s *ReadingScreen) acquire() tea.Cmd {
	deps := s.deps
	topic, difficulty := s.topic, s.difficulty
	return func() tea.Msg {
		readerID := 0
		if deps.Reader != nil {
			readerID = deps.Reader.ID
		}
		acq, err := deps.Library.Acquire(context.Background(), readerID, topic, difficulty)
		return sessionReadyMsg{acq: acq, err: err}
	}
}

func (s *ReadingScreen) Title() string {
	if s.review {
		return s.topic.Display() + " · Review"
	}
	return s.topic.Display()
}

func (s *ReadingScreen) KeyHints() []layout.KeyHint {
	if s.loading || s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.machine.Session().QuickRead() {
		if s.finished() {
			return []layout.KeyHint{
				{Key: "M", Description: "Summary"},
				{Key: "R", Description: "Read another"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Finish"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.finished() {
		hints := []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "M", Description: "Summary"},
		}
		if !s.review {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Read another"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Pane"},
		{Key: "←→", Description: "Question"},
		{Key: "[ ]", Description: "Resize"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// finished reports whether the run has been scored or is in review.
func (s *ReadingScreen) finished() bool {
	return s.machine != nil && s.machine.Phase() != readlogic.PhasePresenting
}

func (s *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		machine := readlogic.Resume(msg.acq.Session, msg.acq.InitialAnswers)
		s.install(machine, msg.acq.AttemptID)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ReadingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.loading || s.machine == nil {
		return s, nil
	}

	session := s.machine.Session()

	// Keys available in every state.
	switch key {
	case "[":
		s.splitRatio = clamp(s.splitRatio-splitStep, minSplitRatio, maxSplitRatio)
		return s, nil
	case "]":
		s.splitRatio = clamp(s.splitRatio+splitStep, minSplitRatio, maxSplitRatio)
		return s, nil
	}

	if s.finished() {
		switch key {
		case "m":
			s.showSummary = !s.showSummary
			return s, nil
		case "r":
			if !s.review {
				fresh := New(s.deps, s.topic, s.difficulty)
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: fresh} }
			}
		case "left", "h":
			s.prevQuestion()
			return s, nil
		case "right", "l":
			s.nextQuestion()
			return s, nil
		case "up", "k":
			s.scrollUp()
			return s, nil
		case "down", "j":
			s.scrollDown()
			return s, nil
		}
		return s, nil
	}

	// Presenting phase.
	if session.QuickRead() {
		switch key {
		case "up", "k":
			s.scrollUp()
			return s, nil
		case "down", "j":
			s.scrollDown()
			return s, nil
		case "enter":
			return s.submit()
		}
		return s, nil
	}

	switch key {
	case "tab":
		s.focusQuestions = !s.focusQuestions
		return s, nil
	case "left":
		s.prevQuestion()
		return s, nil
	case "right":
		s.nextQuestion()
		return s, nil
	case "s":
		if s.machine.CanSubmit() {
			return s.submit()
		}
		return s, nil
	}

	if !s.focusQuestions {
		switch key {
		case "up", "k":
			s.scrollUp()
			return s, nil
		case "down", "j":
			s.scrollDown()
			return s, nil
		}
		return s, nil
	}

	// Question pane: forward to the focused selector, then sync any new
	// choice into the machine.
	if s.current < len(s.choices) {
		before := s.choices[s.current].ChosenIndex
		var cmd tea.Cmd
		s.choices[s.current], cmd = s.choices[s.current].Update(msg)
		after := s.choices[s.current].ChosenIndex
		if after != before {
			return s, tea.Batch(cmd, s.recordAnswer(session.Questions[s.current].ID, after))
		}
		return s, cmd
	}
	return s, nil
}

// recordAnswer stores the selection in the machine and persists the
// attempt's answers in the background.
func (s *ReadingScreen) recordAnswer(questionID, optionIndex int) tea.Cmd {
	if err := s.machine.SelectAnswer(questionID, optionIndex); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("rejected answer selection", "question", questionID, "err", err)
		}
		return nil
	}

	deps := s.deps
	attemptID := s.attemptID
	answers := s.machine.Answers()
	return func() tea.Msg {
		if err := deps.Attempts.UpdateAnswers(context.Background(), attemptID, answers); err != nil {
			if deps.Logger != nil {
				deps.Logger.Warn("failed to save answers", "attempt", attemptID, "err", err)
			}
		}
		return nil
	}
}

// submit scores the run and persists completion.
func (s *ReadingScreen) submit() (screen.Screen, tea.Cmd) {
	score, err := s.machine.Submit()
	if err != nil {
		return s, nil
	}

	for i := range s.choices {
		s.choices[i].Results = true
	}
	s.current = 0

	deps := s.deps
	attemptID := s.attemptID
	answers := s.machine.Answers()
	persist := func() tea.Msg {
		if err := deps.Attempts.Complete(context.Background(), attemptID, answers, score); err != nil {
			if deps.Logger != nil {
				deps.Logger.Warn("failed to complete attempt", "attempt", attemptID, "err", err)
			}
		}
		return nil
	}

	return s, tea.Batch(persist, func() tea.Msg { return screen.RefreshProfileMsg{} })
}

func (s *ReadingScreen) prevQuestion() {
	if s.current > 0 {
		s.current--
	}
}

func (s *ReadingScreen) nextQuestion() {
	if s.current < len(s.choices)-1 {
		s.current++
	}
}

func (s *ReadingScreen) scrollUp() {
	if s.scroll > 0 {
		s.scroll--
	}
}

func (s *ReadingScreen) scrollDown() {
	s.scroll++
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
