package content

import "strings"

// Topic is a content category. Each topic drives the prompt style,
// length budget, and question count of generated passages.
type Topic string

const (
	TopicBusiness  Topic = "business"
	TopicFiction   Topic = "fiction"
	TopicQuickRead Topic = "quick-read"
)

// AllTopics returns every topic in display order.
func AllTopics() []Topic {
	return []Topic{TopicBusiness, TopicFiction, TopicQuickRead}
}

// Display returns the human-readable topic name.
func (t Topic) Display() string {
	switch t {
	case TopicBusiness:
		return "Business"
	case TopicFiction:
		return "Fiction & Drama"
	case TopicQuickRead:
		return "Quick Read"
	default:
		return string(t)
	}
}

// Valid reports whether t is a known topic.
func (t Topic) Valid() bool {
	switch t {
	case TopicBusiness, TopicFiction, TopicQuickRead:
		return true
	}
	return false
}

// Difficulty is the proficiency tier a passage is written for.
// It affects vocabulary and sentence complexity, not length or
// question count.
type Difficulty string

const (
	DifficultyStandard  Difficulty = "standard"
	DifficultyChallenge Difficulty = "challenge"
)

// AllDifficulties returns every difficulty in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyStandard, DifficultyChallenge}
}

// Display returns the human-readable difficulty name.
func (d Difficulty) Display() string {
	switch d {
	case DifficultyStandard:
		return "Standard"
	case DifficultyChallenge:
		return "Challenge"
	default:
		return string(d)
	}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == DifficultyStandard || d == DifficultyChallenge
}

// Question is a single multiple-choice comprehension question.
// Immutable once generated.
type Question struct {
	// ID identifies the question within its session. Reader answers are
	// keyed by this id, so it must be unique within a session.
	ID int

	// Text is the question prompt.
	Text string

	// Options are the answer choices, 2-5 of them, shown in order.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int

	// Explanation is shown after submission, next to the correct answer.
	Explanation string
}

// Session is a generated reading session: a passage plus its questions.
// Produced once by a Generator and never mutated afterwards.
type Session struct {
	Title string

	// Passage is the full reading text. Paragraphs are separated by a
	// blank line.
	Passage string

	// AvgTime is a human-readable reading-time label, e.g. "3-4 mins".
	AvgTime string

	// Summary is a short context summary of the passage.
	Summary string

	// Questions is empty for quick-read sessions.
	Questions []Question
}

// QuickRead reports whether this session has no questions and only
// needs a completion acknowledgment.
func (s *Session) QuickRead() bool {
	return len(s.Questions) == 0
}

// Paragraphs splits the passage on blank-line delimiters, trimming
// whitespace and dropping empty entries. Single newlines (hard-wrapped
// lines) stay inside their paragraph. Literal "\n" sequences that some
// models emit instead of real newlines are normalized first.
func (s *Session) Paragraphs() []string {
	text := strings.ReplaceAll(s.Passage, `\n`, "\n")
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
