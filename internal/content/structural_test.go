package content

import (
	"strings"
	"testing"
)

func validSession() *Session {
	return &Session{
		Title:   "A Title",
		Passage: "Some passage text.",
		AvgTime: "3-4 mins",
		Summary: "A summary.",
		Questions: []Question{
			{ID: 1, Text: "Q1?", Options: []string{"a", "b", "c"}, CorrectIndex: 0, Explanation: "Because."},
			{ID: 2, Text: "Q2?", Options: []string{"a", "b"}, CorrectIndex: 1, Explanation: "Because."},
			{ID: 3, Text: "Q3?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3, Explanation: "Because."},
		},
	}
}

func threeQuestionProfile(t *testing.T) Profile {
	t.Helper()
	p, err := ProfileFor(TopicBusiness)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestStructuralValid(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validSession(), threeQuestionProfile(t)); err != nil {
		t.Errorf("valid session rejected: %v", err)
	}
}

func TestStructuralFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Session)
		wantMsg string
	}{
		{"empty title", func(s *Session) { s.Title = "" }, "title is empty"},
		{"empty passage", func(s *Session) { s.Passage = "" }, "passage is empty"},
		{"empty summary", func(s *Session) { s.Summary = "" }, "summary is empty"},
		{"wrong question count", func(s *Session) { s.Questions = s.Questions[:2] }, "expected 3 questions"},
		{"empty question text", func(s *Session) { s.Questions[1].Text = "" }, "empty text"},
		{"empty explanation", func(s *Session) { s.Questions[0].Explanation = "" }, "empty explanation"},
		{"too few options", func(s *Session) { s.Questions[0].Options = []string{"a"} }, "want 2-5"},
		{"too many options", func(s *Session) {
			s.Questions[0].Options = []string{"a", "b", "c", "d", "e", "f"}
		}, "want 2-5"},
		{"negative answer index", func(s *Session) { s.Questions[2].CorrectIndex = -1 }, "out of range"},
		{"answer index past options", func(s *Session) { s.Questions[1].CorrectIndex = 2 }, "out of range"},
		{"duplicate ids", func(s *Session) { s.Questions[2].ID = 1 }, "duplicate question id"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(s)
			err := v.Validate(s, threeQuestionProfile(t))
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message = %q, want substring %q", err.Message, tt.wantMsg)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestStructuralQuickRead(t *testing.T) {
	p, err := ProfileFor(TopicQuickRead)
	if err != nil {
		t.Fatal(err)
	}
	s := &Session{
		Title:   "A Quick One",
		Passage: "Short text.",
		AvgTime: "1-2 mins",
		Summary: "A note.",
	}
	v := &StructuralValidator{}
	if verr := v.Validate(s, p); verr != nil {
		t.Errorf("quick read rejected: %v", verr)
	}
}
