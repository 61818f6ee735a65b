package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/readerline/readerline/internal/llm"
)

func validSessionJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "The Turnaround at Meridian Logistics",
		"passage": "Meridian Logistics faced collapsing margins.\n\nThe new COO cut routes and renegotiated contracts.",
		"avgTime": "3-4 mins",
		"summary": "A logistics firm recovers after an operational overhaul.",
		"questions": [
			{"id": 1, "text": "What problem did Meridian face?", "options": ["Collapsing margins", "A strike", "A merger"], "correctAnswerIndex": 0, "explanation": "The opening sentence names collapsing margins."},
			{"id": 2, "text": "Who led the overhaul?", "options": ["The CEO", "The COO"], "correctAnswerIndex": 1, "explanation": "The passage credits the new COO."},
			{"id": 3, "text": "What was renegotiated?", "options": ["Leases", "Contracts", "Salaries"], "correctAnswerIndex": 1, "explanation": "Contracts were renegotiated."}
		]
	}`)
}

func quickReadJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Why Octopuses Have Three Hearts",
		"passage": "Two hearts pump blood through the gills, while a third serves the rest of the body.",
		"avgTime": "1-2 mins",
		"summary": "A short look at octopus circulation.",
		"questions": []
	}`)
}

func TestGenerateBusinessSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSessionJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), TopicBusiness, DifficultyStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Title != "The Turnaround at Meridian Logistics" {
		t.Errorf("unexpected title: %q", s.Title)
	}
	if len(s.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(s.Questions))
	}
	if s.Questions[1].CorrectIndex != 1 {
		t.Errorf("question 2 correct index = %d, want 1", s.Questions[1].CorrectIndex)
	}
	if s.QuickRead() {
		t.Error("session with questions must not be a quick read")
	}
}

func TestGenerateQuickRead(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quickReadJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), TopicQuickRead, DifficultyStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.QuickRead() {
		t.Error("expected a quick read session")
	}
	if s.Questions == nil {
		t.Error("questions must be an empty slice, not nil")
	}
}

func TestGenerateSendsProfileConstraints(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSessionJSON()})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), TopicBusiness, DifficultyChallenge); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("expected a response schema on the request")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "STRICT LENGTH CONSTRAINT: 250-300 words.") {
		t.Errorf("missing length constraint in user message:\n%s", user)
	}
	if !strings.Contains(user, "GRE") {
		t.Error("missing challenge register in user message")
	}
	if !strings.Contains(user, "EXACTLY 3 multiple-choice questions") {
		t.Error("missing question count in user message")
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  ")})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), TopicBusiness, DifficultyStandard)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerateMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": `)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), TopicBusiness, DifficultyStandard)
	if err == nil || !strings.Contains(err.Error(), "parse reading session") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestGenerateValidationFailure(t *testing.T) {
	// Business expects 3 questions; the quick-read payload has none.
	mock := llm.NewMockProvider(llm.MockResponse{Content: quickReadJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), TopicBusiness, DifficultyStandard)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("unexpected validator: %q", verr.Validator)
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), TopicBusiness, DifficultyStandard)
	if err == nil || !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestGenerateRejectsUnknownInputs(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	if _, err := gen.Generate(context.Background(), Topic("poetry"), DifficultyStandard); err == nil {
		t.Error("expected error for unknown topic")
	}
	if _, err := gen.Generate(context.Background(), TopicBusiness, Difficulty("expert")); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
