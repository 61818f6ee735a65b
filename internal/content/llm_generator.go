package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/readerline/readerline/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// sessionOutput is the raw LLM response before validation.
type sessionOutput struct {
	Title     string           `json:"title"`
	Passage   string           `json:"passage"`
	AvgTime   string           `json:"avgTime"`
	Summary   string           `json:"summary"`
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID          int      `json:"id"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	CorrectIdx  int      `json:"correctAnswerIndex"`
	Explanation string   `json:"explanation"`
}

// Generate produces a single reading session for the given pair.
func (g *LLMGenerator) Generate(ctx context.Context, topic Topic, difficulty Difficulty) (*Session, error) {
	if !topic.Valid() {
		return nil, fmt.Errorf("content: unknown topic %q", topic)
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("content: unknown difficulty %q", difficulty)
	}
	profile, err := ProfileFor(topic)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "passage-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, difficulty, profile)},
		},
		Schema:      SessionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	if len(bytes.TrimSpace(resp.Content)) == 0 {
		return nil, ErrEmptyResponse
	}

	var raw sessionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse reading session: %w", err)
	}

	s := &Session{
		Title:   raw.Title,
		Passage: raw.Passage,
		AvgTime: raw.AvgTime,
		Summary: raw.Summary,
		// Absent questions means a quick read, not an error.
		Questions: make([]Question, 0, len(raw.Questions)),
	}
	for _, q := range raw.Questions {
		s.Questions = append(s.Questions, Question{
			ID:           q.ID,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIdx,
			Explanation:  q.Explanation,
		})
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(s, profile); verr != nil {
			return nil, verr
		}
	}

	return s, nil
}
