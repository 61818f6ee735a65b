package store

import (
	"context"
	"time"
)

// Question is a single comprehension question as persisted with its passage.
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Passage is a generated reading session shared across attempts.
type Passage struct {
	ID         string
	Topic      string
	Difficulty string
	Title      string
	Body       string
	AvgTime    string
	Summary    string
	Questions  []Question
	CreatedAt  time.Time
}

// Attempt is one reader's pass through a passage.
type Attempt struct {
	ID          int
	ReaderID    int
	PassageID   string
	Topic       string
	Difficulty  string
	Answers     map[int]int // question ID -> selected option index
	Score       int
	Total       int
	Completed   bool
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Reader is the local profile.
type Reader struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

// PassageRepo manages the shared passage library.
type PassageRepo interface {
	// Save stores a new passage, assigning its ID and CreatedAt.
	Save(ctx context.Context, p *Passage) error

	// ByID returns the passage with the given ID, or nil if it doesn't exist.
	ByID(ctx context.Context, id string) (*Passage, error)

	// ByTopic returns all passages for a topic and difficulty,
	// oldest first.
	ByTopic(ctx context.Context, topic, difficulty string) ([]*Passage, error)
}

// AttemptRepo manages reading attempts.
type AttemptRepo interface {
	// Create stores a new attempt, assigning its ID and StartedAt.
	Create(ctx context.Context, a *Attempt) error

	// ByID returns the attempt with the given ID, or nil if it doesn't exist.
	ByID(ctx context.Context, id int) (*Attempt, error)

	// LatestIncomplete returns the reader's most recent unfinished attempt
	// for a topic and difficulty, or nil if none exists.
	LatestIncomplete(ctx context.Context, readerID int, topic, difficulty string) (*Attempt, error)

	// AttemptedPassageIDs returns the set of passage IDs the reader has
	// any attempt against (complete or not) for a topic and difficulty.
	AttemptedPassageIDs(ctx context.Context, readerID int, topic, difficulty string) (map[string]bool, error)

	// UpdateAnswers persists the current answer selections of an
	// in-progress attempt.
	UpdateAnswers(ctx context.Context, id int, answers map[int]int) error

	// Complete marks an attempt submitted with its final answers and score.
	Complete(ctx context.Context, id int, answers map[int]int, score int) error

	// ByReader returns the reader's attempts, newest first.
	// limit of 0 means no limit.
	ByReader(ctx context.Context, readerID int, limit int) ([]*Attempt, error)
}

// ReaderRepo manages the local profile.
type ReaderRepo interface {
	// First returns the profile, or nil if none has been created yet.
	First(ctx context.Context) (*Reader, error)

	// Create stores a new profile with the given name.
	Create(ctx context.Context, name string) (*Reader, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is a recorded LLM request event.
type LLMRequest struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// ModelUsage aggregates token consumption per model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// PurposeUsage aggregates token consumption per request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to the LLM request log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Recent returns the most recent requests, newest first.
	Recent(ctx context.Context, limit int) ([]*LLMRequest, error)

	// Get returns the request with the given ID, or nil if it doesn't exist.
	Get(ctx context.Context, id int) (*LLMRequest, error)

	// UsageByModel aggregates request counts and token totals per model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)

	// UsageByPurpose aggregates request counts, token totals, and mean
	// latency per purpose label.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}
