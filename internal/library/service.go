// Package library mediates between the passage store and the content
// generator. Acquiring a session tries, in order: resuming the reader's
// unfinished attempt, reusing a stored passage the reader has not seen,
// and generating a fresh passage.
package library

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/store"
)

// Acquisition is the result of acquiring a reading session.
type Acquisition struct {
	// Session is the content to present.
	Session *content.Session

	// PassageID identifies the backing passage.
	PassageID string

	// AttemptID identifies the attempt row tracking this run.
	AttemptID int

	// Resumed reports whether an unfinished attempt was picked up.
	Resumed bool

	// InitialAnswers holds the answers already selected on a resumed
	// attempt, keyed by question ID.
	InitialAnswers map[int]int
}

// Service implements the acquisition protocol.
type Service struct {
	passages store.PassageRepo
	attempts store.AttemptRepo
	gen      content.Generator
	logger   *log.Logger
}

// New creates a library service.
func New(passages store.PassageRepo, attempts store.AttemptRepo, gen content.Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		passages: passages,
		attempts: attempts,
		gen:      gen,
		logger:   logger,
	}
}

// Acquire returns a reading session for the reader, topic, and difficulty.
//
// Resolution order:
//  1. The reader's most recent unfinished attempt, with its saved answers.
//  2. The oldest stored passage the reader has never attempted, under a
//     fresh attempt.
//  3. A newly generated passage, persisted and tracked by a fresh attempt.
//
// Any store read or write failure aborts the acquisition with an
// AcquisitionError. A passage saved before a failed attempt write is
// left behind; a later acquire picks it up through step 2.
func (s *Service) Acquire(ctx context.Context, readerID int, topic content.Topic, difficulty content.Difficulty) (*Acquisition, error) {
	if acq, err := s.resume(ctx, readerID, topic, difficulty); err != nil {
		return nil, err
	} else if acq != nil {
		return acq, nil
	}

	if acq, err := s.reuse(ctx, readerID, topic, difficulty); err != nil {
		return nil, err
	} else if acq != nil {
		return acq, nil
	}

	return s.generate(ctx, readerID, topic, difficulty)
}

func (s *Service) resume(ctx context.Context, readerID int, topic content.Topic, difficulty content.Difficulty) (*Acquisition, error) {
	attempt, err := s.attempts.LatestIncomplete(ctx, readerID, string(topic), string(difficulty))
	if err != nil {
		return nil, &AcquisitionError{Step: StepResume, Err: err}
	}
	if attempt == nil {
		return nil, nil
	}

	passage, err := s.passages.ByID(ctx, attempt.PassageID)
	if err != nil {
		return nil, &AcquisitionError{Step: StepResume, Err: err}
	}
	if passage == nil {
		// The attempt points at a passage that no longer exists.
		// Fall through to the other steps.
		s.logger.Warn("unfinished attempt references missing passage",
			"attempt", attempt.ID, "passage", attempt.PassageID)
		return nil, nil
	}

	return &Acquisition{
		Session:        passageToSession(passage),
		PassageID:      passage.ID,
		AttemptID:      attempt.ID,
		Resumed:        true,
		InitialAnswers: attempt.Answers,
	}, nil
}

func (s *Service) reuse(ctx context.Context, readerID int, topic content.Topic, difficulty content.Difficulty) (*Acquisition, error) {
	stored, err := s.passages.ByTopic(ctx, string(topic), string(difficulty))
	if err != nil {
		return nil, &AcquisitionError{Step: StepReuse, Err: err}
	}
	if len(stored) == 0 {
		return nil, nil
	}

	attempted, err := s.attempts.AttemptedPassageIDs(ctx, readerID, string(topic), string(difficulty))
	if err != nil {
		return nil, &AcquisitionError{Step: StepReuse, Err: err}
	}

	// ByTopic returns oldest first, so the first untouched passage wins.
	for _, p := range stored {
		if attempted[p.ID] {
			continue
		}
		acq, err := s.begin(ctx, readerID, p)
		if err != nil {
			return nil, &AcquisitionError{Step: StepReuse, Err: err}
		}
		return acq, nil
	}
	return nil, nil
}

func (s *Service) generate(ctx context.Context, readerID int, topic content.Topic, difficulty content.Difficulty) (*Acquisition, error) {
	if s.gen == nil {
		return nil, &AcquisitionError{Step: StepGenerate, Err: ErrNoGenerator}
	}
	session, err := s.gen.Generate(ctx, topic, difficulty)
	if err != nil {
		return nil, &AcquisitionError{Step: StepGenerate, Err: err}
	}

	passage := sessionToPassage(session, topic, difficulty)
	if err := s.passages.Save(ctx, passage); err != nil {
		return nil, &AcquisitionError{Step: StepGenerate, Err: err}
	}

	acq, err := s.begin(ctx, readerID, passage)
	if err != nil {
		// The passage already persisted; step 2 picks it up next time.
		s.logger.Warn("attempt creation failed after passage save", "passage", passage.ID, "err", err)
		return nil, &AcquisitionError{Step: StepGenerate, Err: err}
	}
	return acq, nil
}

// begin creates a fresh attempt for the passage.
func (s *Service) begin(ctx context.Context, readerID int, p *store.Passage) (*Acquisition, error) {
	attempt := &store.Attempt{
		ReaderID:   readerID,
		PassageID:  p.ID,
		Topic:      p.Topic,
		Difficulty: p.Difficulty,
		Total:      len(p.Questions),
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	return &Acquisition{
		Session:   passageToSession(p),
		PassageID: p.ID,
		AttemptID: attempt.ID,
	}, nil
}

// SessionFor returns the stored passage as presentable content, or nil
// if the passage no longer exists. Used to replay completed attempts.
func (s *Service) SessionFor(ctx context.Context, passageID string) (*content.Session, error) {
	p, err := s.passages.ByID(ctx, passageID)
	if err != nil || p == nil {
		return nil, err
	}
	return passageToSession(p), nil
}

// passageToSession converts a stored passage to presentable content.
func passageToSession(p *store.Passage) *content.Session {
	qs := make([]content.Question, len(p.Questions))
	for i, q := range p.Questions {
		qs[i] = content.Question{
			ID:           q.ID,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
	}
	return &content.Session{
		Title:     p.Title,
		Passage:   p.Body,
		AvgTime:   p.AvgTime,
		Summary:   p.Summary,
		Questions: qs,
	}
}

// sessionToPassage converts generated content to its stored form.
func sessionToPassage(s *content.Session, topic content.Topic, difficulty content.Difficulty) *store.Passage {
	qs := make([]store.Question, len(s.Questions))
	for i, q := range s.Questions {
		qs[i] = store.Question{
			ID:           q.ID,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
	}
	return &store.Passage{
		Topic:      string(topic),
		Difficulty: string(difficulty),
		Title:      s.Title,
		Body:       s.Passage,
		AvgTime:    s.AvgTime,
		Summary:    s.Summary,
		Questions:  qs,
	}
}
