package library

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/store"
)

// fakePassageRepo is an in-memory PassageRepo.
type fakePassageRepo struct {
	passages []*store.Passage
	saveErr  error
}

func (f *fakePassageRepo) Save(_ context.Context, p *store.Passage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	f.passages = append(f.passages, p)
	return nil
}

func (f *fakePassageRepo) ByID(_ context.Context, id string) (*store.Passage, error) {
	for _, p := range f.passages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePassageRepo) ByTopic(_ context.Context, topic, difficulty string) ([]*store.Passage, error) {
	var out []*store.Passage
	for _, p := range f.passages {
		if p.Topic == topic && p.Difficulty == difficulty {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeAttemptRepo is an in-memory AttemptRepo.
type fakeAttemptRepo struct {
	attempts  []*store.Attempt
	nextID    int
	createErr error
}

func (f *fakeAttemptRepo) Create(_ context.Context, a *store.Attempt) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	a.StartedAt = time.Now()
	f.attempts = append(f.attempts, a)
	return nil
}

func (f *fakeAttemptRepo) ByID(_ context.Context, id int) (*store.Attempt, error) {
	for _, a := range f.attempts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAttemptRepo) LatestIncomplete(_ context.Context, readerID int, topic, difficulty string) (*store.Attempt, error) {
	var latest *store.Attempt
	for _, a := range f.attempts {
		if a.ReaderID != readerID || a.Topic != topic || a.Difficulty != difficulty || a.Completed {
			continue
		}
		if latest == nil || a.StartedAt.After(latest.StartedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (f *fakeAttemptRepo) AttemptedPassageIDs(_ context.Context, readerID int, topic, difficulty string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, a := range f.attempts {
		if a.ReaderID == readerID && a.Topic == topic && a.Difficulty == difficulty {
			out[a.PassageID] = true
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) UpdateAnswers(_ context.Context, id int, answers map[int]int) error {
	for _, a := range f.attempts {
		if a.ID == id {
			a.Answers = answers
			return nil
		}
	}
	return errors.New("attempt not found")
}

func (f *fakeAttemptRepo) Complete(_ context.Context, id int, answers map[int]int, score int) error {
	for _, a := range f.attempts {
		if a.ID == id {
			now := time.Now()
			a.Answers = answers
			a.Score = score
			a.Completed = true
			a.CompletedAt = &now
			return nil
		}
	}
	return errors.New("attempt not found")
}

func (f *fakeAttemptRepo) ByReader(_ context.Context, readerID, limit int) ([]*store.Attempt, error) {
	var out []*store.Attempt
	for _, a := range f.attempts {
		if a.ReaderID == readerID {
			out = append(out, a)
		}
	}
	return out, nil
}

// stubGenerator returns a canned session or error and counts calls.
type stubGenerator struct {
	session *content.Session
	err     error
	calls   int
}

func (g *stubGenerator) Generate(_ context.Context, _ content.Topic, _ content.Difficulty) (*content.Session, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.session, nil
}

func sampleSession() *content.Session {
	return &content.Session{
		Title:   "The Quiet Turnaround",
		Passage: "First paragraph.\n\nSecond paragraph.",
		AvgTime: "3-4 mins",
		Summary: "A company recovers.",
		Questions: []content.Question{
			{ID: 1, Text: "What happened?", Options: []string{"A", "B", "C", "D"}, CorrectIndex: 2, Explanation: "Stated."},
		},
	}
}

func newTestService(passages *fakePassageRepo, attempts *fakeAttemptRepo, gen content.Generator) *Service {
	return New(passages, attempts, gen, log.New(io.Discard))
}

func TestAcquireResumesUnfinishedAttempt(t *testing.T) {
	passages := &fakePassageRepo{}
	attempts := &fakeAttemptRepo{}
	gen := &stubGenerator{session: sampleSession()}
	svc := newTestService(passages, attempts, gen)
	ctx := context.Background()

	p := &store.Passage{
		Topic: "business", Difficulty: "standard",
		Title: "Stored", Body: "Body.", Summary: "Sum",
		Questions: []store.Question{{ID: 1, Text: "Q", Options: []string{"a", "b"}, CorrectIndex: 0, Explanation: "E"}},
	}
	if err := passages.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	attempts.Create(ctx, &store.Attempt{
		ReaderID: 7, PassageID: p.ID,
		Topic: "business", Difficulty: "standard",
		Answers: map[int]int{1: 1}, Total: 1,
	})

	acq, err := svc.Acquire(ctx, 7, content.TopicBusiness, content.DifficultyStandard)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !acq.Resumed {
		t.Fatal("expected resumed acquisition")
	}
	if acq.Session.Title != "Stored" {
		t.Errorf("title = %q, want Stored", acq.Session.Title)
	}
	if acq.InitialAnswers[1] != 1 {
		t.Errorf("initial answers = %v, want {1:1}", acq.InitialAnswers)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
}

func TestAcquireReusesOldestUntouchedPassage(t *testing.T) {
	passages := &fakePassageRepo{}
	attempts := &fakeAttemptRepo{}
	gen := &stubGenerator{session: sampleSession()}
	svc := newTestService(passages, attempts, gen)
	ctx := context.Background()

	// Oldest passage is already attempted; second should be chosen.
	first := &store.Passage{Topic: "fiction", Difficulty: "standard", Title: "seen", Body: "b"}
	second := &store.Passage{Topic: "fiction", Difficulty: "standard", Title: "unseen", Body: "b"}
	passages.Save(ctx, first)
	passages.Save(ctx, second)
	attempts.Create(ctx, &store.Attempt{
		ReaderID: 7, PassageID: first.ID,
		Topic: "fiction", Difficulty: "standard", Completed: true,
	})

	acq, err := svc.Acquire(ctx, 7, content.TopicFiction, content.DifficultyStandard)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if acq.Resumed {
		t.Fatal("expected fresh acquisition")
	}
	if acq.Session.Title != "unseen" {
		t.Errorf("title = %q, want unseen", acq.Session.Title)
	}
	if acq.AttemptID == 0 {
		t.Error("expected a persisted attempt")
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
}

func TestAcquireGeneratesWhenLibraryExhausted(t *testing.T) {
	passages := &fakePassageRepo{}
	attempts := &fakeAttemptRepo{}
	gen := &stubGenerator{session: sampleSession()}
	svc := newTestService(passages, attempts, gen)
	ctx := context.Background()

	acq, err := svc.Acquire(ctx, 7, content.TopicBusiness, content.DifficultyStandard)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if acq.PassageID == "" {
		t.Error("expected passage to be persisted")
	}
	if acq.AttemptID == 0 {
		t.Error("expected attempt to be persisted")
	}
	if len(passages.passages) != 1 {
		t.Errorf("stored passages = %d, want 1", len(passages.passages))
	}

	// Same reader immediately acquiring again resumes the new attempt.
	again, err := svc.Acquire(ctx, 7, content.TopicBusiness, content.DifficultyStandard)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if !again.Resumed || again.AttemptID != acq.AttemptID {
		t.Errorf("expected resume of attempt %d, got %+v", acq.AttemptID, again)
	}

	// A different reader reuses the stored passage without generating.
	other, err := svc.Acquire(ctx, 8, content.TopicBusiness, content.DifficultyStandard)
	if err != nil {
		t.Fatalf("other reader acquire: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if other.PassageID != acq.PassageID {
		t.Errorf("other reader passage = %s, want shared %s", other.PassageID, acq.PassageID)
	}
}

func TestAcquireGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("backend down")}
	svc := newTestService(&fakePassageRepo{}, &fakeAttemptRepo{}, gen)

	_, err := svc.Acquire(context.Background(), 7, content.TopicBusiness, content.DifficultyStandard)
	if err == nil {
		t.Fatal("expected error")
	}
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected AcquisitionError, got %T", err)
	}
	if acqErr.Step != StepGenerate {
		t.Errorf("step = %s, want %s", acqErr.Step, StepGenerate)
	}
}

func TestAcquirePassageSaveFailureAborts(t *testing.T) {
	passages := &fakePassageRepo{saveErr: errors.New("disk full")}
	gen := &stubGenerator{session: sampleSession()}
	svc := newTestService(passages, &fakeAttemptRepo{}, gen)

	acq, err := svc.Acquire(context.Background(), 7, content.TopicBusiness, content.DifficultyStandard)
	if acq != nil {
		t.Fatalf("expected no acquisition, got %+v", acq)
	}
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected AcquisitionError, got %v", err)
	}
	if acqErr.Step != StepGenerate {
		t.Errorf("step = %s, want %s", acqErr.Step, StepGenerate)
	}
}

func TestAcquireDanglingAttemptFallsThrough(t *testing.T) {
	passages := &fakePassageRepo{}
	attempts := &fakeAttemptRepo{}
	gen := &stubGenerator{session: sampleSession()}
	svc := newTestService(passages, attempts, gen)
	ctx := context.Background()

	// Unfinished attempt whose passage was never stored.
	attempts.Create(ctx, &store.Attempt{
		ReaderID: 7, PassageID: "gone",
		Topic: "business", Difficulty: "standard",
	})

	acq, err := svc.Acquire(ctx, 7, content.TopicBusiness, content.DifficultyStandard)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if acq.Resumed {
		t.Fatal("expected fallthrough past dangling attempt")
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestAcquireAttemptCreateFailureAborts(t *testing.T) {
	passages := &fakePassageRepo{}
	attempts := &fakeAttemptRepo{createErr: errors.New("locked")}
	gen := &stubGenerator{session: sampleSession()}
	svc := newTestService(passages, attempts, gen)
	ctx := context.Background()

	_, err := svc.Acquire(ctx, 7, content.TopicBusiness, content.DifficultyStandard)
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected AcquisitionError, got %v", err)
	}
	if acqErr.Step != StepGenerate {
		t.Errorf("step = %s, want %s", acqErr.Step, StepGenerate)
	}

	// The generated passage stays behind as an orphan; once the store
	// recovers, the next acquire reuses it instead of regenerating.
	if len(passages.passages) != 1 {
		t.Fatalf("stored passages = %d, want 1", len(passages.passages))
	}
	attempts.createErr = nil
	acq, err := svc.Acquire(ctx, 7, content.TopicBusiness, content.DifficultyStandard)
	if err != nil {
		t.Fatalf("acquire after recovery: %v", err)
	}
	if acq.PassageID != passages.passages[0].ID {
		t.Errorf("passage = %s, want orphan %s", acq.PassageID, passages.passages[0].ID)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestAcquireReuseAttemptCreateFailureAborts(t *testing.T) {
	passages := &fakePassageRepo{}
	attempts := &fakeAttemptRepo{createErr: errors.New("locked")}
	gen := &stubGenerator{session: sampleSession()}
	svc := newTestService(passages, attempts, gen)
	ctx := context.Background()

	passages.Save(ctx, &store.Passage{Topic: "business", Difficulty: "standard", Title: "Stored", Body: "b"})

	_, err := svc.Acquire(ctx, 7, content.TopicBusiness, content.DifficultyStandard)
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected AcquisitionError, got %v", err)
	}
	if acqErr.Step != StepReuse {
		t.Errorf("step = %s, want %s", acqErr.Step, StepReuse)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
}
