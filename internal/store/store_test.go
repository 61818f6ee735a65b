package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"passages", "attempts", "readers", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func samplePassage(topic, difficulty string) *Passage {
	return &Passage{
		Topic:      topic,
		Difficulty: difficulty,
		Title:      "The Quiet Turnaround",
		Body:       "First paragraph.\n\nSecond paragraph.",
		AvgTime:    "3-4 mins",
		Summary:    "A company recovers.",
		Questions: []Question{
			{
				ID:           1,
				Text:         "What happened?",
				Options:      []string{"A", "B", "C", "D"},
				CorrectIndex: 2,
				Explanation:  "The passage says so.",
			},
		},
	}
}

func TestPassageSaveAssignsID(t *testing.T) {
	s := openTestStore(t)
	repo := s.PassageRepo()
	ctx := context.Background()

	p := samplePassage("business", "standard")
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be assigned")
	}
}

func TestPassageByIDRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PassageRepo()
	ctx := context.Background()

	p := samplePassage("business", "standard")
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.ByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil {
		t.Fatal("expected passage, got nil")
	}
	if got.Title != p.Title {
		t.Errorf("title = %q, want %q", got.Title, p.Title)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(got.Questions))
	}
	q := got.Questions[0]
	if q.ID != 1 || q.CorrectIndex != 2 || len(q.Options) != 4 {
		t.Errorf("question round trip mismatch: %+v", q)
	}
}

func TestPassageByIDMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.PassageRepo().ByID(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing passage")
	}
}

func TestPassageByTopicOrderedOldestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.PassageRepo()
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		p := samplePassage("fiction", "standard")
		p.Title = title
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}
	// Different topic should not appear.
	other := samplePassage("business", "standard")
	if err := repo.Save(ctx, other); err != nil {
		t.Fatalf("save other: %v", err)
	}

	got, err := repo.ByTopic(ctx, "fiction", "standard")
	if err != nil {
		t.Fatalf("by topic: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("passages = %d, want 3", len(got))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("passage[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestAttemptLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	reader, err := s.ReaderRepo().Create(ctx, "alex")
	if err != nil {
		t.Fatalf("create reader: %v", err)
	}

	p := samplePassage("business", "standard")
	if err := s.PassageRepo().Save(ctx, p); err != nil {
		t.Fatalf("save passage: %v", err)
	}

	repo := s.AttemptRepo()
	a := &Attempt{
		ReaderID:   reader.ID,
		PassageID:  p.ID,
		Topic:      "business",
		Difficulty: "standard",
		Total:      1,
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("expected attempt ID to be assigned")
	}

	// Shows up as the resumable attempt.
	got, err := repo.LatestIncomplete(ctx, reader.ID, "business", "standard")
	if err != nil {
		t.Fatalf("latest incomplete: %v", err)
	}
	if got == nil || got.ID != a.ID {
		t.Fatalf("latest incomplete = %+v, want attempt %d", got, a.ID)
	}

	// Persist a partial answer.
	if err := repo.UpdateAnswers(ctx, a.ID, map[int]int{1: 2}); err != nil {
		t.Fatalf("update answers: %v", err)
	}
	got, err = repo.ByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got.Answers[1] != 2 {
		t.Errorf("answers[1] = %d, want 2", got.Answers[1])
	}
	if got.Completed {
		t.Error("attempt should not be completed yet")
	}

	// Submit.
	if err := repo.Complete(ctx, a.ID, map[int]int{1: 2}, 1); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, err = repo.ByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("by id after complete: %v", err)
	}
	if !got.Completed {
		t.Error("expected completed attempt")
	}
	if got.Score != 1 {
		t.Errorf("score = %d, want 1", got.Score)
	}
	if got.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}

	// No longer resumable.
	resumable, err := repo.LatestIncomplete(ctx, reader.ID, "business", "standard")
	if err != nil {
		t.Fatalf("latest incomplete after complete: %v", err)
	}
	if resumable != nil {
		t.Fatal("expected no resumable attempt after completion")
	}
}

func TestAttemptedPassageIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	reader, err := s.ReaderRepo().Create(ctx, "alex")
	if err != nil {
		t.Fatalf("create reader: %v", err)
	}

	var attempted string
	for i := 0; i < 2; i++ {
		p := samplePassage("fiction", "challenge")
		if err := s.PassageRepo().Save(ctx, p); err != nil {
			t.Fatalf("save passage: %v", err)
		}
		if i == 0 {
			attempted = p.ID
			a := &Attempt{
				ReaderID:   reader.ID,
				PassageID:  p.ID,
				Topic:      "fiction",
				Difficulty: "challenge",
				Total:      1,
			}
			if err := s.AttemptRepo().Create(ctx, a); err != nil {
				t.Fatalf("create attempt: %v", err)
			}
		}
	}

	ids, err := s.AttemptRepo().AttemptedPassageIDs(ctx, reader.ID, "fiction", "challenge")
	if err != nil {
		t.Fatalf("attempted passage ids: %v", err)
	}
	if len(ids) != 1 || !ids[attempted] {
		t.Errorf("attempted ids = %v, want {%s}", ids, attempted)
	}
}

func TestAttemptsByReaderNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	reader, err := s.ReaderRepo().Create(ctx, "alex")
	if err != nil {
		t.Fatalf("create reader: %v", err)
	}

	var last int
	for i := 0; i < 3; i++ {
		p := samplePassage("business", "standard")
		if err := s.PassageRepo().Save(ctx, p); err != nil {
			t.Fatalf("save passage: %v", err)
		}
		a := &Attempt{
			ReaderID:   reader.ID,
			PassageID:  p.ID,
			Topic:      "business",
			Difficulty: "standard",
			Total:      1,
		}
		if err := s.AttemptRepo().Create(ctx, a); err != nil {
			t.Fatalf("create attempt %d: %v", i, err)
		}
		last = a.ID
	}

	got, err := s.AttemptRepo().ByReader(ctx, reader.ID, 2)
	if err != nil {
		t.Fatalf("by reader: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("attempts = %d, want 2 (limit)", len(got))
	}
	if got[0].ID != last {
		t.Errorf("first attempt = %d, want newest %d", got[0].ID, last)
	}
}

func TestReaderFirstAndCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReaderRepo()
	ctx := context.Background()

	got, err := repo.First(ctx)
	if err != nil {
		t.Fatalf("first (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil reader before creation")
	}

	created, err := repo.Create(ctx, "alex")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected reader ID to be assigned")
	}

	got, err = repo.First(ctx)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if got == nil || got.Name != "alex" {
		t.Fatalf("first = %+v, want alex", got)
	}
}

func TestEventAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "passage-gen", InputTokens: 100, OutputTokens: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "passage-gen", InputTokens: 120, OutputTokens: 380, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "passage-gen", Success: false, ErrorMessage: "rate limited"},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(recent))
	}

	usage, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byModel := make(map[string]ModelUsage, len(usage))
	for _, u := range usage {
		byModel[u.Model] = u
	}
	flash := byModel["gemini-2.5-flash"]
	if flash.Requests != 2 {
		t.Errorf("flash requests = %d, want 2", flash.Requests)
	}
	if flash.InputTokens != 220 || flash.OutputTokens != 780 {
		t.Errorf("flash tokens = %d/%d, want 220/780", flash.InputTokens, flash.OutputTokens)
	}
	if byModel["gpt-4o-mini"].Requests != 1 {
		t.Errorf("gpt-4o-mini requests = %d, want 1", byModel["gpt-4o-mini"].Requests)
	}
}
