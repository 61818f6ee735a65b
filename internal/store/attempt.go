package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/readerline/readerline/ent"
	"github.com/readerline/readerline/ent/attempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Create(ctx context.Context, a *Attempt) error {
	row, err := r.client.Attempt.Create().
		SetReaderID(a.ReaderID).
		SetPassageID(a.PassageID).
		SetTopic(a.Topic).
		SetDifficulty(a.Difficulty).
		SetAnswers(answersToKeys(a.Answers)).
		SetTotal(a.Total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}

	a.ID = row.ID
	a.StartedAt = row.StartedAt
	return nil
}

func (r *attemptRepo) ByID(ctx context.Context, id int) (*Attempt, error) {
	row, err := r.client.Attempt.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query attempt %d: %w", id, err)
	}
	return entAttemptToAttempt(row), nil
}

func (r *attemptRepo) LatestIncomplete(ctx context.Context, readerID int, topic, difficulty string) (*Attempt, error) {
	row, err := r.client.Attempt.Query().
		Where(
			attempt.ReaderID(readerID),
			attempt.Topic(topic),
			attempt.Difficulty(difficulty),
			attempt.Completed(false),
		).
		Order(ent.Desc(attempt.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query incomplete attempt: %w", err)
	}
	return entAttemptToAttempt(row), nil
}

func (r *attemptRepo) AttemptedPassageIDs(ctx context.Context, readerID int, topic, difficulty string) (map[string]bool, error) {
	ids, err := r.client.Attempt.Query().
		Where(
			attempt.ReaderID(readerID),
			attempt.Topic(topic),
			attempt.Difficulty(difficulty),
		).
		Select(attempt.FieldPassageID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempted passages: %w", err)
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *attemptRepo) UpdateAnswers(ctx context.Context, id int, answers map[int]int) error {
	err := r.client.Attempt.UpdateOneID(id).
		SetAnswers(answersToKeys(answers)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update answers for attempt %d: %w", id, err)
	}
	return nil
}

func (r *attemptRepo) Complete(ctx context.Context, id int, answers map[int]int, score int) error {
	err := r.client.Attempt.UpdateOneID(id).
		SetAnswers(answersToKeys(answers)).
		SetScore(score).
		SetCompleted(true).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("complete attempt %d: %w", id, err)
	}
	return nil
}

func (r *attemptRepo) ByReader(ctx context.Context, readerID int, limit int) ([]*Attempt, error) {
	q := r.client.Attempt.Query().
		Where(attempt.ReaderID(readerID)).
		Order(ent.Desc(attempt.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts for reader %d: %w", readerID, err)
	}

	out := make([]*Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, entAttemptToAttempt(row))
	}
	return out, nil
}

// answersToKeys converts answer maps to string-keyed maps for JSON storage.
func answersToKeys(answers map[int]int) map[string]int {
	out := make(map[string]int, len(answers))
	for qid, sel := range answers {
		out[strconv.Itoa(qid)] = sel
	}
	return out
}

// keysToAnswers is the inverse of answersToKeys. Unparseable keys are skipped.
func keysToAnswers(m map[string]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, sel := range m {
		qid, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[qid] = sel
	}
	return out
}

// entAttemptToAttempt converts an ent Attempt to a store Attempt.
func entAttemptToAttempt(row *ent.Attempt) *Attempt {
	return &Attempt{
		ID:          row.ID,
		ReaderID:    row.ReaderID,
		PassageID:   row.PassageID,
		Topic:       row.Topic,
		Difficulty:  row.Difficulty,
		Answers:     keysToAnswers(row.Answers),
		Score:       row.Score,
		Total:       row.Total,
		Completed:   row.Completed,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
}
