package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/readerline/readerline/ent"
	"github.com/readerline/readerline/ent/passage"
)

// passageRepo implements PassageRepo using the ent client.
type passageRepo struct {
	client *ent.Client
}

func (r *passageRepo) Save(ctx context.Context, p *Passage) error {
	qs, err := questionsToMaps(p.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	create := r.client.Passage.Create().
		SetTopic(p.Topic).
		SetDifficulty(p.Difficulty).
		SetTitle(p.Title).
		SetBody(p.Body).
		SetAvgTime(p.AvgTime).
		SetSummary(p.Summary).
		SetQuestions(qs)
	if p.ID != "" {
		create = create.SetID(p.ID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("save passage: %w", err)
	}

	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	return nil
}

func (r *passageRepo) ByID(ctx context.Context, id string) (*Passage, error) {
	row, err := r.client.Passage.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query passage %s: %w", id, err)
	}
	return entPassageToPassage(row)
}

func (r *passageRepo) ByTopic(ctx context.Context, topic, difficulty string) ([]*Passage, error) {
	rows, err := r.client.Passage.Query().
		Where(
			passage.Topic(topic),
			passage.Difficulty(difficulty),
		).
		Order(ent.Asc(passage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query passages for %s/%s: %w", topic, difficulty, err)
	}

	out := make([]*Passage, 0, len(rows))
	for _, row := range rows {
		p, err := entPassageToPassage(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// questionsToMaps converts questions to []map[string]any for ent JSON storage.
func questionsToMaps(qs []Question) ([]map[string]any, error) {
	if len(qs) == 0 {
		return []map[string]any{}, nil
	}
	b, err := json.Marshal(qs)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// entPassageToPassage converts an ent Passage to a store Passage.
func entPassageToPassage(row *ent.Passage) (*Passage, error) {
	var qs []Question
	if len(row.Questions) > 0 {
		b, err := json.Marshal(row.Questions)
		if err != nil {
			return nil, fmt.Errorf("marshal ent questions: %w", err)
		}
		if err := json.Unmarshal(b, &qs); err != nil {
			return nil, fmt.Errorf("unmarshal questions: %w", err)
		}
	}

	return &Passage{
		ID:         row.ID,
		Topic:      row.Topic,
		Difficulty: row.Difficulty,
		Title:      row.Title,
		Body:       row.Body,
		AvgTime:    row.AvgTime,
		Summary:    row.Summary,
		Questions:  qs,
		CreatedAt:  row.CreatedAt,
	}, nil
}
