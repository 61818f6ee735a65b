package store

import (
	"context"
	"fmt"

	"github.com/readerline/readerline/ent"
	"github.com/readerline/readerline/ent/reader"
)

// readerRepo implements ReaderRepo using the ent client.
type readerRepo struct {
	client *ent.Client
}

func (r *readerRepo) First(ctx context.Context) (*Reader, error) {
	row, err := r.client.Reader.Query().
		Order(ent.Asc(reader.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query reader: %w", err)
	}
	return entReaderToReader(row), nil
}

func (r *readerRepo) Create(ctx context.Context, name string) (*Reader, error) {
	row, err := r.client.Reader.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save reader: %w", err)
	}
	return entReaderToReader(row), nil
}

func entReaderToReader(row *ent.Reader) *Reader {
	return &Reader{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
