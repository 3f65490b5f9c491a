package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/latchflow/latchc/internal/serialize"
)

// ErrNotFound is returned when a workflow record does not exist.
var ErrNotFound = errors.New("workflow record not found")

// RecordSummary is one row of a record listing.
type RecordSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

// GetRecord loads one workflow record by id.
func (s *Store) GetRecord(ctx context.Context, id string) (*serialize.Record, error) {
	var definition string
	err := s.db.QueryRowContext(ctx,
		`SELECT definition FROM workflows WHERE id = ?`, id,
	).Scan(&definition)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", id, err)
	}

	rec, err := serialize.DecodeJSON([]byte(definition))
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", id, err)
	}
	return rec, nil
}

// ListRecords returns summaries of every stored workflow, ordered by id
// for deterministic listings.
func (s *Store) ListRecords(ctx context.Context) ([]RecordSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, updated_at
		FROM workflows
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []RecordSummary
	for rows.Next() {
		var summary RecordSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Description, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		out = append(out, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}
