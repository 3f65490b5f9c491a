package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/latchflow/latchc/internal/serialize"
)

// SaveRecord inserts or updates a workflow record. A record without an
// id gets one minted; the (possibly updated) record is returned.
func (s *Store) SaveRecord(ctx context.Context, rec *serialize.Record) (*serialize.Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("save record: nil record")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	data, err := serialize.EncodeJSON(rec)
	if err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO workflows (id, name, description, definition, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			definition = excluded.definition,
			updated_at = excluded.updated_at
	`,
		rec.ID,
		rec.Name,
		rec.Description,
		string(data),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}
	return rec, nil
}

// DeleteRecord removes a workflow record. Deleting a missing id is not
// an error.
func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM workflows WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete record %q: %w", id, err)
	}
	return nil
}
