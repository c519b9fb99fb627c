package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/linkharvest"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkharvest.ResultStore = (*ResultStore)(nil)

// ResultStore implements linkharvest.ResultStore using SQLite.
// It keeps a single record: saving replaces whatever was stored.
type ResultStore struct {
	db *DB
}

// NewResultStore creates a new ResultStore.
func NewResultStore(db *DB) *ResultStore {
	return &ResultStore{db: db}
}

// SaveResult replaces the stored harvest with rec.
func (s *ResultStore) SaveResult(ctx context.Context, rec *linkharvest.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.Hash = hashURLs(rec.URLs)
	rec.CreatedAt = time.Now().UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO results (id, mode, page_url, urls, urls_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, string(rec.Mode), rec.PageURL, joinURLs(rec.URLs), rec.Hash,
		rec.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

// LatestResult returns the stored harvest.
func (s *ResultStore) LatestResult(ctx context.Context) (*linkharvest.Record, error) {
	var rec linkharvest.Record
	var mode, urls, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, mode, page_url, urls, urls_hash, created_at
		FROM results
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&rec.ID, &mode, &rec.PageURL, &urls, &rec.Hash, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, linkharvest.Errorf(linkharvest.ENOTFOUND, "no saved harvest")
	}
	if err != nil {
		return nil, err
	}

	rec.Mode = linkharvest.Mode(mode)
	rec.URLs = splitURLs(urls)
	if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}

// ClearResults removes the stored harvest.
func (s *ResultStore) ClearResults(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM results`)
	return err
}
