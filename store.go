package linkharvest

import (
	"context"
	"time"
)

// Record is a stored harvest result.
type Record struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	PageURL   string    `json:"pageUrl"`
	URLs      []string  `json:"urls"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Mode == "" {
		return Errorf(EINVALID, "record mode required")
	}
	if len(r.URLs) == 0 {
		return Errorf(EINVALID, "record URLs required")
	}
	return nil
}

// ResultStore keeps the most recent successful harvest so it can be shown
// again later.
type ResultStore interface {
	// SaveResult replaces the stored harvest with rec.
	// Sets ID, Hash and CreatedAt.
	SaveResult(ctx context.Context, rec *Record) error

	// LatestResult returns the stored harvest.
	// Returns ENOTFOUND if nothing is stored.
	LatestResult(ctx context.Context) (*Record, error)

	// ClearResults removes the stored harvest.
	ClearResults(ctx context.Context) error
}
