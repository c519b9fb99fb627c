package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkharvest"
)

// Ensure LoggingResultStore implements linkharvest.ResultStore.
var _ linkharvest.ResultStore = (*LoggingResultStore)(nil)

// LoggingResultStore wraps a ResultStore with debug logging.
type LoggingResultStore struct {
	next   linkharvest.ResultStore
	logger *slog.Logger
}

// NewLoggingResultStore creates a new LoggingResultStore.
func NewLoggingResultStore(next linkharvest.ResultStore, logger *slog.Logger) *LoggingResultStore {
	return &LoggingResultStore{next: next, logger: logger}
}

func (s *LoggingResultStore) SaveResult(ctx context.Context, rec *linkharvest.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save result",
			"mode", rec.Mode,
			"urls", len(rec.URLs),
			"hash", rec.Hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveResult(ctx, rec)
}

func (s *LoggingResultStore) LatestResult(ctx context.Context) (rec *linkharvest.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("latest result",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LatestResult(ctx)
}

func (s *LoggingResultStore) ClearResults(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("clear results",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ClearResults(ctx)
}
