package mock

import (
	"context"

	"github.com/fwojciec/linkharvest"
)

var _ linkharvest.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of linkharvest.ResultStore.
type ResultStore struct {
	SaveResultFn   func(ctx context.Context, rec *linkharvest.Record) error
	LatestResultFn func(ctx context.Context) (*linkharvest.Record, error)
	ClearResultsFn func(ctx context.Context) error
}

func (s *ResultStore) SaveResult(ctx context.Context, rec *linkharvest.Record) error {
	return s.SaveResultFn(ctx, rec)
}

func (s *ResultStore) LatestResult(ctx context.Context) (*linkharvest.Record, error) {
	return s.LatestResultFn(ctx)
}

func (s *ResultStore) ClearResults(ctx context.Context) error {
	return s.ClearResultsFn(ctx)
}
