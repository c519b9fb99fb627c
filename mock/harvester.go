package mock

import "github.com/fwojciec/linkharvest"

// Compile-time interface verification.
var (
	_ linkharvest.Harvester     = (*Harvester)(nil)
	_ linkharvest.URLNormalizer = (*URLNormalizer)(nil)
)

// Harvester is a mock implementation of linkharvest.Harvester.
type Harvester struct {
	ScanPageFn         func(page linkharvest.Page) *linkharvest.Result
	HarvestSelectionFn func(page linkharvest.Page) *linkharvest.Result
	HarvestRectFn      func(page linkharvest.Page, rect linkharvest.Rect) *linkharvest.Result
}

func (h *Harvester) ScanPage(page linkharvest.Page) *linkharvest.Result {
	return h.ScanPageFn(page)
}

func (h *Harvester) HarvestSelection(page linkharvest.Page) *linkharvest.Result {
	return h.HarvestSelectionFn(page)
}

func (h *Harvester) HarvestRect(page linkharvest.Page, rect linkharvest.Rect) *linkharvest.Result {
	return h.HarvestRectFn(page, rect)
}

// URLNormalizer is a mock implementation of linkharvest.URLNormalizer.
type URLNormalizer struct {
	NormalizeFn func(raw string) (string, error)
}

func (n *URLNormalizer) Normalize(raw string) (string, error) {
	return n.NormalizeFn(raw)
}
