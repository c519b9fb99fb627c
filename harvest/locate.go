package harvest

import "github.com/fwojciec/linkharvest"

// Ensure SelectorLocator implements linkharvest.ContentLocator at compile time.
var _ linkharvest.ContentLocator = (*SelectorLocator)(nil)

// SelectorLocator picks the main content root by a priority list of CSS
// selectors. The first selector with any match wins and its first match in
// document order is returned; the body is the fallback.
type SelectorLocator struct {
	Selectors []string
}

// NewSelectorLocator returns a locator for selectors, highest priority first.
func NewSelectorLocator(selectors []string) *SelectorLocator {
	return &SelectorLocator{Selectors: selectors}
}

// Locate returns the main content root of page.
func (l *SelectorLocator) Locate(page linkharvest.Page) linkharvest.Element {
	doc := page.Document()
	if doc == nil {
		return page.Body()
	}
	for _, selector := range l.Selectors {
		matches, err := doc.QueryAll(selector)
		if err != nil || len(matches) == 0 {
			continue
		}
		return matches[0]
	}
	return page.Body()
}
