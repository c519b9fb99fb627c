// Package harvest implements link harvesting over page snapshots: URL
// normalization, the pattern, structural and geometric extractors, the
// boilerplate classifier and main-content locator, and the orchestrator
// combining them into the page, selection and rectangle modes.
package harvest

import (
	"github.com/fwojciec/linkharvest"
)

// Ensure Harvester implements linkharvest.Harvester at compile time.
var _ linkharvest.Harvester = (*Harvester)(nil)

// Harvester runs the three acquisition modes over page snapshots.
// A Harvester holds only static configuration and is safe for concurrent
// use as long as each call gets its own page.
type Harvester struct {
	// Normalizer strips tracking parameters from every harvested URL.
	Normalizer linkharvest.URLNormalizer

	// Locator picks the main content root for page scans.
	Locator linkharvest.ContentLocator

	// ExcludeSelectors mark boilerplate regions skipped by page scans.
	ExcludeSelectors []string

	// CollapseNormalized drops URLs whose normalized form was already
	// reported.
	CollapseNormalized bool
}

// NewHarvester returns a Harvester configured from cfg, locating main
// content with cfg.MainSelectors.
func NewHarvester(cfg linkharvest.Config) *Harvester {
	return &Harvester{
		Normalizer:         NewNormalizer(linkharvest.NewTrackingParams(cfg.TrackingParams...)),
		Locator:            NewSelectorLocator(cfg.MainSelectors),
		ExcludeSelectors:   cfg.ExcludeSelectors,
		CollapseNormalized: cfg.CollapseNormalized,
	}
}

// ScanPage harvests every link in the page's main content that does not sit
// in a boilerplate region below the content root.
func (h *Harvester) ScanPage(page linkharvest.Page) *linkharvest.Result {
	if page == nil {
		return linkharvest.Fail(linkharvest.ModePage, linkharvest.Errorf(linkharvest.ENOTARGET, "no page to scan"))
	}
	body := page.Body()
	if body == nil {
		return linkharvest.Fail(linkharvest.ModePage, linkharvest.Errorf(linkharvest.EACCESS, "page structure cannot be read"))
	}

	root := body
	if h.Locator != nil {
		if located := h.Locator.Locate(page); located != nil {
			root = located
		}
	}
	excluded := ComputeExclusions(page.Document(), h.ExcludeSelectors)

	var links []linkharvest.Element
	if ok, _ := root.Matches(linkSelector); ok {
		links = append(links, root)
	}
	if descendants, err := root.QueryAll(linkSelector); err == nil {
		links = append(links, descendants...)
	}

	res := newResolver(page.URL())
	var c candidates
	for _, link := range links {
		if excluded.ExcludedWithin(link, root) {
			continue
		}
		if u, ok := res.resolve(link); ok {
			c.add(u)
		}
	}
	return h.finish(linkharvest.ModePage, c.urls)
}

// HarvestSelection harvests the page's active text selection: URLs written
// out in the selected text first, then links inside or overlapping it.
func (h *Harvester) HarvestSelection(page linkharvest.Page) *linkharvest.Result {
	if page == nil {
		return linkharvest.Fail(linkharvest.ModeSelection, linkharvest.Errorf(linkharvest.ENOTARGET, "no page to harvest"))
	}
	sel := page.Selection()
	if sel == nil || sel.Collapsed() {
		return linkharvest.Fail(linkharvest.ModeSelection, linkharvest.Errorf(linkharvest.ENOREGION, "no text selected"))
	}

	var c candidates
	c.add(ExtractFromText(sel.Text())...)
	structural, err := ExtractFromRange(page.URL(), sel)
	if err != nil {
		return linkharvest.Fail(linkharvest.ModeSelection, err)
	}
	c.add(structural...)
	return h.finish(linkharvest.ModeSelection, c.urls)
}

// HarvestRect harvests links whose rendered box intersects rect, preceded by
// URLs written out in any active text selection.
func (h *Harvester) HarvestRect(page linkharvest.Page, rect linkharvest.Rect) *linkharvest.Result {
	if page == nil {
		return linkharvest.Fail(linkharvest.ModeRectangle, linkharvest.Errorf(linkharvest.ENOTARGET, "no page to harvest"))
	}

	var c candidates
	if sel := page.Selection(); sel != nil && !sel.Collapsed() {
		c.add(ExtractFromText(sel.Text())...)
	}
	if doc := page.Document(); doc != nil {
		links, err := doc.QueryAll(linkSelector)
		if err != nil {
			return linkharvest.Fail(linkharvest.ModeRectangle, err)
		}
		c.add(ExtractFromRect(page.URL(), rect, links)...)
	}
	return h.finish(linkharvest.ModeRectangle, c.urls)
}

// StartCapture begins a rectangle capture over page.
func (h *Harvester) StartCapture(page linkharvest.Page, overlay linkharvest.Overlay) *Capture {
	return NewCapture(h, page, overlay)
}

// finish normalizes the deduplicated candidates into a result. Candidates
// that fail to normalize are kept as they are.
func (h *Harvester) finish(mode linkharvest.Mode, raw []string) *linkharvest.Result {
	var c candidates
	urls := make([]string, 0, len(raw))
	for _, u := range raw {
		normalized := u
		if h.Normalizer != nil {
			if n, err := h.Normalizer.Normalize(u); err == nil {
				normalized = n
			}
		}
		if h.CollapseNormalized {
			c.add(normalized)
			continue
		}
		urls = append(urls, normalized)
	}
	if h.CollapseNormalized {
		urls = c.urls
	}

	if len(urls) == 0 {
		return linkharvest.Fail(mode, linkharvest.Errorf(linkharvest.ENOTFOUND, "no links found"))
	}
	return linkharvest.Succeed(mode, urls)
}
