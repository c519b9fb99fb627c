package mock

import (
	"context"

	"github.com/fwojciec/linkharvest"
)

// Compile-time interface verification.
var (
	_ linkharvest.PageSource     = (*PageSource)(nil)
	_ linkharvest.PageScanner    = (*PageScanner)(nil)
	_ linkharvest.ContentLocator = (*ContentLocator)(nil)
	_ linkharvest.Overlay        = (*Overlay)(nil)
)

// PageSource is a mock implementation of linkharvest.PageSource.
type PageSource struct {
	LoadFn func(ctx context.Context, source string) (linkharvest.Page, error)
}

func (s *PageSource) Load(ctx context.Context, source string) (linkharvest.Page, error) {
	return s.LoadFn(ctx, source)
}

// PageScanner is a mock implementation of linkharvest.PageScanner.
type PageScanner struct {
	ScanAllFn func(ctx context.Context, sources []string, progress linkharvest.ScanProgressFunc) ([]*linkharvest.ScanResult, error)
}

func (s *PageScanner) ScanAll(ctx context.Context, sources []string, progress linkharvest.ScanProgressFunc) ([]*linkharvest.ScanResult, error) {
	return s.ScanAllFn(ctx, sources, progress)
}

// ContentLocator is a mock implementation of linkharvest.ContentLocator.
type ContentLocator struct {
	LocateFn func(page linkharvest.Page) linkharvest.Element
}

func (l *ContentLocator) Locate(page linkharvest.Page) linkharvest.Element {
	return l.LocateFn(page)
}

// Overlay is a mock implementation of linkharvest.Overlay.
type Overlay struct {
	ShowFn func(rect linkharvest.Rect)
	HideFn func()
}

func (o *Overlay) Show(rect linkharvest.Rect) {
	o.ShowFn(rect)
}

func (o *Overlay) Hide() {
	o.HideFn()
}

var _ linkharvest.Page = (*Page)(nil)

// Page is a mock implementation of linkharvest.Page.
type Page struct {
	URLFn       func() string
	DocumentFn  func() linkharvest.Element
	BodyFn      func() linkharvest.Element
	SelectionFn func() linkharvest.TextRange
	HTMLFn      func() (string, error)
}

func (p *Page) URL() string {
	return p.URLFn()
}

func (p *Page) Document() linkharvest.Element {
	return p.DocumentFn()
}

func (p *Page) Body() linkharvest.Element {
	return p.BodyFn()
}

func (p *Page) Selection() linkharvest.TextRange {
	return p.SelectionFn()
}

func (p *Page) HTML() (string, error) {
	return p.HTMLFn()
}
