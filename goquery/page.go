// Package goquery implements linkharvest page snapshots on top of
// golang.org/x/net/html trees, using goquery and cascadia for selector
// matching.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/linkharvest"
	"golang.org/x/net/html"
)

// Ensure Page implements linkharvest.Page at compile time.
var _ linkharvest.Page = (*Page)(nil)

// span holds the positions at which a node opens and closes in a preorder
// walk. A node's descendants all fall strictly between its two positions.
type span struct {
	open  int
	close int
}

type compiled struct {
	sel cascadia.Selector
	err error
}

// Page is an immutable snapshot of a parsed HTML document.
// A Page is not safe for concurrent use.
type Page struct {
	doc       *goquery.Document
	base      string
	elements  map[*html.Node]*Element
	spans     map[*html.Node]span
	selectors map[string]compiled
	selection *Range
}

// Parse builds a snapshot from HTML. pageURL is the address the document
// was loaded from; a <base href> in the document takes precedence for link
// resolution. Selection markers left by a live renderer become the page's
// active selection.
func Parse(rawHTML string, pageURL string) (*Page, error) {
	pageBase, err := url.Parse(pageURL)
	if err != nil {
		return nil, linkharvest.Errorf(linkharvest.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, linkharvest.Errorf(linkharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	p := &Page{
		doc:       doc,
		base:      pageURL,
		elements:  make(map[*html.Node]*Element),
		spans:     make(map[*html.Node]span),
		selectors: make(map[string]compiled),
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			p.base = pageBase.ResolveReference(ref).String()
		}
	}

	p.index(doc.Nodes[0])
	p.selection = p.markedSelection()

	return p, nil
}

// index records preorder open/close positions for every node under root.
func (p *Page) index(root *html.Node) {
	pos := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		s := span{open: pos}
		pos++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		s.close = pos
		pos++
		p.spans[n] = s
	}
	walk(root)
}

// element returns the canonical Element for n.
func (p *Page) element(n *html.Node) *Element {
	if el, ok := p.elements[n]; ok {
		return el
	}
	el := &Element{page: p, node: n}
	p.elements[n] = el
	return el
}

// compile returns the cached compiled form of a CSS selector.
func (p *Page) compile(selector string) (cascadia.Selector, error) {
	if c, ok := p.selectors[selector]; ok {
		return c.sel, c.err
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		err = linkharvest.Errorf(linkharvest.EINVALID, "invalid selector %q: %v", selector, err)
	}
	p.selectors[selector] = compiled{sel: sel, err: err}
	return sel, err
}

// URL returns the base URL used to resolve relative links.
func (p *Page) URL() string {
	return p.base
}

// Document returns the document root.
func (p *Page) Document() linkharvest.Element {
	return p.element(p.doc.Nodes[0])
}

// Body returns the body element, or nil for documents without one
// (e.g. frameset documents).
func (p *Page) Body() linkharvest.Element {
	body := p.doc.Find("body").First()
	if body.Length() == 0 {
		return nil
	}
	return p.element(body.Get(0))
}

// Selection returns the active selection, or nil.
func (p *Page) Selection() linkharvest.TextRange {
	if p.selection == nil {
		return nil
	}
	return p.selection
}

// SetSelection makes r the active selection. A nil r clears it.
func (p *Page) SetSelection(r *Range) {
	p.selection = r
}

// HTML serializes the snapshot.
func (p *Page) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, p.doc.Nodes[0]); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// markedSelection builds a range from selection marker comments, if the
// snapshot carries both of them in order.
func (p *Page) markedSelection() *Range {
	var start, end *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode {
			switch strings.TrimSpace(n.Data) {
			case linkharvest.SelectionStartMarker:
				if start == nil {
					start = n
				}
			case linkharvest.SelectionEndMarker:
				if end == nil {
					end = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(p.doc.Nodes[0])

	if start == nil || end == nil || start.Parent == nil || end.Parent == nil {
		return nil
	}

	r := &Range{
		page:  p,
		start: boundary{node: start.Parent, offset: childIndex(start) + 1},
		end:   boundary{node: end.Parent, offset: childIndex(end)},
	}
	if r.compare(r.start, r.end) > 0 {
		return nil
	}
	return r
}

// childIndex returns the position of n among its siblings.
func childIndex(n *html.Node) int {
	i := 0
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		i++
	}
	return i
}
