package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkharvest"
	"golang.org/x/net/html"
)

// Ensure Element implements linkharvest.Element at compile time.
var _ linkharvest.Element = (*Element)(nil)

// Element wraps one node of a Page. Elements are canonical per node, so two
// Elements for the same node compare equal.
type Element struct {
	page *Page
	node *html.Node
}

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Tag returns the lower-case tag name, or "" for non-element nodes.
func (e *Element) Tag() string {
	if e.node.Type != html.ElementNode {
		return ""
	}
	return e.node.Data
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// BoundingBox returns the box recorded in the BoxAttr annotation.
func (e *Element) BoundingBox() (linkharvest.Rect, bool) {
	raw, ok := e.Attr(linkharvest.BoxAttr)
	if !ok {
		return linkharvest.Rect{}, false
	}
	return parseBox(raw)
}

// Parent returns the parent element, or nil at the root.
func (e *Element) Parent() linkharvest.Element {
	if e.node.Parent == nil {
		return nil
	}
	return e.page.element(e.node.Parent)
}

// Children returns the element children in document order.
func (e *Element) Children() []linkharvest.Element {
	var children []linkharvest.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, e.page.element(c))
		}
	}
	return children
}

// Matches reports whether the element matches a CSS selector.
func (e *Element) Matches(selector string) (bool, error) {
	sel, err := e.page.compile(selector)
	if err != nil {
		return false, err
	}
	if e.node.Type != html.ElementNode {
		return false, nil
	}
	return sel.Match(e.node), nil
}

// QueryAll returns all descendants matching a CSS selector in document order.
func (e *Element) QueryAll(selector string) ([]linkharvest.Element, error) {
	sel, err := e.page.compile(selector)
	if err != nil {
		return nil, err
	}

	var matches []linkharvest.Element
	goquery.NewDocumentFromNode(e.node).FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
		matches = append(matches, e.page.element(s.Get(0)))
	})
	return matches, nil
}

// parseBox reads "left top right bottom".
func parseBox(raw string) (linkharvest.Rect, bool) {
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return linkharvest.Rect{}, false
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return linkharvest.Rect{}, false
		}
		v[i] = n
	}
	return linkharvest.Rect{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, true
}

// FormatBox renders r in the BoxAttr format.
func FormatBox(r linkharvest.Rect) string {
	return strings.Join([]string{
		strconv.FormatFloat(r.Left, 'f', -1, 64),
		strconv.FormatFloat(r.Top, 'f', -1, 64),
		strconv.FormatFloat(r.Right, 'f', -1, 64),
		strconv.FormatFloat(r.Bottom, 'f', -1, 64),
	}, " ")
}
