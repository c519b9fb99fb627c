package goquery

import (
	"strings"

	"github.com/fwojciec/linkharvest"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Range implements linkharvest.TextRange at compile time.
var _ linkharvest.TextRange = (*Range)(nil)

// boundary is a DOM boundary point. For text and comment nodes offset is a
// byte offset into the node data; for other nodes it is a child index.
type boundary struct {
	node   *html.Node
	offset int
}

// position orders boundary points: compare major first, then minor.
type position struct {
	major int
	minor int
}

func (a position) less(b position) bool {
	if a.major != b.major {
		return a.major < b.major
	}
	return a.minor < b.minor
}

// Range is a selection between two boundary points of a Page.
// Ranges follow DOM Range semantics for containment, intersection and
// cloning.
type Range struct {
	page  *Page
	start boundary
	end   boundary
}

// position maps a boundary point onto the page's preorder numbering.
func (r *Range) position(b boundary) position {
	if isCharacterData(b.node) {
		return position{major: r.page.spans[b.node].open, minor: b.offset + 1}
	}
	i := 0
	for c := b.node.FirstChild; c != nil; c = c.NextSibling {
		if i == b.offset {
			return position{major: r.page.spans[c].open}
		}
		i++
	}
	return position{major: r.page.spans[b.node].close}
}

func (r *Range) compare(a, b boundary) int {
	pa, pb := r.position(a), r.position(b)
	switch {
	case pa.less(pb):
		return -1
	case pb.less(pa):
		return 1
	}
	return 0
}

// Collapsed reports whether the boundaries coincide.
func (r *Range) Collapsed() bool {
	return r.compare(r.start, r.end) == 0
}

// contains reports whether n lies entirely within the range.
func (r *Range) contains(n *html.Node) bool {
	return r.compare(r.start, boundary{n, 0}) < 0 &&
		r.compare(boundary{n, nodeLength(n)}, r.end) < 0
}

// partiallyContains reports whether exactly one boundary lies inside n.
func (r *Range) partiallyContains(n *html.Node) bool {
	return isInclusiveAncestor(n, r.start.node) != isInclusiveAncestor(n, r.end.node)
}

// intersects follows DOM Range.intersectsNode.
func (r *Range) intersects(n *html.Node) bool {
	if n.Parent == nil {
		return true
	}
	i := childIndex(n)
	return r.compare(boundary{n.Parent, i}, r.end) < 0 &&
		r.compare(boundary{n.Parent, i + 1}, r.start) > 0
}

// Intersects reports whether any part of el lies within the range.
// Elements from other pages never intersect.
func (r *Range) Intersects(el linkharvest.Element) bool {
	e, ok := el.(*Element)
	if !ok || e.page != r.page {
		return false
	}
	if _, indexed := r.page.spans[e.node]; !indexed {
		return false
	}
	return r.intersects(e.node)
}

// commonAncestorNode returns the deepest node containing both boundaries.
func (r *Range) commonAncestorNode() *html.Node {
	for n := r.start.node; n != nil; n = n.Parent {
		if isInclusiveAncestor(n, r.end.node) {
			return n
		}
	}
	return r.page.doc.Nodes[0]
}

// CommonAncestor returns the deepest element containing both boundaries.
// A common text node is replaced by its parent.
func (r *Range) CommonAncestor() linkharvest.Element {
	n := r.commonAncestorNode()
	if isCharacterData(n) && n.Parent != nil {
		n = n.Parent
	}
	return r.page.element(n)
}

// CloneContents returns a detached copy of the selected content.
func (r *Range) CloneContents() linkharvest.Element {
	return r.page.element(r.clone())
}

func (r *Range) clone() *html.Node {
	frag := &html.Node{Type: html.DocumentNode}
	if r.Collapsed() {
		return frag
	}
	if r.start.node == r.end.node && isCharacterData(r.start.node) {
		frag.AppendChild(&html.Node{
			Type: r.start.node.Type,
			Data: r.start.node.Data[r.start.offset:r.end.offset],
		})
		return frag
	}
	r.cloneChildren(r.commonAncestorNode(), frag)
	return frag
}

func (r *Range) cloneChildren(parent, into *html.Node) {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case r.contains(c):
			into.AppendChild(deepClone(c))
		case r.partiallyContains(c):
			if isCharacterData(c) {
				from, to := 0, len(c.Data)
				if c == r.start.node {
					from = r.start.offset
				}
				if c == r.end.node {
					to = r.end.offset
				}
				into.AppendChild(&html.Node{Type: c.Type, Data: c.Data[from:to]})
				continue
			}
			shallow := shallowClone(c)
			into.AppendChild(shallow)
			r.cloneChildren(c, shallow)
		}
	}
}

// Text returns the selected text with block boundaries as line breaks.
func (r *Range) Text() string {
	var w textWriter
	w.write(r.clone())
	return w.b.String()
}

// SelectText selects the first occurrence of quote in the body text.
// Returns ENOTFOUND when the quote does not occur.
func (p *Page) SelectText(quote string) (*Range, error) {
	if quote == "" {
		return nil, linkharvest.Errorf(linkharvest.EINVALID, "empty quote")
	}

	type segment struct {
		node  *html.Node
		start int
	}
	var segments []segment
	var text strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipText(n) {
			return
		}
		if n.Type == html.TextNode {
			segments = append(segments, segment{node: n, start: text.Len()})
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if body := p.Body(); body != nil {
		walk(body.(*Element).node)
	}

	idx := strings.Index(text.String(), quote)
	if idx < 0 {
		return nil, linkharvest.Errorf(linkharvest.ENOTFOUND, "text %q not found on page", quote)
	}
	end := idx + len(quote)

	r := &Range{page: p}
	for _, s := range segments {
		segEnd := s.start + len(s.node.Data)
		if r.start.node == nil && idx < segEnd {
			r.start = boundary{node: s.node, offset: idx - s.start}
		}
		if end <= segEnd {
			r.end = boundary{node: s.node, offset: end - s.start}
			break
		}
	}
	return r, nil
}

// SelectNodes selects from the start of the first element matching from to
// the end of the first element matching to.
func (p *Page) SelectNodes(from, to string) (*Range, error) {
	doc := p.Document()

	first := func(selector string) (*html.Node, error) {
		matches, err := doc.QueryAll(selector)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, linkharvest.Errorf(linkharvest.ENOTFOUND, "no element matches %q", selector)
		}
		return matches[0].(*Element).node, nil
	}

	startNode, err := first(from)
	if err != nil {
		return nil, err
	}
	endNode, err := first(to)
	if err != nil {
		return nil, err
	}

	r := &Range{
		page:  p,
		start: boundary{node: startNode.Parent, offset: childIndex(startNode)},
		end:   boundary{node: endNode.Parent, offset: childIndex(endNode) + 1},
	}
	if r.compare(r.start, r.end) > 0 {
		return nil, linkharvest.Errorf(linkharvest.EINVALID, "%q starts after %q ends", from, to)
	}
	return r, nil
}

func isCharacterData(n *html.Node) bool {
	return n.Type == html.TextNode || n.Type == html.CommentNode
}

func nodeLength(n *html.Node) int {
	if isCharacterData(n) {
		return len(n.Data)
	}
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		i++
	}
	return i
}

func isInclusiveAncestor(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

func shallowClone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	return c
}

func deepClone(n *html.Node) *html.Node {
	c := shallowClone(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(deepClone(child))
	}
	return c
}

func skipText(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template:
		return true
	}
	return false
}

func isBlock(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Dd, atom.Div,
		atom.Dl, atom.Dt, atom.Fieldset, atom.Figcaption, atom.Figure, atom.Footer,
		atom.Form, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Header,
		atom.Hr, atom.Li, atom.Main, atom.Nav, atom.Ol, atom.P, atom.Pre, atom.Section,
		atom.Table, atom.Td, atom.Th, atom.Tr, atom.Ul:
		return true
	}
	return false
}

// textWriter renders nodes as plain text. Block boundaries become a single
// pending line break, emitted only between pieces of text.
type textWriter struct {
	b       strings.Builder
	pending bool
}

func (w *textWriter) text(s string) {
	if s == "" {
		return
	}
	if w.pending && w.b.Len() > 0 && !strings.HasSuffix(w.b.String(), "\n") {
		w.b.WriteByte('\n')
	}
	w.pending = false
	w.b.WriteString(s)
}

func (w *textWriter) write(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if skipText(n) {
			return
		}
		if n.DataAtom == atom.Br {
			w.text("\n")
			return
		}
	}
	block := n.Type == html.ElementNode && isBlock(n)
	if block {
		w.pending = true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.write(c)
	}
	if block {
		w.pending = true
	}
}
