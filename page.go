package linkharvest

import "context"

// Snapshot annotations written by live renderers and read back by parsers.
const (
	// BoxAttr holds an element's viewport bounding box as
	// "left top right bottom".
	BoxAttr = "data-linkharvest-box"

	// SelectionStartMarker and SelectionEndMarker are comment bodies placed
	// at the boundaries of the active text selection.
	SelectionStartMarker = "linkharvest:selection-start"
	SelectionEndMarker   = "linkharvest:selection-end"
)

// Element is a read-only view of one node in a page snapshot.
// Implementations must return the same comparable value every time the
// same underlying node is visited, so elements can be used as map keys.
type Element interface {
	// Tag returns the lower-case tag name, or "" for document and
	// fragment roots.
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// BoundingBox returns the rendered box in viewport coordinates.
	// Returns false when no geometry was captured for the element.
	BoundingBox() (Rect, bool)

	// Parent returns the parent element, or nil at the root.
	Parent() Element

	// Children returns the element children in document order.
	Children() []Element

	// Matches reports whether the element matches a CSS selector.
	// Returns an EINVALID error for a selector that cannot be compiled.
	Matches(selector string) (bool, error)

	// QueryAll returns all descendants matching a CSS selector in
	// document order. Returns an EINVALID error for a selector that
	// cannot be compiled.
	QueryAll(selector string) ([]Element, error)
}

// TextRange is a contiguous selection in a page snapshot, delimited by two
// boundary points.
type TextRange interface {
	// Collapsed reports whether the start and end boundaries coincide.
	Collapsed() bool

	// Text returns the selected text. Block boundaries are rendered as
	// line breaks.
	Text() string

	// CommonAncestor returns the deepest element containing both
	// boundaries.
	CommonAncestor() Element

	// CloneContents returns a detached fragment holding a copy of the
	// selected content. Partially selected ancestors are copied without
	// their unselected children.
	CloneContents() Element

	// Intersects reports whether any part of el lies within the range.
	Intersects(el Element) bool
}

// Page is an immutable snapshot of a rendered document.
type Page interface {
	// URL returns the base URL used to resolve relative links.
	URL() string

	// Document returns the root of the snapshot.
	Document() Element

	// Body returns the body element, or nil when the page structure
	// cannot be queried.
	Body() Element

	// Selection returns the active text selection, or nil.
	Selection() TextRange

	// HTML serializes the snapshot.
	HTML() (string, error)
}

// PageSource produces page snapshots from URLs or local files.
type PageSource interface {
	Load(ctx context.Context, source string) (Page, error)
}

// ContentLocator selects the element subtree holding a page's primary
// content.
type ContentLocator interface {
	// Locate returns the main content root. Implementations fall back to
	// the page body and never return nil for a page with a body.
	Locate(page Page) Element
}

// Overlay is the transient visual affordance shown while a rectangle is
// being dragged.
type Overlay interface {
	Show(rect Rect)
	Hide()
}
