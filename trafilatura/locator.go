// Package trafilatura locates main content with go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Locator implements linkharvest.ContentLocator at compile time.
var _ linkharvest.ContentLocator = (*Locator)(nil)

// Locator extracts a page's main content with go-trafilatura, keeping
// links, and returns it as a separate tree.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the body of the extracted content, or the page body when
// extraction finds nothing.
func (l *Locator) Locate(page linkharvest.Page) linkharvest.Element {
	content, err := l.extract(page)
	if err != nil || content == nil {
		return page.Body()
	}
	return content
}

func (l *Locator) extract(page linkharvest.Page) (linkharvest.Element, error) {
	rawHTML, err := page.HTML()
	if err != nil {
		return nil, err
	}
	if rawHTML == "" {
		return nil, linkharvest.Errorf(linkharvest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
	}
	if u, err := url.Parse(page.URL()); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, linkharvest.Errorf(linkharvest.ENOTFOUND, "no main content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	extracted, err := goquery.Parse(contentHTML, page.URL())
	if err != nil {
		return nil, err
	}
	return extracted.Body(), nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
