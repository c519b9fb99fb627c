// Package readability locates main content with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Locator implements linkharvest.ContentLocator at compile time.
var _ linkharvest.ContentLocator = (*Locator)(nil)

// Locator extracts a page's article with go-readability and returns it as a
// separate tree. Readability already drops navigation and other clutter, so
// boilerplate selectors find nothing inside the result.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the body of the extracted article, or the page body when
// nothing readable is found.
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

	pageURL, err := url.Parse(page.URL())
	if err != nil {
		return nil, linkharvest.Errorf(linkharvest.EINVALID, "invalid page URL: %v", err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, linkharvest.Errorf(linkharvest.ENOTFOUND, "no readable content")
	}

	extracted, err := goquery.Parse(article.Content, page.URL())
	if err != nil {
		return nil, err
	}
	return extracted.Body(), nil
}
