package harvest

import (
	"net/url"
	"strings"

	"github.com/fwojciec/linkharvest"
)

// linkSelector matches hyperlink elements.
const linkSelector = "a[href]"

// resolver turns href attributes into absolute http(s) URLs.
type resolver struct {
	base *url.URL
}

func newResolver(base string) resolver {
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() {
		return resolver{}
	}
	return resolver{base: u}
}

// resolve returns the absolute URL of a link element. Relative hrefs are
// resolved against the base; anything that does not end up as an http(s)
// URL with a host is rejected.
func (r resolver) resolve(el linkharvest.Element) (string, bool) {
	href, ok := el.Attr("href")
	if !ok {
		return "", false
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	u := ref
	if r.base != nil {
		u = r.base.ResolveReference(ref)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" || u.Opaque != "" {
		return "", false
	}
	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), true
}

// resolveAll resolves every element, dropping failures.
func (r resolver) resolveAll(els []linkharvest.Element) []string {
	var urls []string
	for _, el := range els {
		if u, ok := r.resolve(el); ok {
			urls = append(urls, u)
		}
	}
	return urls
}
