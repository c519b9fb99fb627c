package harvest

import "github.com/fwojciec/linkharvest"

// ExtractFromRange returns the http(s) targets of links selected by r,
// resolved against base. Two strategies are combined: links present in a
// clone of the selected content, and links under the range's common
// ancestor that intersect the range, which also recovers links straddling a
// boundary. Unresolvable links are dropped. A nil or collapsed range yields
// an ENOREGION error rather than an empty result.
func ExtractFromRange(base string, r linkharvest.TextRange) ([]string, error) {
	if r == nil || r.Collapsed() {
		return nil, linkharvest.Errorf(linkharvest.ENOREGION, "no text selected")
	}

	res := newResolver(base)
	var c candidates

	if links, err := r.CloneContents().QueryAll(linkSelector); err == nil {
		c.add(res.resolveAll(links)...)
	}

	container := r.CommonAncestor()
	if container == nil {
		return c.urls, nil
	}
	for _, link := range intersectingLinks(r, container) {
		if u, ok := res.resolve(link); ok {
			c.add(u)
		}
	}
	return c.urls, nil
}

// intersectingLinks returns the links under container that intersect r.
// The container itself and its nearest enclosing link are considered too,
// so a selection made entirely inside one link's text still yields it.
func intersectingLinks(r linkharvest.TextRange, container linkharvest.Element) []linkharvest.Element {
	var scope []linkharvest.Element
	for el := container; el != nil; el = el.Parent() {
		if ok, _ := el.Matches(linkSelector); ok {
			scope = append(scope, el)
			break
		}
	}
	if descendants, err := container.QueryAll(linkSelector); err == nil {
		scope = append(scope, descendants...)
	}

	var links []linkharvest.Element
	for _, link := range scope {
		if r.Intersects(link) {
			links = append(links, link)
		}
	}
	return links
}
