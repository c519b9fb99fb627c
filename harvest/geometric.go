package harvest

import "github.com/fwojciec/linkharvest"

// ExtractFromRect returns the http(s) targets of the links whose rendered
// box intersects rect, resolved against base. Links without captured
// geometry or with unusable targets are skipped.
func ExtractFromRect(base string, rect linkharvest.Rect, links []linkharvest.Element) []string {
	res := newResolver(base)
	var c candidates
	for _, link := range links {
		box, ok := link.BoundingBox()
		if !ok || !rect.Intersects(box) {
			continue
		}
		if u, ok := res.resolve(link); ok {
			c.add(u)
		}
	}
	return c.urls
}
