package harvest

import (
	"regexp"
	"strings"
)

// urlPattern matches an http(s) URL up to whitespace or a closing delimiter.
var urlPattern = regexp.MustCompile(`(?i)https?://[^\s\p{Z}"')<>]+`)

// ExtractFromText returns the URLs written out in text, deduplicated in
// order of first occurrence. Matching is heuristic: URLs split across markup
// are missed and trailing punctuation may be kept.
func ExtractFromText(text string) []string {
	var c candidates
	for _, m := range urlPattern.FindAllString(text, -1) {
		c.add(strings.TrimSpace(m))
	}
	return c.urls
}

// FirstURL returns the first URL written out in text.
func FirstURL(text string) (string, bool) {
	m := urlPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// candidates is an insertion-ordered set of URL strings.
type candidates struct {
	seen map[string]struct{}
	urls []string
}

func (c *candidates) add(urls ...string) {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	for _, u := range urls {
		if u == "" {
			continue
		}
		if _, ok := c.seen[u]; ok {
			continue
		}
		c.seen[u] = struct{}{}
		c.urls = append(c.urls, u)
	}
}
