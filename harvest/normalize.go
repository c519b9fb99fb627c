package harvest

import (
	"net/url"
	"strings"

	"github.com/fwojciec/linkharvest"
)

// Ensure Normalizer implements linkharvest.URLNormalizer at compile time.
var _ linkharvest.URLNormalizer = (*Normalizer)(nil)

// Normalizer strips tracking parameters from URLs. Everything outside the
// query is left byte-for-byte intact, and surviving query pairs keep their
// order and encoding.
type Normalizer struct {
	params linkharvest.TrackingParams
}

// NewNormalizer returns a Normalizer that removes params.
func NewNormalizer(params linkharvest.TrackingParams) *Normalizer {
	return &Normalizer{params: params}
}

// Normalize returns raw without tracking parameters. Malformed input is
// returned unchanged together with an EINVALID error, so callers can fall
// back to the original string.
func (n *Normalizer) Normalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return raw, linkharvest.Errorf(linkharvest.EINVALID, "malformed URL %q: %v", raw, err)
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return raw, linkharvest.Errorf(linkharvest.EINVALID, "not an absolute URL: %q", raw)
	}

	rest, fragment, hasFragment := strings.Cut(raw, "#")
	prefix, query, hasQuery := strings.Cut(rest, "?")
	if !hasQuery {
		return raw, nil
	}

	var kept []string
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if n.params.Has(key) {
			continue
		}
		kept = append(kept, pair)
	}

	var b strings.Builder
	b.WriteString(prefix)
	if len(kept) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(kept, "&"))
	}
	if hasFragment {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String(), nil
}
