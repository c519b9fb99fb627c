package goquery

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkharvest"
)

// Ensure Loader implements linkharvest.PageSource at compile time.
var _ linkharvest.PageSource = (*Loader)(nil)

// Loader builds page snapshots from http(s) URLs through a Fetcher, or from
// local HTML files.
type Loader struct {
	// Fetcher retrieves remote pages. Required for http(s) sources.
	Fetcher linkharvest.Fetcher

	// BaseURL overrides the base URL of local files. Defaults to the
	// file's file:// URL, under which relative links do not resolve to
	// http(s) targets.
	BaseURL string
}

// Load returns a snapshot of source.
func (l *Loader) Load(ctx context.Context, source string) (linkharvest.Page, error) {
	if IsRemote(source) {
		if l.Fetcher == nil {
			return nil, linkharvest.Errorf(linkharvest.ENOTARGET, "no fetcher configured for %s", source)
		}
		rawHTML, err := l.Fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, linkharvest.Errorf(linkharvest.EACCESS, "cannot load %s: %v", source, err)
		}
		return Parse(rawHTML, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, linkharvest.Errorf(linkharvest.ENOTARGET, "cannot read %s: %v", source, err)
	}

	base := l.BaseURL
	if base == "" {
		abs, err := filepath.Abs(source)
		if err != nil {
			return nil, err
		}
		base = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	}
	return Parse(string(data), base)
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
