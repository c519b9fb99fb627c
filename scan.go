package linkharvest

import "context"

// ScanResult pairs a page source with the outcome of scanning it.
type ScanResult struct {
	Source string
	Result *Result
}

// ScanProgress reports progress during batch page scans.
type ScanProgress struct {
	Source    string
	Completed int
	Total     int
	Result    *Result
}

// ScanProgressFunc is called as pages are scanned.
type ScanProgressFunc func(ScanProgress)

// PageScanner runs page scans over many sources.
// Implementations hide loading, concurrency and rate limiting.
type PageScanner interface {
	// ScanAll returns one result per source, in the order of sources.
	// A source that cannot be loaded yields a failed result rather than an
	// error; the error return is reserved for cancellation.
	ScanAll(ctx context.Context, sources []string, progress ScanProgressFunc) ([]*ScanResult, error)
}
