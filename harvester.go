package linkharvest

// Mode identifies how a harvest acquired its links.
type Mode string

// Acquisition modes.
const (
	ModePage      Mode = "page"
	ModeSelection Mode = "selection"
	ModeRectangle Mode = "rectangle"
)

// Result is the outcome of one harvest. A successful result always holds
// at least one URL; a failed result holds none and carries the reason in Err.
type Result struct {
	Mode    Mode
	Success bool
	URLs    []string
	Err     error
}

// Succeed returns a successful result for urls.
func Succeed(mode Mode, urls []string) *Result {
	return &Result{Mode: mode, Success: true, URLs: urls}
}

// Fail returns a failed result with no URLs.
func Fail(mode Mode, err error) *Result {
	return &Result{Mode: mode, URLs: []string{}, Err: err}
}

// Reason returns the human-readable failure reason, or "" on success.
func (r *Result) Reason() string {
	return ErrorMessage(r.Err)
}

// Harvester collects normalized link URLs from a page snapshot.
type Harvester interface {
	// ScanPage harvests every link in the page's main content that is not
	// inside a boilerplate region.
	ScanPage(page Page) *Result

	// HarvestSelection harvests links inside or overlapping the page's
	// active text selection, plus URLs written out in the selected text.
	HarvestSelection(page Page) *Result

	// HarvestRect harvests links whose rendered box intersects rect, plus
	// URLs written out in any active text selection.
	HarvestRect(page Page, rect Rect) *Result
}

// URLNormalizer canonicalizes URLs.
type URLNormalizer interface {
	// Normalize returns raw with tracking parameters removed. A malformed
	// raw value is returned unchanged together with an EINVALID error.
	Normalize(raw string) (string, error)
}
