package crawl

import (
	"fmt"

	"github.com/fwojciec/linkharvest"
)

// progressURLWidth is the display width of sources in progress lines.
const progressURLWidth = 60

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatProgress renders a progress event as a single status line.
func FormatProgress(p linkharvest.ScanProgress) string {
	prefix := fmt.Sprintf("[%d/%d] %s", p.Completed, p.Total, TruncateURL(p.Source, progressURLWidth))
	switch {
	case p.Result == nil:
		return prefix
	case p.Result.Success:
		return fmt.Sprintf("%s: %s", prefix, FormatCount(len(p.Result.URLs)))
	default:
		return fmt.Sprintf("%s: %s", prefix, p.Result.Reason())
	}
}

// FormatCount formats a link count in human-readable form.
func FormatCount(n int) string {
	if n == 1 {
		return "1 link"
	}
	return fmt.Sprintf("%d links", n)
}
