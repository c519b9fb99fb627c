package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// joinURLs stores a URL list as one newline-separated column. URLs never
// contain raw newlines.
func joinURLs(urls []string) string {
	return strings.Join(urls, "\n")
}

func splitURLs(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, "\n")
}

// hashURLs returns a fingerprint of the ordered URL list.
func hashURLs(urls []string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(joinURLs(urls)))
}
