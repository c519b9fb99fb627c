package harvest_test

import (
	"testing"

	"github.com/fwojciec/linkharvest/harvest"
	"github.com/stretchr/testify/assert"
)

func TestExtractFromText(t *testing.T) {
	t.Parallel()

	t.Run("finds URLs in running text", func(t *testing.T) {
		t.Parallel()

		text := "Read https://example.com/a and then http://example.org/b?x=1 for details."

		got := harvest.ExtractFromText(text)

		assert.Equal(t, []string{"https://example.com/a", "http://example.org/b?x=1"}, got)
	})

	t.Run("stops at quotes and brackets", func(t *testing.T) {
		t.Parallel()

		text := `(see https://example.com/a) <https://example.com/b> "https://example.com/c" 'https://example.com/d'`

		got := harvest.ExtractFromText(text)

		assert.Equal(t, []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
			"https://example.com/d",
		}, got)
	})

	t.Run("matches the scheme case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := harvest.ExtractFromText("HTTPS://EXAMPLE.COM/X")

		assert.Equal(t, []string{"HTTPS://EXAMPLE.COM/X"}, got)
	})

	t.Run("deduplicates in order of first occurrence", func(t *testing.T) {
		t.Parallel()

		text := "https://b.com/ https://a.com/ https://b.com/"

		got := harvest.ExtractFromText(text)

		assert.Equal(t, []string{"https://b.com/", "https://a.com/"}, got)
	})

	t.Run("ignores other schemes", func(t *testing.T) {
		t.Parallel()

		got := harvest.ExtractFromText("ftp://example.com/file mailto:me@example.com")

		assert.Empty(t, got)
	})

	t.Run("splits at line breaks", func(t *testing.T) {
		t.Parallel()

		got := harvest.ExtractFromText("https://a.com/x\nhttps://b.com/y")

		assert.Equal(t, []string{"https://a.com/x", "https://b.com/y"}, got)
	})
}

func TestFirstURL(t *testing.T) {
	t.Parallel()

	t.Run("returns the first URL", func(t *testing.T) {
		t.Parallel()

		got, ok := harvest.FirstURL("go to https://a.com/1 or https://b.com/2")

		assert.True(t, ok)
		assert.Equal(t, "https://a.com/1", got)
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		_, ok := harvest.FirstURL("nothing here")

		assert.False(t, ok)
	})
}
