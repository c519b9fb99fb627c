package harvest_test

import (
	"testing"

	"github.com/fwojciec/linkharvest/goquery"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://example.com/docs/page"

func parse(t *testing.T, html string) *goquery.Page {
	t.Helper()
	page, err := goquery.Parse(html, pageURL)
	require.NoError(t, err)
	return page
}
