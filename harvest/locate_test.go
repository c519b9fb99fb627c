package harvest_test

import (
	"testing"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/harvest"
	"github.com/stretchr/testify/assert"
)

func TestSelectorLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("uses the first selector with a match", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body>
<div id="main"><article id="post">post</article></div>
</body></html>`)
		l := harvest.NewSelectorLocator(linkharvest.DefaultMainSelectors)

		got := l.Locate(page)

		assert.Equal(t, first(t, page.Document(), "#post"), got)
	})

	t.Run("returns the first match in document order", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body>
<section class="content" id="one"></section>
<section class="content" id="two"></section>
</body></html>`)
		l := harvest.NewSelectorLocator([]string{".content"})

		got := l.Locate(page)

		assert.Equal(t, first(t, page.Document(), "#one"), got)
	})

	t.Run("skips invalid selectors", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body><main id="m"></main></body></html>`)
		l := harvest.NewSelectorLocator([]string{"[[", "main"})

		got := l.Locate(page)

		assert.Equal(t, first(t, page.Document(), "#m"), got)
	})

	t.Run("falls back to the body", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<html><body><div>plain</div></body></html>`)
		l := harvest.NewSelectorLocator(linkharvest.DefaultMainSelectors)

		got := l.Locate(page)

		assert.Equal(t, page.Body(), got)
	})
}
