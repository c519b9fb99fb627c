package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/goquery"
	"github.com/fwojciec/linkharvest/mock"
	lhslog "github.com/fwojciec/linkharvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage(t *testing.T) linkharvest.Page {
	t.Helper()
	page, err := goquery.Parse(`<html><body></body></html>`, "https://example.com/docs")
	require.NoError(t, err)
	return page
}

func TestLoggingHarvester(t *testing.T) {
	t.Parallel()

	t.Run("logs successful scans at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := linkharvest.Succeed(linkharvest.ModePage, []string{"https://example.com/a", "https://example.com/b"})
		inner := &mock.Harvester{
			ScanPageFn: func(linkharvest.Page) *linkharvest.Result { return want },
		}

		h := lhslog.NewLoggingHarvester(inner, logger)
		got := h.ScanPage(testPage(t))

		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=harvest")
		assert.Contains(t, output, "mode=page")
		assert.Contains(t, output, "page=https://example.com/docs")
		assert.Contains(t, output, "urls=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs empty results at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Harvester{
			HarvestSelectionFn: func(linkharvest.Page) *linkharvest.Result {
				return linkharvest.Fail(linkharvest.ModeSelection, linkharvest.Errorf(linkharvest.ENOTFOUND, "no links found"))
			},
		}

		h := lhslog.NewLoggingHarvester(inner, logger)
		h.HarvestSelection(testPage(t))

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "reason=\"no links found\"")
	})

	t.Run("logs failures at warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Harvester{
			HarvestRectFn: func(linkharvest.Page, linkharvest.Rect) *linkharvest.Result {
				return linkharvest.Fail(linkharvest.ModeRectangle, linkharvest.Errorf(linkharvest.ENOTARGET, "no page to harvest"))
			},
		}

		h := lhslog.NewLoggingHarvester(inner, logger)
		h.HarvestRect(nil, linkharvest.Rect{Right: 10, Bottom: 10})

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "mode=rectangle")
		assert.Contains(t, output, "rect=")
		assert.Contains(t, output, "no page to harvest")
	})
}

func TestLoggingOverlay(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var shown []linkharvest.Rect
	hidden := false
	inner := &mock.Overlay{
		ShowFn: func(r linkharvest.Rect) { shown = append(shown, r) },
		HideFn: func() { hidden = true },
	}

	o := lhslog.NewLoggingOverlay(inner, logger)
	o.Show(linkharvest.Rect{Left: 10, Top: 20, Right: 40, Bottom: 60})
	o.Hide()

	assert.Equal(t, []linkharvest.Rect{{Left: 10, Top: 20, Right: 40, Bottom: 60}}, shown)
	assert.True(t, hidden)
	output := buf.String()
	assert.Contains(t, output, "width=30")
	assert.Contains(t, output, "height=40")
	assert.Contains(t, output, "overlay hidden")
}

func TestLoggingOverlay_WithoutInner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	o := lhslog.NewLoggingOverlay(nil, logger)
	o.Show(linkharvest.Rect{})
	o.Hide()

	assert.Contains(t, buf.String(), "msg=overlay")
}
