package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkharvest"
)

// Ensure LoggingHarvester implements linkharvest.Harvester.
var _ linkharvest.Harvester = (*LoggingHarvester)(nil)

// LoggingHarvester wraps a Harvester, logging the outcome of every harvest.
// Empty results log at debug level; other failures at warn.
type LoggingHarvester struct {
	next   linkharvest.Harvester
	logger *slog.Logger
}

// NewLoggingHarvester creates a new LoggingHarvester.
func NewLoggingHarvester(next linkharvest.Harvester, logger *slog.Logger) *LoggingHarvester {
	return &LoggingHarvester{next: next, logger: logger}
}

func (h *LoggingHarvester) ScanPage(page linkharvest.Page) (result *linkharvest.Result) {
	defer h.log(page, time.Now(), &result)
	return h.next.ScanPage(page)
}

func (h *LoggingHarvester) HarvestSelection(page linkharvest.Page) (result *linkharvest.Result) {
	defer h.log(page, time.Now(), &result)
	return h.next.HarvestSelection(page)
}

func (h *LoggingHarvester) HarvestRect(page linkharvest.Page, rect linkharvest.Rect) (result *linkharvest.Result) {
	defer h.log(page, time.Now(), &result, "rect", rect)
	return h.next.HarvestRect(page, rect)
}

func (h *LoggingHarvester) log(page linkharvest.Page, begin time.Time, result **linkharvest.Result, extra ...any) {
	r := *result
	if r == nil {
		return
	}
	pageURL := ""
	if page != nil {
		pageURL = page.URL()
	}

	args := []any{
		"mode", r.Mode,
		"page", pageURL,
		"urls", len(r.URLs),
		"duration", time.Since(begin),
	}
	args = append(args, extra...)

	switch {
	case r.Success:
		h.logger.Info("harvest", args...)
	case linkharvest.ErrorCode(r.Err) == linkharvest.ENOTFOUND:
		h.logger.Debug("harvest", append(args, "reason", r.Reason())...)
	default:
		h.logger.Warn("harvest", append(args, "err", r.Err)...)
	}
}
