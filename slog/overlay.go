package slog

import (
	"log/slog"

	"github.com/fwojciec/linkharvest"
)

// Ensure LoggingOverlay implements linkharvest.Overlay.
var _ linkharvest.Overlay = (*LoggingOverlay)(nil)

// LoggingOverlay stands in for a visual overlay in headless runs by logging
// the rectangle at debug level. A nil next draws nothing.
type LoggingOverlay struct {
	next   linkharvest.Overlay
	logger *slog.Logger
}

// NewLoggingOverlay creates a new LoggingOverlay.
func NewLoggingOverlay(next linkharvest.Overlay, logger *slog.Logger) *LoggingOverlay {
	return &LoggingOverlay{next: next, logger: logger}
}

func (o *LoggingOverlay) Show(rect linkharvest.Rect) {
	o.logger.Debug("overlay",
		"left", rect.Left,
		"top", rect.Top,
		"width", rect.Width(),
		"height", rect.Height(),
	)
	if o.next != nil {
		o.next.Show(rect)
	}
}

func (o *LoggingOverlay) Hide() {
	o.logger.Debug("overlay hidden")
	if o.next != nil {
		o.next.Hide()
	}
}
