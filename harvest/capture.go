package harvest

import "github.com/fwojciec/linkharvest"

// CaptureState is the phase of a rectangle capture.
type CaptureState int

// Capture states.
const (
	CaptureIdle CaptureState = iota
	CaptureCapturing
	CaptureCompleted
	CaptureCancelled
)

func (s CaptureState) String() string {
	switch s {
	case CaptureIdle:
		return "idle"
	case CaptureCapturing:
		return "capturing"
	case CaptureCompleted:
		return "completed"
	case CaptureCancelled:
		return "cancelled"
	}
	return "unknown"
}

// PrimaryButton is the pointer button that starts a capture.
const PrimaryButton = 0

// Capture is a single rectangle capture session driven by pointer events.
// Events arriving in a state that does not expect them are ignored.
// A Capture is not safe for concurrent use.
type Capture struct {
	harvester linkharvest.Harvester
	page      linkharvest.Page
	overlay   linkharvest.Overlay

	state  CaptureState
	origin linkharvest.Point
	rect   linkharvest.Rect
}

// NewCapture returns an idle capture that harvests page with h. A nil
// overlay draws nothing.
func NewCapture(h linkharvest.Harvester, page linkharvest.Page, overlay linkharvest.Overlay) *Capture {
	if overlay == nil {
		overlay = noopOverlay{}
	}
	return &Capture{harvester: h, page: page, overlay: overlay}
}

// State returns the current state.
func (c *Capture) State() CaptureState {
	return c.state
}

// Rect returns the rectangle dragged so far.
func (c *Capture) Rect() linkharvest.Rect {
	return c.rect
}

// Press starts capturing at p. It reports whether the capture started;
// presses of other buttons or outside the idle state are ignored.
func (c *Capture) Press(p linkharvest.Point, button int) bool {
	if c.state != CaptureIdle || button != PrimaryButton {
		return false
	}
	c.state = CaptureCapturing
	c.origin = p
	c.rect = linkharvest.RectFromPoints(p, p)
	c.overlay.Show(c.rect)
	return true
}

// Move extends the rectangle to p and redraws the overlay.
func (c *Capture) Move(p linkharvest.Point) {
	if c.state != CaptureCapturing {
		return
	}
	c.rect = linkharvest.RectFromPoints(c.origin, p)
	c.overlay.Show(c.rect)
}

// Release completes the capture at p and harvests the rectangle. The result
// is returned only when it holds links; ok is false otherwise.
func (c *Capture) Release(p linkharvest.Point) (result *linkharvest.Result, ok bool) {
	if c.state != CaptureCapturing {
		return nil, false
	}
	c.overlay.Hide()
	c.rect = linkharvest.RectFromPoints(c.origin, p)
	c.state = CaptureCompleted

	result = c.harvester.HarvestRect(c.page, c.rect)
	if result == nil || !result.Success {
		return nil, false
	}
	return result, true
}

// Cancel abandons an active capture without harvesting.
func (c *Capture) Cancel() {
	if c.state != CaptureCapturing {
		return
	}
	c.overlay.Hide()
	c.state = CaptureCancelled
	c.rect = linkharvest.Rect{}
}

// Dispose releases the capture. It is safe to call more than once.
func (c *Capture) Dispose() {
	c.Cancel()
}

type noopOverlay struct{}

func (noopOverlay) Show(linkharvest.Rect) {}
func (noopOverlay) Hide()                 {}
