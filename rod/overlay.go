package rod

import (
	"fmt"

	"github.com/fwojciec/linkharvest"
	"github.com/go-rod/rod"
)

// OverlayID is the id of the element drawn by Overlay.
const OverlayID = "linkharvest-overlay"

var showOverlayScript = fmt.Sprintf(`(left, top, width, height) => {
	let box = document.getElementById(%q);
	if (!box) {
		box = document.createElement('div');
		box.id = %q;
		box.style.position = 'fixed';
		box.style.border = '2px dashed #1a73e8';
		box.style.background = 'rgba(26, 115, 232, 0.08)';
		box.style.pointerEvents = 'none';
		box.style.zIndex = '2147483647';
		document.documentElement.appendChild(box);
	}
	box.style.left = left + 'px';
	box.style.top = top + 'px';
	box.style.width = width + 'px';
	box.style.height = height + 'px';
}`, OverlayID, OverlayID)

var hideOverlayScript = fmt.Sprintf(`() => {
	const box = document.getElementById(%q);
	if (box) box.remove();
}`, OverlayID)

// Ensure Overlay implements linkharvest.Overlay at compile time.
var _ linkharvest.Overlay = (*Overlay)(nil)

// Overlay draws the dashed capture rectangle into a live page.
// Drawing failures are kept and reported by Err.
type Overlay struct {
	page *rod.Page
	err  error
}

// NewOverlay returns an Overlay drawing into page.
func NewOverlay(page *rod.Page) *Overlay {
	return &Overlay{page: page}
}

// Show draws or moves the rectangle.
func (o *Overlay) Show(rect linkharvest.Rect) {
	_, err := o.page.Eval(showOverlayScript, rect.Left, rect.Top, rect.Width(), rect.Height())
	o.record(err)
}

// Hide removes the rectangle.
func (o *Overlay) Hide() {
	_, err := o.page.Eval(hideOverlayScript)
	o.record(err)
}

// Err returns the first drawing error, if any.
func (o *Overlay) Err() error {
	return o.err
}

func (o *Overlay) record(err error) {
	if err != nil && o.err == nil {
		o.err = fmt.Errorf("drawing overlay: %w", err)
	}
}
