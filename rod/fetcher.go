// Package rod implements linkharvest.Fetcher with a headless Chrome browser.
// Rendered pages are annotated before serialization so that geometry and the
// active selection survive into the static snapshot.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/linkharvest"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds one navigation, annotation and serialization.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPages is the number of pages rendered before the browser is
// restarted. Chrome's memory use grows with every page and never returns to
// its baseline.
const DefaultMaxPages = 75

// Default viewport size. Link boxes are measured in this viewport.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

// annotateScript records link boxes and marks the active selection with
// comments. The end marker is inserted first so the start offsets stay valid.
var annotateScript = fmt.Sprintf(`() => {
	for (const a of document.querySelectorAll('a[href]')) {
		const r = a.getBoundingClientRect();
		if (r.width === 0 && r.height === 0) continue;
		a.setAttribute(%q, [r.left, r.top, r.right, r.bottom].join(' '));
	}
	const sel = window.getSelection();
	if (!sel || sel.rangeCount === 0 || sel.isCollapsed) return;
	const range = sel.getRangeAt(0);
	const end = range.cloneRange();
	end.collapse(false);
	end.insertNode(document.createComment(%q));
	const start = range.cloneRange();
	start.collapse(true);
	start.insertNode(document.createComment(%q));
}`, linkharvest.BoxAttr, linkharvest.SelectionEndMarker, linkharvest.SelectionStartMarker)

// Ensure Fetcher implements linkharvest.Fetcher at compile time.
var _ linkharvest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered, annotated HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout  time.Duration
	width    int
	height   int
	maxPages int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithViewport sets the viewport size used to render and measure pages.
func WithViewport(width, height int) Option {
	return func(f *Fetcher) {
		f.width = width
		f.height = height
	}
}

// WithMaxPages sets how many pages are rendered before the browser is
// restarted. Defaults to DefaultMaxPages.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		width:    DefaultViewportWidth,
		height:   DefaultViewportHeight,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch renders the URL and returns its annotated HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             f.width,
		Height:            f.height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", err
	}
	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	if _, err := page.Eval(annotateScript); err != nil {
		return "", fmt.Errorf("annotating page: %w", err)
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.shutdown()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// acquire returns the browser for the next page, restarting it once it has
// rendered maxPages pages. A failed restart keeps the old browser.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, linkharvest.Errorf(linkharvest.EINVALID, "fetcher is closed")
	}

	if f.maxPages > 0 && f.pages >= f.maxPages {
		oldBrowser, oldLauncher := f.browser, f.launcher
		if err := f.launch(); err == nil {
			_ = oldBrowser.Close()
			oldLauncher.Kill()
		}
	}
	f.pages++
	return f.browser, nil
}

// launch starts a browser with flags that keep background pages rendering.
func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	f.pages = 0
	return nil
}

// shutdown closes the browser and kills its process. Must be called with mu held.
func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}
