// Package crawl runs page scans over many sources concurrently.
// It coordinates loading, per-domain rate limiting and harvesting, and
// reports progress as pages complete.
package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/linkharvest"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages scanned at once when Scanner
// does not set one.
const DefaultConcurrency = 4

// Ensure Scanner implements linkharvest.PageScanner at compile time.
var _ linkharvest.PageScanner = (*Scanner)(nil)

// Scanner scans many pages with a bounded number of workers. Each page is
// loaded into its own snapshot and harvested on a single goroutine.
type Scanner struct {
	Source      linkharvest.PageSource
	Harvester   linkharvest.Harvester
	RateLimiter linkharvest.DomainLimiter
	Concurrency int
}

// scanResult holds the outcome of scanning a single source.
type scanResult struct {
	position int
	source   string
	result   *linkharvest.Result
}

// ScanAll scans every source and returns the results in source order.
// The progress callback, if provided, is called once per completed source
// from a single goroutine.
func (s *Scanner) ScanAll(ctx context.Context, sources []string, progress linkharvest.ScanProgressFunc) ([]*linkharvest.ScanResult, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan scanResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			i, source := i, source
			g.Go(func() error {
				resultCh <- scanResult{
					position: i,
					source:   source,
					result:   s.scan(gctx, source),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*linkharvest.ScanResult, len(sources))
	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = &linkharvest.ScanResult{Source: r.source, Result: r.result}
		if progress != nil {
			progress(linkharvest.ScanProgress{
				Source:    r.source,
				Completed: completed,
				Total:     len(sources),
				Result:    r.result,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// scan loads and harvests a single source. Failures to load become failed
// results.
func (s *Scanner) scan(ctx context.Context, source string) *linkharvest.Result {
	if err := ctx.Err(); err != nil {
		return linkharvest.Fail(linkharvest.ModePage, err)
	}

	if s.RateLimiter != nil {
		if host := remoteHost(source); host != "" {
			if err := s.RateLimiter.Wait(ctx, host); err != nil {
				return linkharvest.Fail(linkharvest.ModePage, err)
			}
		}
	}

	page, err := s.Source.Load(ctx, source)
	if err != nil {
		return linkharvest.Fail(linkharvest.ModePage, err)
	}
	return s.Harvester.ScanPage(page)
}

// remoteHost returns the host of an http(s) source, or "" for anything
// else.
func remoteHost(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return strings.ToLower(u.Hostname())
	}
	return ""
}
