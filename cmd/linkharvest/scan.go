package main

import (
	"fmt"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/crawl"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	var progress linkharvest.ScanProgressFunc
	if deps.Output.Progress {
		progress = func(p linkharvest.ScanProgress) {
			fmt.Fprintln(deps.Stderr, crawl.FormatProgress(p))
		}
	}

	results, err := deps.Scanner.ScanAll(deps.Ctx, c.Sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}

	if len(results) == 1 {
		return deps.finish(results[0].Source, results[0].Result)
	}
	return deps.finishBatch(results)
}

// finishBatch merges the URLs of every successful page in source order.
// Failed pages are reported but do not fail the batch unless nothing
// succeeded.
func (d *Dependencies) finishBatch(results []*linkharvest.ScanResult) error {
	var (
		merged   []string
		seen     = make(map[string]struct{})
		pages    []pageReport
		firstErr error
	)
	for _, r := range results {
		page := pageReport{Source: r.Source, URLs: r.Result.URLs}
		if !r.Result.Success {
			page.Error = r.Result.Reason()
			if firstErr == nil && linkharvest.ErrorCode(r.Result.Err) != linkharvest.ENOTFOUND {
				firstErr = r.Result.Err
			}
		}
		pages = append(pages, page)

		for _, u := range r.Result.URLs {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			merged = append(merged, u)
		}
	}

	if len(merged) == 0 {
		return d.fail(firstErr)
	}

	if err := d.emit(report{Mode: linkharvest.ModePage, URLs: merged, Pages: pages}); err != nil {
		return err
	}
	return d.save(linkharvest.ModePage, "", merged)
}
