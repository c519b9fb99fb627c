package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/crawl"
	"github.com/fwojciec/linkharvest/fs"
)

// noLinksMessage is printed when a harvest finds nothing. Finding nothing is
// not an error.
const noLinksMessage = "No links found."

// report is the printable form of a harvest.
type report struct {
	Mode  linkharvest.Mode `json:"mode,omitempty"`
	Page  string           `json:"page,omitempty"`
	URLs  []string         `json:"urls"`
	Pages []pageReport     `json:"pages,omitempty"`
}

// pageReport is the per-source part of a batch scan report.
type pageReport struct {
	Source string   `json:"source"`
	URLs   []string `json:"urls"`
	Error  string   `json:"error,omitempty"`
}

// emit writes r to the output file or stdout.
func (d *Dependencies) emit(r report) error {
	if r.URLs == nil {
		r.URLs = []string{}
	}

	if d.Output.Path != "" {
		if err := fs.WriteURLs(d.Output.Path, r.URLs); err != nil {
			fmt.Fprintf(d.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(d.Stdout, "Wrote %s to %s\n", crawl.FormatCount(len(r.URLs)), d.Output.Path)
		return nil
	}

	if d.Output.Format == "json" {
		enc := json.NewEncoder(d.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	for _, u := range r.URLs {
		fmt.Fprintln(d.Stdout, u)
	}
	return nil
}

// finish prints a single harvest result and stores it when it succeeded.
func (d *Dependencies) finish(pageURL string, result *linkharvest.Result) error {
	if result == nil || !result.Success {
		var err error
		if result != nil {
			err = result.Err
		}
		return d.fail(err)
	}

	if err := d.emit(report{Mode: result.Mode, Page: pageURL, URLs: result.URLs}); err != nil {
		return err
	}
	return d.save(result.Mode, pageURL, result.URLs)
}

// fail reports a failed harvest. An empty harvest prints an informational
// line and is not an error.
func (d *Dependencies) fail(err error) error {
	if err == nil || linkharvest.ErrorCode(err) == linkharvest.ENOTFOUND {
		fmt.Fprintln(d.Stdout, noLinksMessage)
		return nil
	}
	fmt.Fprintf(d.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
	return err
}

// save stores a successful harvest unless saving is disabled.
func (d *Dependencies) save(mode linkharvest.Mode, pageURL string, urls []string) error {
	if d.Output.NoSave || d.Store == nil {
		return nil
	}
	rec := &linkharvest.Record{Mode: mode, PageURL: pageURL, URLs: urls}
	if err := d.Store.SaveResult(d.Ctx, rec); err != nil {
		fmt.Fprintf(d.Stderr, "error: failed to save result: %s\n", linkharvest.ErrorMessage(err))
		return err
	}
	return nil
}
