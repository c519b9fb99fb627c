package main

import (
	"fmt"

	"github.com/fwojciec/linkharvest"
)

// Run executes the last command.
func (c *LastCmd) Run(deps *Dependencies) error {
	rec, err := deps.Store.LatestResult(deps.Ctx)
	if linkharvest.ErrorCode(err) == linkharvest.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No saved harvest. Run 'linkharvest scan' to create one.")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}

	if deps.Output.Format != "json" && deps.Output.Path == "" {
		page := rec.PageURL
		if page == "" {
			page = "multiple pages"
		}
		fmt.Fprintf(deps.Stderr, "%s harvest of %s at %s\n", rec.Mode, page, rec.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return deps.emit(report{Mode: rec.Mode, Page: rec.PageURL, URLs: rec.URLs})
}

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if err := deps.Store.ClearResults(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Cleared saved harvest.")
	return nil
}
