package main

import (
	"fmt"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/goquery"
)

// selectablePage is a page snapshot whose selection can be replaced.
type selectablePage interface {
	linkharvest.Page
	SelectText(quote string) (*goquery.Range, error)
	SelectNodes(from, to string) (*goquery.Range, error)
	SetSelection(r *goquery.Range)
}

// Run executes the select command. Without --quote or --from/--to the
// selection recorded in the snapshot is used.
func (c *SelectCmd) Run(deps *Dependencies) error {
	if err := c.validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}

	page, err := deps.Source.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}

	if c.Quote != "" || c.From != "" {
		if err := c.applySelection(page); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
			return err
		}
	}

	return deps.finish(page.URL(), deps.Harvester.HarvestSelection(page))
}

func (c *SelectCmd) validate() error {
	if c.Quote != "" && (c.From != "" || c.To != "") {
		return linkharvest.Errorf(linkharvest.EINVALID, "use either --quote or --from/--to, not both")
	}
	if (c.From == "") != (c.To == "") {
		return linkharvest.Errorf(linkharvest.EINVALID, "--from and --to must be given together")
	}
	return nil
}

func (c *SelectCmd) applySelection(page linkharvest.Page) error {
	p, ok := page.(selectablePage)
	if !ok {
		return linkharvest.Errorf(linkharvest.EINVALID, "page does not support selecting text")
	}

	var (
		r   *goquery.Range
		err error
	)
	if c.Quote != "" {
		r, err = p.SelectText(c.Quote)
	} else {
		r, err = p.SelectNodes(c.From, c.To)
	}
	if err != nil {
		return err
	}
	p.SetSelection(r)
	return nil
}
