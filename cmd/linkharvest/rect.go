package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/harvest"
)

// Run executes the rect command. The drag is replayed through a capture
// session: press at --from, move and release at --to.
func (c *RectCmd) Run(deps *Dependencies) error {
	from, err := parsePoint(c.From)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}
	to, err := parsePoint(c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}

	page, err := deps.Source.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}

	capture := harvest.NewCapture(deps.Harvester, page, deps.Overlay)
	defer capture.Dispose()

	capture.Press(from, harvest.PrimaryButton)
	capture.Move(to)
	result, ok := capture.Release(to)
	if !ok {
		fmt.Fprintln(deps.Stdout, noLinksMessage)
		return nil
	}
	return deps.finish(page.URL(), result)
}

// parsePoint reads "X,Y".
func parsePoint(s string) (linkharvest.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return linkharvest.Point{}, linkharvest.Errorf(linkharvest.EINVALID, "invalid point %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return linkharvest.Point{}, linkharvest.Errorf(linkharvest.EINVALID, "invalid point %q: want X,Y", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return linkharvest.Point{}, linkharvest.Errorf(linkharvest.EINVALID, "invalid point %q: want X,Y", s)
	}
	return linkharvest.Point{X: x, Y: y}, nil
}
