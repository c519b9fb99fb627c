package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/harvest"
)

// Run executes the clean command. Inputs come from arguments, or one per
// line from stdin when no arguments are given.
func (c *CleanCmd) Run(deps *Dependencies) error {
	inputs := c.URLs
	if len(inputs) == 0 {
		lines, err := readLines(deps)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", linkharvest.ErrorMessage(err))
			return err
		}
		inputs = lines
	}

	var urls []string
	for _, in := range inputs {
		raw, ok := c.candidate(in)
		if !ok {
			continue
		}
		cleaned, err := deps.Normalizer.Normalize(raw)
		if err != nil {
			deps.Logger.Debug("keeping URL as is", "url", raw, "err", err)
			cleaned = raw
		}
		urls = append(urls, cleaned)
	}

	if len(urls) == 0 {
		return deps.fail(nil)
	}
	return deps.emit(report{URLs: urls})
}

// candidate returns the URL to clean from one input.
func (c *CleanCmd) candidate(in string) (string, bool) {
	if c.Text {
		return harvest.FirstURL(in)
	}
	in = strings.TrimSpace(in)
	return in, in != ""
}

func readLines(deps *Dependencies) ([]string, error) {
	if deps.Stdin == nil {
		return nil, nil
	}
	var lines []string
	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
