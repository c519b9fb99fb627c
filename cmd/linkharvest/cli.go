package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/linkharvest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config     linkharvest.Config
	Source     linkharvest.PageSource
	Harvester  linkharvest.Harvester
	Scanner    linkharvest.PageScanner
	Normalizer linkharvest.URLNormalizer
	Store      linkharvest.ResultStore
	Overlay    linkharvest.Overlay

	Output Output
}

// Output controls how results are written.
type Output struct {
	// Format is "text" or "json".
	Format string

	// Path, when set, receives the URL list instead of stdout.
	Path string

	// NoSave skips storing successful harvests.
	NoSave bool

	// Progress reports per-page progress of batch scans on stderr.
	Progress bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to YAML configuration (env: LINKHARVEST_CONFIG)"`
	DB      string `name:"db" help:"Path to results database (env: LINKHARVEST_DB)"`
	Format  string `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
	Output  string `short:"o" help:"Write URLs to this file instead of stdout"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	NoSave  bool   `help:"Do not store the result"`
	Browser bool   `help:"Render remote pages in headless Chrome"`
	Locator string `enum:"selector,readability,trafilatura" default:"selector" help:"Main content locator (selector, readability, trafilatura)"`
	Base    string `help:"Base URL for resolving links in local files"`

	Scan   ScanCmd   `cmd:"" help:"Harvest links from the main content of pages"`
	Select SelectCmd `cmd:"" help:"Harvest links from a text selection"`
	Rect   RectCmd   `cmd:"" help:"Harvest links inside a rectangle"`
	Clean  CleanCmd  `cmd:"" help:"Strip tracking parameters from URLs"`
	Last   LastCmd   `cmd:"" help:"Show the last saved harvest"`
	Clear  ClearCmd  `cmd:"" help:"Delete the saved harvest"`
	Show   ShowCmd   `cmd:"" name:"config" help:"Print the effective configuration"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Sources     []string `arg:"" help:"URLs or local HTML files"`
	Concurrency int      `short:"c" default:"4" help:"Pages scanned at once"`
	Rate        float64  `default:"1" help:"Requests per second per domain (0 disables)"`
}

// SelectCmd is the "select" subcommand.
type SelectCmd struct {
	Source string `arg:"" help:"URL or local HTML file"`
	Quote  string `short:"q" help:"Select the first occurrence of this text"`
	From   string `help:"Select from the start of the first element matching this selector"`
	To     string `help:"Select to the end of the first element matching this selector"`
}

// RectCmd is the "rect" subcommand.
type RectCmd struct {
	Source string `arg:"" help:"URL or local HTML file"`
	From   string `required:"" help:"Drag start as X,Y in viewport pixels"`
	To     string `required:"" help:"Drag end as X,Y in viewport pixels"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	URLs []string `arg:"" optional:"" help:"URLs to clean (default: read lines from stdin)"`
	Text bool     `short:"t" help:"Clean the first URL found in each input line"`
}

// LastCmd is the "last" subcommand.
type LastCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct{}

// ShowCmd is the "config" subcommand.
type ShowCmd struct{}
