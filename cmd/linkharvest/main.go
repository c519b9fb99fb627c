package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/crawl"
	"github.com/fwojciec/linkharvest/goquery"
	"github.com/fwojciec/linkharvest/harvest"
	lhhttp "github.com/fwojciec/linkharvest/http"
	"github.com/fwojciec/linkharvest/readability"
	"github.com/fwojciec/linkharvest/rod"
	lhslog "github.com/fwojciec/linkharvest/slog"
	"github.com/fwojciec/linkharvest/sqlite"
	"github.com/fwojciec/linkharvest/trafilatura"
	"github.com/fwojciec/linkharvest/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Configuration file path. A missing file at this path is not an error.
	ConfigPath string

	// Stdin is read by commands that accept piped input.
	Stdin io.Reader

	// SQLite database used by the result store.
	DB *sqlite.DB

	fetcher linkharvest.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.fetcher != nil {
		err = m.fetcher.Close()
		m.fetcher = nil
	}
	if m.DB != nil {
		if dbErr := m.DB.Close(); err == nil {
			err = dbErr
		}
		m.DB = nil
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkharvest"),
		kong.Description("Harvest clean link URLs from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linkharvest --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]
	defer m.Close()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Load configuration
	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", linkharvest.ErrorMessage(err))
		return err
	}
	deps.Config = cfg

	deps.Output = Output{
		Format:   cli.Format,
		Path:     cli.Output,
		NoSave:   cli.NoSave,
		Progress: cli.Verbose || len(cli.Scan.Sources) > 1,
	}

	// Wire the harvester
	h := harvest.NewHarvester(cfg)
	switch cli.Locator {
	case "readability":
		h.Locator = readability.NewLocator()
	case "trafilatura":
		h.Locator = trafilatura.NewLocator()
	}
	deps.Harvester = lhslog.NewLoggingHarvester(h, logger)
	deps.Normalizer = h.Normalizer
	deps.Overlay = lhslog.NewLoggingOverlay(nil, logger)

	// Wire page loading for commands that read pages
	var sources []string
	switch cmd {
	case "scan":
		sources = cli.Scan.Sources
	case "select":
		sources = []string{cli.Select.Source}
	case "rect":
		sources = []string{cli.Rect.Source}
	}
	if len(sources) > 0 {
		loader := &goquery.Loader{BaseURL: cli.Base}
		if hasRemote(sources) {
			fetcher, err := m.openFetcher(cli.Browser, stderr)
			if err != nil {
				return err
			}
			loader.Fetcher = lhslog.NewLoggingFetcher(fetcher, logger)
		}
		deps.Source = loader
		deps.Scanner = &crawl.Scanner{
			Source:      loader,
			Harvester:   deps.Harvester,
			RateLimiter: crawl.NewDomainLimiter(cli.Scan.Rate),
			Concurrency: cli.Scan.Concurrency,
		}
	}

	// Open the result store for commands that save or read results
	needsStore := cmd == "last" || cmd == "clear" || (len(sources) > 0 && !cli.NoSave)
	if needsStore {
		dbPath := m.DBPath
		if cli.DB != "" {
			dbPath = cli.DB
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LINKHARVEST_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		deps.Store = lhslog.NewLoggingResultStore(sqlite.NewResultStore(m.DB), logger)
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the configuration file. A missing file is only an error
// when the path was given explicitly.
func (m *Main) loadConfig(explicit string) (linkharvest.Config, error) {
	path := m.ConfigPath
	if explicit != "" {
		path = explicit
	}
	if path == "" {
		return linkharvest.DefaultConfig(), nil
	}

	cfg, err := yaml.LoadConfig(path)
	if err != nil {
		if linkharvest.ErrorCode(err) == linkharvest.ENOTFOUND && explicit == "" {
			return linkharvest.DefaultConfig(), nil
		}
		return linkharvest.Config{}, err
	}
	return cfg, nil
}

// openFetcher starts the page fetcher. The browser fetcher needs a local
// Chrome or Chromium.
func (m *Main) openFetcher(browser bool, stderr io.Writer) (linkharvest.Fetcher, error) {
	if !browser {
		m.fetcher = lhhttp.NewFetcher()
		return m.fetcher, nil
	}
	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	m.fetcher = fetcher
	return fetcher, nil
}

func hasRemote(sources []string) bool {
	for _, s := range sources {
		if goquery.IsRemote(s) {
			return true
		}
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("LINKHARVEST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "linkharvest.db"
	}
	dir := filepath.Join(home, ".linkharvest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "linkharvest.db")
}

func defaultConfigPath() string {
	if path := os.Getenv("LINKHARVEST_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linkharvest", "config.yaml")
}
