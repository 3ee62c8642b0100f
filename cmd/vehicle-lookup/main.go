// Command vehicle-lookup extracts listings for one or more stock numbers from
// the dealer inventory page, either live or from a saved copy.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"vehicle-lookup-api/internal/client"
	"vehicle-lookup-api/internal/extractor"
	"vehicle-lookup-api/internal/model"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface.
type CLI struct {
	Stocks      []string      `arg:"" name:"stock" help:"Stock numbers to look up."`
	File        string        `short:"f" help:"Read a saved copy of the inventory page instead of fetching it."`
	URL         string        `help:"Inventory page URL." env:"SOURCE_URL" default:"https://www.pedersentoyota.com/searchused.aspx"`
	Timeout     time.Duration `help:"Fetch timeout." default:"30s"`
	Concurrency int           `short:"c" help:"Maximum concurrent extractions." default:"4"`
	Verbose     bool          `short:"v" help:"Log extraction diagnostics to stderr."`
}

// Result is one output line
type Result struct {
	Stock   string         `json:"stock"`
	Vehicle *model.Vehicle `json:"vehicle,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP client, for tests.
	Fetcher interface {
		Fetch(ctx context.Context, url string) (string, error)
	}
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vehicle-lookup"),
		kong.Description("Extract vehicle listings by stock number from the dealer inventory page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	html, err := m.loadPage(ctx, cli, logger)
	if err != nil {
		return err
	}

	ext := extractor.New(extractor.WithLogger(logger))
	results := make([]Result, len(cli.Stocks))

	var g errgroup.Group
	if cli.Concurrency > 0 {
		g.SetLimit(cli.Concurrency)
	}
	for i, stock := range cli.Stocks {
		i, stock := i, stock
		g.Go(func() error {
			results[i] = lookup(ext, html, stock)
			return nil
		})
	}
	_ = g.Wait()

	enc := json.NewEncoder(stdout)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return nil
}

func (m *Main) loadPage(ctx context.Context, cli *CLI, logger *slog.Logger) (string, error) {
	if cli.File != "" {
		data, err := os.ReadFile(cli.File)
		if err != nil {
			return "", fmt.Errorf("read page: %w", err)
		}
		return string(data), nil
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = client.NewSourceClient(
			client.WithTimeout(cli.Timeout),
			client.WithLogger(logger),
		)
	}

	html, err := fetcher.Fetch(ctx, cli.URL)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	return html, nil
}

func lookup(ext *extractor.Extractor, html, stock string) Result {
	v, err := ext.Extract(html, stock)
	if err != nil {
		return Result{Stock: stock, Error: err.Error()}
	}
	return Result{Stock: stock, Vehicle: v}
}
