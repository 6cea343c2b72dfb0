// Command harvestd runs the scraping API server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/harvest/goquery"
	harvesthttp "github.com/fwojciec/harvest/http"
	"github.com/fwojciec/harvest/pipeline"
	harvestslog "github.com/fwojciec/harvest/slog"
	"github.com/fwojciec/harvest/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Addr    string        `default:"localhost:8080" help:"Address to listen on."`
	DB      string        `default:"harvest.db" help:"Path to the SQLite database file."`
	Timeout time.Duration `default:"15s" help:"Timeout for outbound page fetches."`
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("harvestd"),
		kong.Description("Scrape web pages into structured, persisted records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Open storage
	db := sqlite.NewDB(cli.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records := harvestslog.NewLoggingRecordService(sqlite.NewRecordService(db), logger)
	fetcher := harvestslog.NewLoggingFetcher(harvesthttp.NewFetcher(harvesthttp.WithTimeout(cli.Timeout)), logger)

	scraper := &pipeline.Scraper{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Records:   records,
		Logger:    logger,
	}

	server := harvesthttp.NewServer(cli.Addr, scraper, records, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
