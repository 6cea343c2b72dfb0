// Package slog provides logging decorators for harvest service interfaces
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/harvest"
)

var _ harvest.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a harvest.Fetcher and logs each fetch with its
// outcome, size, and duration.
type LoggingFetcher struct {
	inner  harvest.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a LoggingFetcher wrapping inner.
func NewLoggingFetcher(inner harvest.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{inner: inner, logger: logger}
}

// Fetch delegates to the inner fetcher and logs the result.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()

	html, err := f.inner.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch", "url", url, "duration", time.Since(start), "err", err)
		return "", err
	}

	f.logger.Info("fetch", "url", url, "bytes", len(html), "duration", time.Since(start))
	return html, nil
}
