// Package pipeline wires the scraping stages together: validation, fetch,
// extraction, shaping, record building, and persistence.
package pipeline

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/harvest"
)

// Compile-time interface verification.
var _ harvest.ScrapeService = (*Scraper)(nil)

// Scraper implements harvest.ScrapeService. Each call is an independent
// unit of work with at-most-once semantics: no retries, and exactly one
// record is persisted per attempt.
type Scraper struct {
	Fetcher   harvest.Fetcher
	Extractor harvest.Extractor
	Records   harvest.RecordService
	Logger    *slog.Logger
}

// Scrape runs the full pipeline for rawURL and returns the persisted
// record. On failure it persists a failure record best-effort and returns a
// *harvest.ScrapeError; a storage hiccup never masks the scrape failure
// itself.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*harvest.Record, error) {
	url := strings.TrimSpace(rawURL)

	if !harvest.IsValidURL(url) {
		return nil, s.fail(ctx, url, harvest.ErrInvalidURL)
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, s.fail(ctx, url, err)
	}

	// Relative links resolve against the URL as requested, not against any
	// post-redirect URL. This keeps resolution deterministic.
	fields, err := s.Extractor.Extract(html, url)
	if err != nil {
		return nil, s.fail(ctx, url, err)
	}

	rec := harvest.BuildSuccessRecord(url, harvest.ShapeFields(fields))
	rec.ContentHash = hashContent(html)

	if err := s.Records.CreateRecord(ctx, rec); err != nil {
		s.Logger.Error("failed to persist scrape record", "url", url, "err", err)
		return nil, harvest.Classify(err)
	}

	s.Logger.Info("scrape succeeded",
		"url", url,
		"links", len(rec.Links),
		"images", len(rec.Images),
		"paragraphs", len(rec.Paragraphs),
	)

	return rec, nil
}

// fail classifies err, persists a failure record best-effort, and returns
// the classified error.
func (s *Scraper) fail(ctx context.Context, url string, err error) *harvest.ScrapeError {
	scrapeErr := harvest.Classify(err)

	s.Logger.Warn("scrape failed", "url", url, "message", scrapeErr.Message, "err", err)

	rec := harvest.BuildFailureRecord(url, scrapeErr)
	if createErr := s.Records.CreateRecord(ctx, rec); createErr != nil {
		// Swallowed: the caller gets the scrape failure, not a storage error.
		s.Logger.Error("failed to persist failure record", "url", url, "err", createErr)
	}

	return scrapeErr
}

// hashContent computes the xxHash of the fetched HTML, used to spot
// unchanged pages across repeated scrapes of the same URL.
func hashContent(html string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(html))
	return hex.EncodeToString(b)
}
