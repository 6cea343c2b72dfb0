package harvest

import "context"

// ScrapeService runs the scrape pipeline for a single URL: validation,
// fetch, extraction, shaping, and persistence of the resulting record.
//
// On failure it returns a *ScrapeError describing what went wrong; a
// failure record is persisted best-effort before the error is returned.
type ScrapeService interface {
	Scrape(ctx context.Context, url string) (*Record, error)
}
