package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.ScrapeService = (*ScrapeService)(nil)

// ScrapeService is a mock implementation of harvest.ScrapeService.
type ScrapeService struct {
	ScrapeFn func(ctx context.Context, url string) (*harvest.Record, error)
}

func (s *ScrapeService) Scrape(ctx context.Context, url string) (*harvest.Record, error) {
	return s.ScrapeFn(ctx, url)
}
