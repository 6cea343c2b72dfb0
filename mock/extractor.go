package mock

import "github.com/fwojciec/harvest"

var _ harvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of harvest.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) (harvest.Fields, error)
}

func (e *Extractor) Extract(html string, baseURL string) (harvest.Fields, error) {
	return e.ExtractFn(html, baseURL)
}
