package harvest

import (
	"context"
	"fmt"
)

// FetchKind tags the failure mode of a fetch so callers can classify it
// without inspecting transport internals.
type FetchKind int

// Fetch failure kinds, in rough order of how early they occur.
const (
	FetchInvalidURL FetchKind = iota
	FetchHostNotFound
	FetchConnectionRefused
	FetchTimeout
	FetchTooManyRedirects
	FetchHTTPStatus
	FetchUnknown
)

// FetchError describes a failed fetch. Kind is always set; StatusCode and
// StatusText are set only for FetchHTTPStatus.
type FetchError struct {
	Kind       FetchKind
	StatusCode int
	StatusText string
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Kind == FetchHTTPStatus {
		return fmt.Sprintf("fetch failed: HTTP %d %s", e.StatusCode, e.StatusText)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch failed: %v", e.Err)
	}
	return "fetch failed"
}

// Unwrap returns the underlying transport error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body as HTML
	// text. The context controls timeout and cancellation. Failures are
	// returned as *FetchError.
	Fetch(ctx context.Context, url string) (html string, err error)
}
