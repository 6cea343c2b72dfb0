// Package http provides the HTTP edges of the application: an outbound
// implementation of harvest.Fetcher and the inbound API server.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/fwojciec/harvest"
)

// DefaultFetchTimeout is the default timeout for outbound HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// MaxRedirects bounds redirect following during a fetch.
const MaxRedirects = 5

// browserHeaders mimic a desktop browser. Some sites reject requests
// carrying obvious bot fingerprints; this reduces trivial blocking.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Cache-Control":             "max-age=0",
}

var errTooManyRedirects = errors.New("stopped after 5 redirects")

// Ensure Fetcher implements harvest.Fetcher at compile time.
var _ harvest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests. It does
// not execute JavaScript and is suitable for static pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= MaxRedirects {
				return errTooManyRedirects
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. The URL is validated
// before any network call; statuses in [200,400) count as success. All
// failures are returned as *harvest.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if !harvest.IsValidURL(url) {
		return "", &harvest.FetchError{Kind: harvest.FetchInvalidURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &harvest.FetchError{Kind: harvest.FetchInvalidURL, Err: err}
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return "", &harvest.FetchError{
			Kind:       harvest.FetchHTTPStatus,
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &harvest.FetchError{Kind: harvest.FetchUnknown, Err: fmt.Errorf("reading response body: %w", err)}
	}

	return string(body), nil
}

// classifyTransportError maps a transport-level failure to a tagged
// harvest.FetchError so the classifier never inspects net internals.
func classifyTransportError(err error) *harvest.FetchError {
	kind := harvest.FetchUnknown

	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.Is(err, errTooManyRedirects):
		kind = harvest.FetchTooManyRedirects
	case errors.As(err, &dnsErr):
		kind = harvest.FetchHostNotFound
	case errors.Is(err, syscall.ECONNREFUSED):
		kind = harvest.FetchConnectionRefused
	case errors.Is(err, context.DeadlineExceeded), os.IsTimeout(err):
		kind = harvest.FetchTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = harvest.FetchTimeout
	}

	return &harvest.FetchError{Kind: kind, Err: err}
}
