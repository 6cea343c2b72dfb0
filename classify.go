package harvest

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultSuggestion points users at sites known to tolerate scraping.
const DefaultSuggestion = "Try a simpler website like https://example.com or https://httpbin.org/html"

// ScrapeError is the user-facing outcome of a failed scrape. Message is
// always safe to show verbatim; Suggestion is optional advice. Code is one
// of the application error codes (EINVALID for validation failures,
// EINTERNAL otherwise) so the route layer can map it to an HTTP status.
type ScrapeError struct {
	Code       string
	Message    string
	Suggestion string
}

// Error implements the error interface.
func (e *ScrapeError) Error() string {
	return e.Message
}

// ErrInvalidURL is the validation failure returned before any network call.
var ErrInvalidURL = &ScrapeError{
	Code:    EINVALID,
	Message: "Invalid URL format. Please provide a valid HTTP/HTTPS URL.",
}

// Classify maps a validation or fetch failure to a single user-facing
// message. It is pure and synchronous: no I/O, no retries. The first
// matching condition wins.
func Classify(err error) *ScrapeError {
	var scrapeErr *ScrapeError
	if errors.As(err, &scrapeErr) {
		return scrapeErr
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		return &ScrapeError{Code: EINTERNAL, Message: "Failed to scrape website"}
	}

	switch fetchErr.Kind {
	case FetchInvalidURL:
		return ErrInvalidURL
	case FetchHostNotFound:
		return &ScrapeError{
			Code:    EINTERNAL,
			Message: "Website not found. Please check the URL and try again.",
		}
	case FetchConnectionRefused:
		return &ScrapeError{
			Code:    EINTERNAL,
			Message: "Connection refused. The website may be down.",
		}
	case FetchTimeout:
		return &ScrapeError{
			Code:    EINTERNAL,
			Message: "Request timed out. The website is taking too long to respond.",
		}
	case FetchHTTPStatus:
		return classifyStatus(fetchErr)
	}

	return &ScrapeError{Code: EINTERNAL, Message: "Failed to scrape website"}
}

func classifyStatus(fetchErr *FetchError) *ScrapeError {
	switch fetchErr.StatusCode {
	case http.StatusForbidden:
		return &ScrapeError{
			Code:       EINTERNAL,
			Message:    "Access forbidden (403). This website blocks automated scraping.",
			Suggestion: DefaultSuggestion,
		}
	case http.StatusNotFound:
		return &ScrapeError{
			Code:    EINTERNAL,
			Message: "Page not found (404). Please check the URL.",
		}
	case http.StatusTooManyRequests:
		return &ScrapeError{
			Code:    EINTERNAL,
			Message: "Too many requests (429). Please wait a moment and try again.",
		}
	case http.StatusInternalServerError:
		return &ScrapeError{
			Code:    EINTERNAL,
			Message: "Server error (500). The website is experiencing issues.",
		}
	}

	statusText := fetchErr.StatusText
	if statusText == "" {
		statusText = "Request failed"
	}
	return &ScrapeError{
		Code:    EINTERNAL,
		Message: fmt.Sprintf("HTTP Error %d: %s", fetchErr.StatusCode, statusText),
	}
}
