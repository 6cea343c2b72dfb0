package harvest

import (
	"context"
	"time"
)

// Record status values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// MaxListLimit is the largest number of records a listing returns.
const MaxListLimit = 100

// Link is a hyperlink extracted from a page. Href is always an absolute URL.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is an image reference extracted from a page. Src is always an
// absolute URL.
type Image struct {
	Alt string `json:"alt"`
	Src string `json:"src"`
}

// Headings groups heading text by level, in document order.
type Headings struct {
	H1 []string `json:"h1"`
	H2 []string `json:"h2"`
	H3 []string `json:"h3"`
}

// Record is the persisted outcome of a single scrape attempt. A failed
// record carries empty collections and an error message; a successful record
// never carries an error message.
type Record struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Headings    Headings  `json:"headings"`
	Links       []Link    `json:"links"`
	Images      []Image   `json:"images"`
	Paragraphs  []string  `json:"paragraphs"`
	Status      string    `json:"status"`
	ErrorMsg    string    `json:"errorMessage,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Status != StatusSuccess && r.Status != StatusFailed {
		return Errorf(EINVALID, "record status must be %q or %q", StatusSuccess, StatusFailed)
	}
	if r.Status == StatusSuccess && r.ErrorMsg != "" {
		return Errorf(EINVALID, "successful record cannot carry an error message")
	}
	return nil
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	// Limit bounds the number of returned records. Zero means MaxListLimit;
	// values above MaxListLimit are clamped.
	Limit int `json:"limit"`
}

// RecordService represents a service for managing scrape records. The
// service owns identity and creation timestamps.
type RecordService interface {
	// CreateRecord persists a new record, assigning its ID and CreatedAt.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, most recent first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}
