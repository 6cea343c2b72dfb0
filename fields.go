package harvest

// Collection caps applied by ShapeFields. Extraction itself is unbounded;
// shaping is a separate step so extraction logic and size policy can evolve
// independently.
const (
	MaxHeadingsPerLevel = 10
	MaxLinks            = 50
	MaxImages           = 20
	MaxParagraphs       = 10
)

// Placeholder values used when a page lacks the corresponding content.
const (
	NoTitle       = "No title found"
	NoDescription = "No description found"
	NoLinkText    = "No text"
	NoAltText     = "No alt text"
)

// Fields holds the structured content extracted from a single page before
// it is shaped and persisted. All collections are in document order.
type Fields struct {
	Title       string
	Description string
	Headings    Headings
	Links       []Link
	Images      []Image
	Paragraphs  []string
}

// ShapeFields bounds every collection in f to its cap, preserving order.
// It performs no other mutation and is idempotent.
func ShapeFields(f Fields) Fields {
	f.Headings.H1 = capStrings(f.Headings.H1, MaxHeadingsPerLevel)
	f.Headings.H2 = capStrings(f.Headings.H2, MaxHeadingsPerLevel)
	f.Headings.H3 = capStrings(f.Headings.H3, MaxHeadingsPerLevel)
	if len(f.Links) > MaxLinks {
		f.Links = f.Links[:MaxLinks]
	}
	if len(f.Images) > MaxImages {
		f.Images = f.Images[:MaxImages]
	}
	f.Paragraphs = capStrings(f.Paragraphs, MaxParagraphs)
	return f
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// BuildSuccessRecord assembles a record for a successful scrape. The URL is
// stored as requested, regardless of redirects followed during the fetch.
func BuildSuccessRecord(url string, fields Fields) *Record {
	return &Record{
		URL:         url,
		Title:       fields.Title,
		Description: fields.Description,
		Headings:    fields.Headings,
		Links:       fields.Links,
		Images:      fields.Images,
		Paragraphs:  fields.Paragraphs,
		Status:      StatusSuccess,
	}
}

// BuildFailureRecord assembles a record for a failed scrape attempt. Failure
// records always carry empty collections; partially-filled records are never
// produced.
func BuildFailureRecord(url string, scrapeErr *ScrapeError) *Record {
	return &Record{
		URL:         url,
		Title:       "Scraping Failed",
		Description: scrapeErr.Message,
		Headings:    Headings{H1: []string{}, H2: []string{}, H3: []string{}},
		Links:       []Link{},
		Images:      []Image{},
		Paragraphs:  []string{},
		Status:      StatusFailed,
		ErrorMsg:    scrapeErr.Message,
	}
}
