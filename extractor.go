package harvest

// Extractor derives structured fields from fetched HTML. Relative link and
// image URLs are resolved against baseURL before they appear in the result;
// relative values never escape the extractor.
type Extractor interface {
	// Extract parses html and returns the structured content of the page.
	// Collections are unbounded here; callers apply ShapeFields before
	// persisting.
	Extract(html string, baseURL string) (Fields, error)
}
