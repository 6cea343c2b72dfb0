// Package goquery provides a goquery-based implementation of
// harvest.Extractor for deriving structured content from HTML pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/harvest"
)

// Heading text is kept only when non-empty and under this many characters.
const maxHeadingLen = 200

// Paragraph text is kept only when within these bounds, inclusive.
const (
	minParagraphLen = 20
	maxParagraphLen = 1000
)

// descriptionTruncateLen bounds the first-paragraph fallback description.
const descriptionTruncateLen = 200

// Compile-time interface verification.
var _ harvest.Extractor = (*Extractor)(nil)

// Extractor extracts structured fields from HTML using goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the structured content of the page.
// Relative link and image URLs are resolved against baseURL. Collections
// are unbounded; size policy belongs to harvest.ShapeFields.
func (e *Extractor) Extract(html string, baseURL string) (harvest.Fields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return harvest.Fields{}, harvest.Errorf(harvest.EINVALID, "failed to parse HTML: %v", err)
	}

	// Script, style, noscript and iframe content never contributes to any
	// extracted field.
	doc.Find("script, style, noscript, iframe").Remove()

	return harvest.Fields{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		Headings: harvest.Headings{
			H1: extractHeadings(doc, "h1"),
			H2: extractHeadings(doc, "h2"),
			H3: extractHeadings(doc, "h3"),
		},
		Links:      extractLinks(doc, baseURL),
		Images:     extractImages(doc, baseURL),
		Paragraphs: extractParagraphs(doc),
	}, nil
}

// extractTitle returns the <title> text, falling back to the first <h1>,
// then to the placeholder.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").Text()); title != "" {
		return title
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return harvest.NoTitle
}

// extractDescription returns the first non-empty of the standard meta
// description, og:description, twitter:description, or the first paragraph
// truncated to 200 characters.
func extractDescription(doc *goquery.Document) string {
	selectors := []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
	}
	for _, sel := range selectors {
		if content, ok := doc.Find(sel).Attr("content"); ok && content != "" {
			return content
		}
	}

	if p := strings.TrimSpace(doc.Find("p").First().Text()); p != "" {
		return truncate(p, descriptionTruncateLen)
	}

	return harvest.NoDescription
}

func extractHeadings(doc *goquery.Document, tag string) []string {
	var headings []string
	doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" && len(text) < maxHeadingLen {
			headings = append(headings, text)
		}
	})
	return headings
}

// extractLinks records every anchor carrying a non-empty href, in document
// order. Anchors without an href are skipped entirely.
func extractLinks(doc *goquery.Document, baseURL string) []harvest.Link {
	var links []harvest.Link
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text = harvest.NoLinkText
		}

		links = append(links, harvest.Link{
			Text: text,
			Href: harvest.ResolveURL(href, baseURL),
		})
	})
	return links
}

// extractImages records every image carrying a non-empty src or, failing
// that, data-src (lazy loading). Images lacking both are skipped.
func extractImages(doc *goquery.Document, baseURL string) []harvest.Image {
	var images []harvest.Image
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			src, ok = sel.Attr("data-src")
			if !ok || src == "" {
				return
			}
		}

		alt := sel.AttrOr("alt", "")
		if alt == "" {
			alt = harvest.NoAltText
		}

		images = append(images, harvest.Image{
			Alt: alt,
			Src: harvest.ResolveURL(src, baseURL),
		})
	})
	return images
}

func extractParagraphs(doc *goquery.Document) []string {
	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) >= minParagraphLen && len(text) <= maxParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
