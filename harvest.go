// Package harvest provides a web page scraping service. It fetches a page,
// extracts structured content (title, description, headings, links, images,
// paragraphs), bounds the result to predictable sizes, and persists a record
// of every attempt, successful or not.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package harvest
