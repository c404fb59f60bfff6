package pith

// Detector analyzes a cleaned document: it locates the primary content
// container, materializes its paragraphs, and reads page-level structure.
type Detector interface {
	// Detect returns the content paragraphs in reading order, merged and
	// reindexed. An empty document yields an empty slice, never an error.
	Detect(doc Document, opts *ExtractionOptions) ([]Paragraph, error)

	// Title returns the best page title: the first heading of the content
	// container, else Open Graph metadata, else the document title.
	Title(doc Document) string

	// Metadata reads descriptive metadata from meta tags and link
	// elements.
	Metadata(doc Document) ContentMetadata

	// Tables extracts simplified data tables from the content.
	Tables(doc Document) []Table

	// Lists extracts ordered and unordered lists from the content.
	Lists(doc Document) []List

	// Embeds extracts embedded media references from the content.
	Embeds(doc Document) []Embed

	// StructuredData parses JSON-LD blocks into generic maps.
	StructuredData(doc Document) []map[string]any
}
