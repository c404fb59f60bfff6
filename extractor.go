package pith

// ExtractResult is the output of a fallback extraction engine: the page
// title and the main content with boilerplate stripped.
type ExtractResult struct {
	Title string

	// ContentHTML preserves the content's element structure so the
	// paragraph detector can re-run over it.
	ContentHTML string
}

// Extractor is a self-contained extraction engine. The pipeline consults
// one only when its own detection pass produces no paragraphs.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
