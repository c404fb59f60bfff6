package pith

// Cleaner removes boilerplate from parsed documents.
type Cleaner interface {
	// Clean returns a scrubbed deep copy of doc; the input is never
	// modified. Invalid selectors encountered during any pass are skipped,
	// never fatal, and a pass is never partially undone.
	Clean(doc Document, opts CleaningOptions) (Document, error)

	// SanitizeHTML is the string-level counterpart for callers that only
	// need a cleaned HTML string: it strips scripts, styles, comments,
	// event handler attributes, and javascript: URLs.
	SanitizeHTML(markup string, opts CleaningOptions) string
}
