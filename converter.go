package pith

// Converter renders cleaned HTML as Markdown. Exporters use it per
// paragraph, so implementations must handle fragment-level markup, not just
// whole documents.
type Converter interface {
	Convert(html string) (string, error)
}
