package mock

import "github.com/fwojciec/pith"

var _ pith.Detector = (*Detector)(nil)

// Detector is a mock implementation of pith.Detector.
type Detector struct {
	DetectFn         func(doc pith.Document, opts *pith.ExtractionOptions) ([]pith.Paragraph, error)
	TitleFn          func(doc pith.Document) string
	MetadataFn       func(doc pith.Document) pith.ContentMetadata
	TablesFn         func(doc pith.Document) []pith.Table
	ListsFn          func(doc pith.Document) []pith.List
	EmbedsFn         func(doc pith.Document) []pith.Embed
	StructuredDataFn func(doc pith.Document) []map[string]any
}

func (d *Detector) Detect(doc pith.Document, opts *pith.ExtractionOptions) ([]pith.Paragraph, error) {
	return d.DetectFn(doc, opts)
}

func (d *Detector) Title(doc pith.Document) string {
	return d.TitleFn(doc)
}

func (d *Detector) Metadata(doc pith.Document) pith.ContentMetadata {
	return d.MetadataFn(doc)
}

func (d *Detector) Tables(doc pith.Document) []pith.Table {
	return d.TablesFn(doc)
}

func (d *Detector) Lists(doc pith.Document) []pith.List {
	return d.ListsFn(doc)
}

func (d *Detector) Embeds(doc pith.Document) []pith.Embed {
	return d.EmbedsFn(doc)
}

func (d *Detector) StructuredData(doc pith.Document) []map[string]any {
	return d.StructuredDataFn(doc)
}
