package mock

import "github.com/fwojciec/pith"

var _ pith.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of pith.Exporter.
type Exporter struct {
	ExportFn func(content *pith.ExtractedContent, format pith.ExportFormat) ([]byte, error)
	ImportFn func(data []byte) (*pith.ExtractedContent, error)
}

func (e *Exporter) Export(content *pith.ExtractedContent, format pith.ExportFormat) ([]byte, error) {
	return e.ExportFn(content, format)
}

func (e *Exporter) Import(data []byte) (*pith.ExtractedContent, error) {
	return e.ImportFn(data)
}
