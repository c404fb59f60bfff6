package mock

import "github.com/fwojciec/pith"

var _ pith.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pith.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pith.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pith.ExtractResult, error) {
	return e.ExtractFn(html)
}
