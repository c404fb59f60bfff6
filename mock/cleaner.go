package mock

import "github.com/fwojciec/pith"

var _ pith.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of pith.Cleaner.
type Cleaner struct {
	CleanFn        func(doc pith.Document, opts pith.CleaningOptions) (pith.Document, error)
	SanitizeHTMLFn func(markup string, opts pith.CleaningOptions) string
}

func (c *Cleaner) Clean(doc pith.Document, opts pith.CleaningOptions) (pith.Document, error) {
	return c.CleanFn(doc, opts)
}

func (c *Cleaner) SanitizeHTML(markup string, opts pith.CleaningOptions) string {
	return c.SanitizeHTMLFn(markup, opts)
}
