package mock

import "github.com/fwojciec/pith"

var _ pith.SiteAdapter = (*SiteAdapter)(nil)

// SiteAdapter is a mock implementation of pith.SiteAdapter.
type SiteAdapter struct {
	NameFn     func() string
	PatternsFn func() []string
	PriorityFn func() int
	ExtractFn  func(doc pith.Document, url string) (*pith.ExtractedContent, error)
}

func (a *SiteAdapter) Name() string {
	return a.NameFn()
}

func (a *SiteAdapter) Patterns() []string {
	return a.PatternsFn()
}

func (a *SiteAdapter) Priority() int {
	return a.PriorityFn()
}

func (a *SiteAdapter) Extract(doc pith.Document, url string) (*pith.ExtractedContent, error) {
	return a.ExtractFn(doc, url)
}
