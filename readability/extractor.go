// Package readability provides a pith.Extractor backed by go-readability,
// a port of Mozilla's Readability.js. It serves as a fallback engine for
// pages where the generic paragraph pipeline finds no content.
package readability

import (
	"strings"

	"github.com/fwojciec/pith"
	"github.com/go-shiori/go-readability"
)

var _ pith.Extractor = (*Extractor)(nil)

// Extractor runs Readability's scoring heuristics over a whole page. Unlike
// the paragraph pipeline it has no notion of individual blocks, so its
// output is re-detected downstream.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and content HTML. The document URL is not
// available at this layer, so relative links in the content stay relative.
func (e *Extractor) Extract(rawHTML string) (*pith.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pith.Errorf(pith.EINVALID, "no HTML to extract")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, pith.Errorf(pith.EINTERNAL, "readability: %v", err)
	}

	return &pith.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
