// Package trafilatura provides a pith.Extractor backed by go-trafilatura,
// a port of the Trafilatura web scraping library. It serves as a fallback
// engine for pages where the generic paragraph pipeline finds no content.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pith"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ pith.Extractor = (*Extractor)(nil)

// Extractor runs trafilatura with its own internal fallback cascade
// enabled, so a single Extract call already tries several strategies
// before giving up.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and content HTML. Trafilatura returns the
// content as a parsed node, which is rendered back to markup here so the
// paragraph pipeline can re-run over it. A page with metadata but no
// content node yields a result with an empty ContentHTML.
func (e *Extractor) Extract(rawHTML string) (*pith.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pith.Errorf(pith.EINVALID, "no HTML to extract")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, pith.Errorf(pith.EINTERNAL, "trafilatura: %v", err)
	}

	res := &pith.ExtractResult{Title: result.Metadata.Title}
	if result.ContentNode == nil {
		return res, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}
	res.ContentHTML = buf.String()
	return res, nil
}
