package goquery

import (
	"time"

	"github.com/fwojciec/pith"
)

var _ pith.SiteAdapter = (*MDNAdapter)(nil)

// MDNAdapter extracts reference articles from MDN Web Docs.
//
// It targets the Yari front end's markup:
// - article.main-page-content for the article body
// - .prev-next navigation and interactive examples are boilerplate
type MDNAdapter struct{}

// NewMDNAdapter creates a new MDNAdapter.
func NewMDNAdapter() *MDNAdapter {
	return &MDNAdapter{}
}

// Name returns the adapter's identifier.
func (a *MDNAdapter) Name() string {
	return "mdn"
}

// Patterns returns the URL patterns this adapter claims.
func (a *MDNAdapter) Patterns() []string {
	return []string{`developer\.mozilla\.org`}
}

// Priority returns the adapter's dispatch priority.
func (a *MDNAdapter) Priority() int {
	return 100
}

// Extract pulls the reference article out of an MDN page. Navigation and
// embedded playground frames are pruned from a clone first.
func (a *MDNAdapter) Extract(doc pith.Document, url string) (*pith.ExtractedContent, error) {
	clone, err := doc.Clone()
	if err != nil {
		return nil, err
	}

	for _, sel := range []string{
		".prev-next", ".language-menu", ".on-github", "iframe.interactive",
		".bc-data", ".sidebar",
	} {
		removeAll(clone, sel)
	}

	container, ok := firstMatch(clone, "article.main-page-content", "main article", "main")
	if !ok {
		return nil, pith.Errorf(pith.ENOTFOUND, "mdn article body not found")
	}

	paragraphs, err := collectParagraphs(container, "p, h2, h3, h4, blockquote, pre")
	if err != nil {
		return nil, err
	}

	title := firstText(clone, "article h1", "h1")
	if title == "" {
		title = clone.Title()
	}

	content := &pith.ExtractedContent{
		URL:        url,
		Title:      title,
		Paragraphs: paragraphs,
		Metadata: pith.ContentMetadata{
			SiteName:    "MDN Web Docs",
			Description: metaContent(clone, `meta[property="og:description"]`),
			Language:    htmlLang(clone),
			ExtractedBy: a.Name(),
		},
		ExtractedAt: time.Now().UTC(),
	}
	content.Finalize()
	return content, nil
}
