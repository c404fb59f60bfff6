package goquery

import (
	"time"

	"github.com/fwojciec/pith"
)

var _ pith.SiteAdapter = (*WikipediaAdapter)(nil)

// WikipediaAdapter extracts articles from Wikipedia and its MediaWiki
// sister projects. Validated against the Vector 2022 skin.
//
// It targets MediaWiki's stable markup hooks:
// - #firstHeading for the article title
// - #mw-content-text .mw-parser-output for the article body
// - .infobox, .navbox, .reflist and edit-section links are boilerplate
type WikipediaAdapter struct{}

// NewWikipediaAdapter creates a new WikipediaAdapter.
func NewWikipediaAdapter() *WikipediaAdapter {
	return &WikipediaAdapter{}
}

// Name returns the adapter's identifier.
func (a *WikipediaAdapter) Name() string {
	return "wikipedia"
}

// Patterns returns the URL patterns this adapter claims.
func (a *WikipediaAdapter) Patterns() []string {
	return []string{`wikipedia\.org`, `wiktionary\.org`, `wikibooks\.org`}
}

// Priority returns the adapter's dispatch priority.
func (a *WikipediaAdapter) Priority() int {
	return 100
}

// Extract pulls the article body out of a MediaWiki page. Boilerplate is
// pruned from a clone so the caller's document is left untouched.
func (a *WikipediaAdapter) Extract(doc pith.Document, url string) (*pith.ExtractedContent, error) {
	clone, err := doc.Clone()
	if err != nil {
		return nil, err
	}

	for _, sel := range []string{
		".infobox", ".navbox", ".vertical-navbox", ".sidebar", ".metadata",
		".reflist", ".refbegin", ".mw-editsection", ".hatnote", ".ambox",
		"#toc", ".toc", ".catlinks", "sup.reference", ".mw-jump-link",
	} {
		removeAll(clone, sel)
	}

	container, ok := firstMatch(clone,
		"#mw-content-text .mw-parser-output",
		"#mw-content-text",
		"#bodyContent",
	)
	if !ok {
		return nil, pith.Errorf(pith.ENOTFOUND, "wikipedia content container not found")
	}

	paragraphs, err := collectParagraphs(container, "p, h2, h3, h4, blockquote, pre")
	if err != nil {
		return nil, err
	}

	title := firstText(clone, "#firstHeading", "h1")
	if title == "" {
		title = clone.Title()
	}

	content := &pith.ExtractedContent{
		URL:        url,
		Title:      title,
		Paragraphs: paragraphs,
		Metadata: pith.ContentMetadata{
			SiteName:    "Wikipedia",
			Description: metaContent(clone, `meta[property="og:description"]`),
			Language:    htmlLang(clone),
			ExtractedBy: a.Name(),
		},
		ExtractedAt: time.Now().UTC(),
	}
	content.Finalize()
	return content, nil
}
