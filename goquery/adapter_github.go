package goquery

import (
	"time"

	"github.com/fwojciec/pith"
)

var _ pith.SiteAdapter = (*GitHubAdapter)(nil)

// GitHubAdapter extracts rendered README and Markdown content from GitHub
// repository pages.
//
// It targets GitHub's rendered-Markdown hooks:
// - article.markdown-body for the rendered document
// - strong[itemprop="name"] a for the repository name
type GitHubAdapter struct{}

// NewGitHubAdapter creates a new GitHubAdapter.
func NewGitHubAdapter() *GitHubAdapter {
	return &GitHubAdapter{}
}

// Name returns the adapter's identifier.
func (a *GitHubAdapter) Name() string {
	return "github"
}

// Patterns returns the URL patterns this adapter claims.
func (a *GitHubAdapter) Patterns() []string {
	return []string{`github\.com`}
}

// Priority returns the adapter's dispatch priority.
func (a *GitHubAdapter) Priority() int {
	return 100
}

// Extract pulls the rendered Markdown body out of a repository page. The
// adapter reads without mutating, so no clone is taken.
func (a *GitHubAdapter) Extract(doc pith.Document, url string) (*pith.ExtractedContent, error) {
	container, ok := firstMatch(doc, "article.markdown-body", ".markdown-body")
	if !ok {
		return nil, pith.Errorf(pith.ENOTFOUND, "github markdown body not found")
	}

	paragraphs, err := collectParagraphs(container, "p, h1, h2, h3, h4, h5, h6, blockquote, pre, li")
	if err != nil {
		return nil, err
	}

	title := firstText(doc, `strong[itemprop="name"] a`, ".markdown-body h1")
	if title == "" {
		title = doc.Title()
	}

	content := &pith.ExtractedContent{
		URL:        url,
		Title:      title,
		Paragraphs: paragraphs,
		Metadata: pith.ContentMetadata{
			SiteName:    "GitHub",
			Description: metaContent(doc, `meta[property="og:description"]`),
			Language:    htmlLang(doc),
			ExtractedBy: a.Name(),
		},
		ExtractedAt: time.Now().UTC(),
	}
	content.Finalize()
	return content, nil
}
