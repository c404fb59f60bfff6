package pith

import (
	"context"
	"regexp"
)

// SitemapService discovers the page URLs of a site. Site-wide extraction
// feeds its output into batch extraction.
type SitemapService interface {
	// DiscoverURLs collects URLs for the site at baseURL, following
	// sitemap directives in robots.txt and falling back to /sitemap.xml.
	// Nested sitemap indexes are expanded. A nil filter keeps everything.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter narrows a discovered URL set. Include runs first: when
// non-empty, a URL must match at least one pattern to survive. Exclude
// then removes any URL matching one of its patterns.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// Match reports whether url passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
