package main

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/pith"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	format, err := parseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	// Compile filters to URLFilter (validates regex patterns early)
	var filter *pith.URLFilter
	if len(c.Filter) > 0 {
		filter = &pith.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			filter.Include = append(filter.Include, re)
		}
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no URLs discovered for %q\n", c.URL)
		return pith.Errorf(pith.ENOTFOUND, "no URLs discovered for %q", c.URL)
	}

	// Preview mode: show URLs without extracting
	if c.Preview {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", len(urls))

	store := deps.Stores(c.OutputDir, siteName(c.URL), format)
	results := deps.Service.ExtractBatch(deps.Ctx, urls, deps.ExtractionOptions(), c.Concurrency)

	saved := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", res.URL, pith.ErrorMessage(res.Err))
			continue
		}
		if err := store.Save(deps.Ctx, res.Content); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", res.URL, pith.ErrorMessage(err))
			continue
		}
		saved++
	}

	if saved == 0 {
		_ = store.Abort()
		return pith.Errorf(pith.EINTERNAL, "no pages extracted from %q", c.URL)
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d/%d pages to %s\n", saved, len(results), siteName(c.URL))
	return nil
}

// siteName derives a directory name from the site URL's host. Unparseable
// URLs fall back to a sanitized form of the raw string.
func siteName(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', ':', '?', '#':
			return '-'
		}
		return r
	}, rawURL)
	return strings.Trim(name, "-")
}
