package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/pith"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Service  pith.ContentService
	Sitemaps pith.SitemapService
	Exporter pith.Exporter

	// Options are the default extraction options, after any config file
	// has been applied. Commands copy them before adjusting.
	Options *pith.ExtractionOptions

	// Writers builds a per-page content writer rooted at dir.
	Writers WriterFactory

	// Stores builds a staged site store for the named site under dir.
	Stores StoreFactory
}

// WriterFactory builds a content writer that lays pages out under dir.
type WriterFactory func(dir string, format pith.ExportFormat) pith.ContentWriter

// StoreFactory builds a site store that stages pages under dir and swaps
// them in atomically on commit.
type StoreFactory func(dir, name string, format pith.ExportFormat) pith.SiteStore

// ExtractionOptions returns a copy of the configured defaults so a command
// can adjust them without affecting later runs.
func (d *Dependencies) ExtractionOptions() *pith.ExtractionOptions {
	if d.Options == nil {
		return pith.DefaultExtractionOptions()
	}
	opts := *d.Options
	return &opts
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `help:"YAML file with default extraction options" type:"path"`

	Extract  ExtractCmd  `cmd:"" help:"Extract the main content of a page"`
	Batch    BatchCmd    `cmd:"" help:"Extract every URL listed in a file"`
	Site     SiteCmd     `cmd:"" help:"Extract every page discovered from a site's sitemap"`
	Dedupe   DedupeCmd   `cmd:"" help:"Group URLs that carry the same article"`
	Validate ValidateCmd `cmd:"" help:"Check an exported content record against the quality rules"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL     string `arg:"" help:"Page URL"`
	Format  string `short:"f" default:"markdown" enum:"markdown,md,json,html" help:"Output format"`
	Output  string `short:"o" help:"Write to a file instead of stdout"`
	Render  bool   `short:"r" help:"Render the page in a headless browser first"`
	Summary bool   `help:"Generate a summary (requires GEMINI_API_KEY)"`
	Quiet   bool   `short:"q" help:"Suppress progress output"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string `arg:"" help:"File with one URL per line"`
	OutputDir   string `short:"o" name:"output-dir" help:"Write one file per page under this directory"`
	Format      string `short:"f" default:"markdown" enum:"markdown,md,json,html" help:"Output format"`
	Render      bool   `short:"r" help:"Render pages in a headless browser"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent extraction limit"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL         string   `arg:"" help:"Site URL"`
	OutputDir   string   `short:"o" name:"output-dir" default:"." help:"Directory to store the extracted site under"`
	Format      string   `short:"f" default:"markdown" enum:"markdown,md,json,html" help:"Output format"`
	Preview     bool     `short:"p" help:"Show discovered URLs without extracting"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Render      bool     `short:"r" help:"Render pages in a headless browser"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent extraction limit"`
}

// DedupeCmd is the "dedupe" subcommand.
type DedupeCmd struct {
	File string `arg:"" help:"File with one URL per line"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	File string `arg:"" help:"Exported JSON content record"`
}

// parseFormat maps a CLI format name to an export format.
func parseFormat(name string) (pith.ExportFormat, error) {
	switch name {
	case "md", "markdown":
		return pith.FormatMarkdown, nil
	case "json":
		return pith.FormatJSON, nil
	case "html":
		return pith.FormatHTML, nil
	}
	return "", pith.Errorf(pith.EINVALID, "unknown format %q", name)
}

// readURLFile reads one URL per line, skipping blank lines and # comments.
func readURLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}
