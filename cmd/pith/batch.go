package main

import (
	"fmt"

	"github.com/fwojciec/pith"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	format, err := parseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	urls, err := readURLFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no URLs in %q\n", c.File)
		return pith.Errorf(pith.EINVALID, "no URLs in %q", c.File)
	}

	var writer pith.ContentWriter
	if c.OutputDir != "" {
		writer = deps.Writers(c.OutputDir, format)
	}

	results := deps.Service.ExtractBatch(deps.Ctx, urls, deps.ExtractionOptions(), c.Concurrency)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", res.URL, pith.ErrorMessage(res.Err))
			continue
		}
		if writer != nil {
			if err := writer.WriteContent(deps.Ctx, res.Content); err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", res.URL, pith.ErrorMessage(err))
			}
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %d words  %s\n", res.URL, res.Content.WordCount, res.Content.Title)
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d/%d pages\n", len(results)-failed, len(results))

	if failed == len(results) {
		return pith.Errorf(pith.EINTERNAL, "all %d extractions failed", failed)
	}
	return nil
}
