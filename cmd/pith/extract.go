package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/pith"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	format, err := parseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	opts := deps.ExtractionOptions()
	if c.Summary {
		opts.GenerateSummary = true
	}

	// Progress goes to stderr so piped output stays clean
	var progress pith.ProgressFunc
	if !c.Quiet {
		progress = func(ev pith.ProgressEvent) {
			fmt.Fprintf(deps.Stderr, "%3d%% %s\n", ev.Percent, ev.Stage)
		}
	}

	content, err := deps.Service.Extract(deps.Ctx, c.URL, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	data, err := deps.Exporter.Export(content, format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, data, 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d words)\n", c.Output, content.WordCount)
		return nil
	}

	if _, err := deps.Stdout.Write(data); err != nil {
		return err
	}
	return nil
}
