package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/pith"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %q: %v\n", c.File, err)
		return err
	}

	content, err := deps.Exporter.Import(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	result := pith.ValidateContent(content)
	if result.Valid {
		fmt.Fprintf(deps.Stdout, "%s is valid (%d words, quality %.2f)\n", c.File, content.WordCount, content.Quality.Score)
		return nil
	}

	for _, msg := range result.Errors {
		fmt.Fprintf(deps.Stdout, "  - %s\n", msg)
	}
	return pith.Errorf(pith.EINVALID, "%s failed validation", c.File)
}
