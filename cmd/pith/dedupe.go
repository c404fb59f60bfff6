package main

import (
	"fmt"

	"github.com/fwojciec/pith"
)

// Run executes the dedupe command.
func (c *DedupeCmd) Run(deps *Dependencies) error {
	urls, err := readURLFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no URLs in %q\n", c.File)
		return pith.Errorf(pith.EINVALID, "no URLs in %q", c.File)
	}

	groups, err := deps.Service.FindDuplicates(deps.Ctx, urls, deps.ExtractionOptions())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	if len(groups) == 0 {
		fmt.Fprintln(deps.Stdout, "No duplicates found.")
		return nil
	}

	for i, group := range groups {
		fmt.Fprintf(deps.Stdout, "Group %d:\n", i+1)
		for _, u := range group {
			fmt.Fprintf(deps.Stdout, "  %s\n", u)
		}
	}
	return nil
}
