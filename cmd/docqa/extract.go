package main

import (
	"fmt"

	"github.com/fwojciec/docqa"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := ingestFile(deps.Session, c.File); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Session.Text())
	return nil
}
