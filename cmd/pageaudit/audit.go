package main

import (
	"fmt"

	"github.com/fwojciec/pageaudit/audit"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	runner := &audit.Runner{
		Loader:  deps.Loader,
		Auditor: deps.Auditor,
		Writer:  deps.NewWriter(c.Output),
		History: deps.History,
	}

	result, err := runner.RunPage(deps.Ctx, c.Input, c.Slug, c.DefaultBase)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	for _, path := range result.Paths {
		fmt.Fprintf(deps.Stdout, "wrote %s\n", path)
	}
	fmt.Fprintf(deps.Stdout, "verdict: %s\n", result.Audit.Verdict())
	return nil
}
