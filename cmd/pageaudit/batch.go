package main

import (
	"fmt"

	"github.com/fwojciec/pageaudit/audit"
	"github.com/fwojciec/pageaudit/yaml"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	m, err := yaml.LoadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	output := m.Output
	if output == "" {
		output = c.Output
	}
	if m.DefaultBase == "" {
		m.DefaultBase = c.DefaultBase
	}

	runner := &audit.Runner{
		Loader:      deps.Loader,
		Auditor:     deps.Auditor,
		Writer:      deps.NewWriter(output),
		History:     deps.History,
		Concurrency: c.Concurrency,
	}

	progress := func(e audit.ProgressEvent) {
		switch e.Type {
		case audit.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", e.Completed, e.Total, e.Slug)
		case audit.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s failed: %s\n", e.Completed, e.Total, e.Slug, errorText(e.Error))
		}
	}

	results, err := runner.Run(deps.Ctx, m, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintln(deps.Stdout)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stdout, "%s  FAILED\n", r.Slug)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Slug, r.Audit.Verdict())
	}

	if failed := audit.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(results))
	}
	fmt.Fprintf(deps.Stdout, "Audited %d pages into %s\n", len(results), output)
	return nil
}
