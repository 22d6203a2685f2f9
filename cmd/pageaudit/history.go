package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pageaudit"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.History == nil {
		fmt.Fprintln(deps.Stderr, "error: no history database. Set --db or PAGEAUDIT_DB.")
		return pageaudit.Errorf(pageaudit.EINVALID, "history database required")
	}

	filter := pageaudit.AuditRecordFilter{Limit: c.Limit}
	if c.Slug != "" {
		filter.Slug = &c.Slug
	}

	records, err := deps.History.FindAuditRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No audits recorded. Use 'pageaudit audit --db ...' to record one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %-8s %-7s blockers=%d warnings=%d words=%d score=%.1f commit=%s\n",
			r.AuditedAt.UTC().Format(time.RFC3339),
			r.Slug,
			r.Verdict,
			r.Blockers,
			r.Warnings,
			r.WordCount,
			r.ReadabilityScore,
			r.Commit,
		)
	}
	return nil
}
