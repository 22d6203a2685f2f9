// Package slog provides log/slog decorators for pageaudit services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageaudit"
)

// Ensure LoggingAuditor implements pageaudit.Auditor.
var _ pageaudit.Auditor = (*LoggingAuditor)(nil)

// LoggingAuditor wraps an Auditor with logging.
type LoggingAuditor struct {
	next   pageaudit.Auditor
	logger *slog.Logger
}

// NewLoggingAuditor creates a new LoggingAuditor.
func NewLoggingAuditor(next pageaudit.Auditor, logger *slog.Logger) *LoggingAuditor {
	return &LoggingAuditor{next: next, logger: logger}
}

// Audit delegates to the wrapped auditor and logs the verdict and issue count.
func (a *LoggingAuditor) Audit(ctx context.Context, page *pageaudit.Page) (audit *pageaudit.Audit, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"slug", page.Slug,
			"path", page.Path,
			"duration", time.Since(begin),
		}
		if audit != nil {
			attrs = append(attrs,
				"verdict", audit.Verdict(),
				"issues", len(audit.Issues),
				"words", audit.Readability.Words,
			)
		}
		attrs = append(attrs, "err", err)
		a.logger.Info("audit", attrs...)
	}(time.Now())
	return a.next.Audit(ctx, page)
}
