package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageaudit"
)

// Ensure LoggingRevisionService implements pageaudit.RevisionService.
var _ pageaudit.RevisionService = (*LoggingRevisionService)(nil)

// LoggingRevisionService wraps a RevisionService with debug logging.
type LoggingRevisionService struct {
	next   pageaudit.RevisionService
	logger *slog.Logger
}

// NewLoggingRevisionService creates a new LoggingRevisionService.
func NewLoggingRevisionService(next pageaudit.RevisionService, logger *slog.Logger) *LoggingRevisionService {
	return &LoggingRevisionService{next: next, logger: logger}
}

// Revision delegates to the wrapped service and logs the lookup.
func (s *LoggingRevisionService) Revision(ctx context.Context, dir string) (commit string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("revision lookup",
			"dir", dir,
			"commit", commit,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Revision(ctx, dir)
}
