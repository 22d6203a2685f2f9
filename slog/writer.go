package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageaudit"
)

// Ensure LoggingArtifactWriter implements pageaudit.ArtifactWriter.
var _ pageaudit.ArtifactWriter = (*LoggingArtifactWriter)(nil)

// LoggingArtifactWriter wraps an ArtifactWriter with logging.
type LoggingArtifactWriter struct {
	next   pageaudit.ArtifactWriter
	logger *slog.Logger
}

// NewLoggingArtifactWriter creates a new LoggingArtifactWriter.
func NewLoggingArtifactWriter(next pageaudit.ArtifactWriter, logger *slog.Logger) *LoggingArtifactWriter {
	return &LoggingArtifactWriter{next: next, logger: logger}
}

// WriteArtifacts delegates to the wrapped writer and logs the written files.
func (w *LoggingArtifactWriter) WriteArtifacts(ctx context.Context, audit *pageaudit.Audit) (paths []string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write artifacts",
			"slug", audit.Page.Slug,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArtifacts(ctx, audit)
}
