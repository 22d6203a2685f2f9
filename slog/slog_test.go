package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/mock"
	pslog "github.com/fwojciec/pageaudit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingAuditor_Audit(t *testing.T) {
	t.Parallel()

	t.Run("logs verdict and issue count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		page := &pageaudit.Page{Path: "site/index.html", Slug: "home"}
		inner := &mock.Auditor{
			AuditFn: func(_ context.Context, p *pageaudit.Page) (*pageaudit.Audit, error) {
				return &pageaudit.Audit{
					Page:        p,
					Issues:      []pageaudit.Issue{{ID: pageaudit.IssueRobotsNoindex, Severity: pageaudit.SeverityBlocker}},
					Readability: pageaudit.Readability{Words: 12},
				}, nil
			},
		}

		audit, err := pslog.NewLoggingAuditor(inner, newLogger(&buf)).Audit(context.Background(), page)

		require.NoError(t, err)
		assert.Same(t, page, audit.Page)
		output := buf.String()
		assert.Contains(t, output, "msg=audit")
		assert.Contains(t, output, "slug=home")
		assert.Contains(t, output, "path=site/index.html")
		assert.Contains(t, output, "verdict=Blocked")
		assert.Contains(t, output, "issues=1")
		assert.Contains(t, output, "words=12")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Auditor{
			AuditFn: func(context.Context, *pageaudit.Page) (*pageaudit.Audit, error) {
				return nil, errors.New("parse failed")
			},
		}

		_, err := pslog.NewLoggingAuditor(inner, newLogger(&buf)).Audit(context.Background(), &pageaudit.Page{Slug: "home"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"parse failed\"")
		assert.NotContains(t, output, "verdict=")
	})
}

func TestLoggingRevisionService_Revision(t *testing.T) {
	t.Parallel()

	t.Run("logs commit at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RevisionService{
			RevisionFn: func(context.Context, string) (string, error) { return "abc123", nil },
		}

		commit, err := pslog.NewLoggingRevisionService(inner, newLogger(&buf)).Revision(context.Background(), "site")

		require.NoError(t, err)
		assert.Equal(t, "abc123", commit)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "revision lookup")
		assert.Contains(t, output, "dir=site")
		assert.Contains(t, output, "commit=abc123")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RevisionService{
			RevisionFn: func(context.Context, string) (string, error) { return "abc123", nil },
		}

		_, err := pslog.NewLoggingRevisionService(inner, logger).Revision(context.Background(), "site")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingArtifactWriter_WriteArtifacts(t *testing.T) {
	t.Parallel()

	t.Run("logs artifact count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactWriter{
			WriteArtifactsFn: func(context.Context, *pageaudit.Audit) ([]string, error) {
				return []string{"a", "b", "c"}, nil
			},
		}
		audit := &pageaudit.Audit{Page: &pageaudit.Page{Slug: "home"}}

		paths, err := pslog.NewLoggingArtifactWriter(inner, newLogger(&buf)).WriteArtifacts(context.Background(), audit)

		require.NoError(t, err)
		assert.Len(t, paths, 3)
		output := buf.String()
		assert.Contains(t, output, "write artifacts")
		assert.Contains(t, output, "slug=home")
		assert.Contains(t, output, "count=3")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactWriter{
			WriteArtifactsFn: func(context.Context, *pageaudit.Audit) ([]string, error) {
				return nil, errors.New("disk full")
			},
		}
		audit := &pageaudit.Audit{Page: &pageaudit.Page{Slug: "home"}}

		_, err := pslog.NewLoggingArtifactWriter(inner, newLogger(&buf)).WriteArtifacts(context.Background(), audit)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
		assert.Contains(t, buf.String(), "count=0")
	})
}
