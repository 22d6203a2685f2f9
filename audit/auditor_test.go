package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/audit"
	"github.com/fwojciec/pageaudit/html"
	"github.com/fwojciec/pageaudit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)

func newAuditor() *audit.Auditor {
	return &audit.Auditor{
		Parser: html.NewParser(),
		Revisions: &mock.RevisionService{
			RevisionFn: func(_ context.Context, _ string) (string, error) {
				return "abc123", nil
			},
		},
		Now: func() time.Time { return fixedNow },
	}
}

func TestAuditor_Audit(t *testing.T) {
	t.Parallel()

	t.Run("audits the reference page", func(t *testing.T) {
		t.Parallel()

		page := &pageaudit.Page{
			Path:        "site/index.html",
			Slug:        "home",
			DefaultBase: "https://example.com/",
			HTML: `<html><head><title>Test Tank</title><meta name="description" content="A guide"></head>` +
				`<body><a href="/privacy-legal.html">Privacy Policy</a><img src="/x.png"></body></html>`,
		}

		a, err := newAuditor().Audit(context.Background(), page)

		require.NoError(t, err)
		assert.Equal(t, "Test Tank (9)", a.Inventory.Meta.Title)
		assert.Equal(t, "A guide (7)", a.Inventory.Meta.Description)
		assert.True(t, a.Inventory.Links.PolicyPresence.Privacy.Found)
		assert.Equal(t, "https://example.com/privacy-legal.html", a.Inventory.Links.PolicyPresence.Privacy.Href)

		missingAlt := 0
		for _, issue := range a.Issues {
			if issue.ID == pageaudit.IssueImageMissingAlt {
				missingAlt++
				assert.Equal(t, "https://example.com/x.png", issue.Where)
			}
		}
		assert.Equal(t, 1, missingAlt)
		assert.Empty(t, pageaudit.FilterIssues(a.Issues, pageaudit.SeverityBlocker))
		assert.Equal(t, pageaudit.VerdictReady, a.Verdict())

		assert.Equal(t, "abc123", a.Commit)
		assert.Equal(t, fixedNow, a.AuditedAt)
		assert.Equal(t, "Generated 2026-05-04T03:02:01Z UTC | commit abc123 | source home (site/index.html)", a.Header)
		assert.Equal(t, `<title>Test Tank</title><meta name="description" content="A guide">`, a.HeadHTML)
		assert.Equal(t, "Privacy Policy", a.Readability.Text)
		assert.Equal(t, 2, a.Readability.Words)
		assert.Nil(t, a.Accessibility)
	})

	t.Run("noindex blocks the page", func(t *testing.T) {
		t.Parallel()

		page := &pageaudit.Page{
			Path: "index.html",
			Slug: "home",
			HTML: `<html><head><meta name="robots" content="noindex,nofollow">` +
				`<meta property="og:image" content="/og.png"></head>` +
				`<body><a href="/privacy.html">Privacy</a><img src="a.png" alt="A"></body></html>`,
		}

		a, err := newAuditor().Audit(context.Background(), page)

		require.NoError(t, err)
		blockers := pageaudit.FilterIssues(a.Issues, pageaudit.SeverityBlocker)
		require.Len(t, blockers, 1)
		assert.Equal(t, pageaudit.IssueRobotsNoindex, blockers[0].ID)
		assert.Equal(t, "noindex,nofollow", blockers[0].Details)
		assert.Equal(t, pageaudit.VerdictBlocked, a.Verdict())
	})

	t.Run("malformed JSON-LD keeps other signals", func(t *testing.T) {
		t.Parallel()

		page := &pageaudit.Page{
			Path: "index.html",
			Slug: "home",
			HTML: `<html><head><meta name="description" content="Planted tanks">` +
				`<script type="application/ld+json">{not json}</script></head><body></body></html>`,
		}

		a, err := newAuditor().Audit(context.Background(), page)

		require.NoError(t, err)
		require.Len(t, a.Inventory.StructuredData, 1)
		assert.False(t, a.Inventory.StructuredData[0].ValidJSON)
		assert.Len(t, a.Inventory.StructuredData[0].Errors, 1)
		assert.Equal(t, "Planted tanks (13)", a.Inventory.Meta.Description)
	})

	t.Run("missing body is invalid", func(t *testing.T) {
		t.Parallel()

		revisionCalled := false
		auditor := newAuditor()
		auditor.Revisions = &mock.RevisionService{
			RevisionFn: func(_ context.Context, _ string) (string, error) {
				revisionCalled = true
				return "abc123", nil
			},
		}

		page := &pageaudit.Page{Path: "index.html", Slug: "home", HTML: `<html><head><title>x</title></head></html>`}

		_, err := auditor.Audit(context.Background(), page)

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
		assert.Equal(t, "index.html: HTML missing head or body", pageaudit.ErrorMessage(err))
		assert.False(t, revisionCalled)
	})

	t.Run("missing head is invalid", func(t *testing.T) {
		t.Parallel()

		page := &pageaudit.Page{Path: "index.html", Slug: "home", HTML: `<body><p>x</p></body>`}

		_, err := newAuditor().Audit(context.Background(), page)

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
	})

	t.Run("revision failure aborts the audit", func(t *testing.T) {
		t.Parallel()

		auditor := newAuditor()
		auditor.Revisions = &mock.RevisionService{
			RevisionFn: func(_ context.Context, dir string) (string, error) {
				assert.Equal(t, "site", dir)
				return "", pageaudit.Errorf(pageaudit.ENOTFOUND, "no repository at %s", dir)
			},
		}

		page := &pageaudit.Page{Path: "site/index.html", Slug: "home", HTML: `<head></head><body></body>`}

		_, err := auditor.Audit(context.Background(), page)

		assert.Equal(t, pageaudit.ENOTFOUND, pageaudit.ErrorCode(err))
	})

	t.Run("rejects page without slug", func(t *testing.T) {
		t.Parallel()

		_, err := newAuditor().Audit(context.Background(), &pageaudit.Page{Path: "index.html"})

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
	})

	t.Run("attaches accessibility facts when configured", func(t *testing.T) {
		t.Parallel()

		report := &pageaudit.AccessibilityReport{HasLang: true, Lang: "en"}
		auditor := newAuditor()
		auditor.Accessibility = &mock.AccessibilityChecker{
			CheckFn: func(_ string) (*pageaudit.AccessibilityReport, error) {
				return report, nil
			},
		}

		a, err := auditor.Audit(context.Background(), &pageaudit.Page{
			Path: "index.html", Slug: "home", HTML: `<html lang="en"><head></head><body></body></html>`,
		})

		require.NoError(t, err)
		assert.Same(t, report, a.Accessibility)
	})

	t.Run("preserves line breaks when configured", func(t *testing.T) {
		t.Parallel()

		auditor := newAuditor()
		auditor.Flatten = pageaudit.FlattenOptions{PreserveLineBreaks: true}

		a, err := auditor.Audit(context.Background(), &pageaudit.Page{
			Path: "index.html", Slug: "home", HTML: `<head></head><body><h1>Fresh<br>Water</h1></body>`,
		})

		require.NoError(t, err)
		assert.Equal(t, "H1: Fresh\nWater", a.Readability.Text)
	})
}
