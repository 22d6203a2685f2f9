// Package audit builds page audits. It wires the element tree to the
// extractors, readability statistics and issue rules, and runs batches of
// pages concurrently.
package audit

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/pageaudit"
)

// Ensure Auditor implements pageaudit.Auditor at compile time.
var _ pageaudit.Auditor = (*Auditor)(nil)

// Auditor audits a single page.
type Auditor struct {
	Parser    pageaudit.Parser
	Revisions pageaudit.RevisionService

	// Accessibility is optional. When nil the audit carries no
	// accessibility facts.
	Accessibility pageaudit.AccessibilityChecker

	Flatten pageaudit.FlattenOptions

	// Now defaults to time.Now.
	Now func() time.Time
}

// Audit builds the complete report for page. Nothing is written; a page
// that fails here produces no artifacts.
func (a *Auditor) Audit(ctx context.Context, page *pageaudit.Page) (*pageaudit.Audit, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	root, err := a.Parser.Parse(page.HTML)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", page.Path, err)
	}
	head := root.FindFirst("head")
	body := root.FindFirst("body")
	if head == nil || body == nil {
		return nil, pageaudit.Errorf(pageaudit.EINVALID, "%s: HTML missing head or body", page.Path)
	}

	commit, err := a.Revisions.Revision(ctx, filepath.Dir(page.Path))
	if err != nil {
		return nil, err
	}

	inv := BuildInventory(page, head, body)

	var access *pageaudit.AccessibilityReport
	if a.Accessibility != nil {
		if access, err = a.Accessibility.Check(page.HTML); err != nil {
			return nil, fmt.Errorf("accessibility check: %w", err)
		}
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	at := now().UTC()

	return &pageaudit.Audit{
		Page:          page,
		Header:        pageaudit.FormatHeader(at, commit, page.Slug, page.Path),
		Commit:        commit,
		AuditedAt:     at,
		HeadHTML:      ExtractHead(page.HTML),
		Inventory:     inv,
		Issues:        pageaudit.Classify(inv),
		Readability:   pageaudit.ComputeReadability(pageaudit.Flatten(body, a.Flatten)),
		Accessibility: access,
	}, nil
}

// BuildInventory runs every extractor over a parsed page.
func BuildInventory(page *pageaudit.Page, head, body *pageaudit.Element) *pageaudit.Inventory {
	inv := pageaudit.NewInventory()
	inv.Meta = CollectMeta(head)
	inv.StructuredData = CollectStructuredData(head, body)

	base := ResolveBase(inv.Meta, page.Path, page.DefaultBase)
	inv.Links = CollectLinks(body, base)
	inv.Headings = CollectHeadings(body)
	inv.Images = CollectImages(body, base)
	inv.Scripts = CollectScripts(head, body, base)
	inv.Stylesheets = CollectStylesheets(head, base)
	inv.Fonts = CollectFonts(head)
	inv.PerformanceHints = DetectPerformanceHints(page.HTML, body)
	return inv
}
