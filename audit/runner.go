package audit

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/pageaudit"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages audited at once when Runner
// does not set one.
const DefaultConcurrency = 4

// Runner loads, audits and writes pages. Pages share nothing, so a batch is
// audited concurrently and one failing page never stops the others.
type Runner struct {
	Loader  pageaudit.PageLoader
	Auditor pageaudit.Auditor
	Writer  pageaudit.ArtifactWriter

	// History is optional. When set every successful audit is recorded.
	History pageaudit.AuditService

	Concurrency int
}

// PageResult holds the outcome of auditing one page.
type PageResult struct {
	Input string
	Slug  string
	Audit *pageaudit.Audit

	// Paths lists the written artifacts.
	Paths []string
	Err   error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Slug      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// RunPage audits a single page and writes its artifacts. The returned error
// is the page's failure, if any.
func (r *Runner) RunPage(ctx context.Context, input, slug, defaultBase string) (*PageResult, error) {
	result := r.processPage(ctx, input, slug, defaultBase)
	if result.Err != nil {
		return result, result.Err
	}
	if err := r.record(ctx, result); err != nil {
		return result, err
	}
	return result, nil
}

// Run audits every page of the manifest. Results are returned in manifest
// order. Page failures are reported in their PageResult; the returned error
// is reserved for an invalid manifest.
func (r *Runner) Run(ctx context.Context, m *pageaudit.Manifest, progress ProgressFunc) ([]*PageResult, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(m.Pages)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		position int
		result   *PageResult
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, p := range m.Pages {
			i, p := i, p
			g.Go(func() error {
				resultCh <- indexed{i, r.processPage(gctx, p.Input, p.Slug, m.BaseFor(p))}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	results := make([]*PageResult, total)
	for item := range resultCh {
		results[item.position] = item.result
		done := int(completed.Add(1))

		if item.result.Err == nil {
			item.result.Err = r.record(ctx, item.result)
		}

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: done,
			Total:     total,
			Slug:      item.result.Slug,
		}
		if item.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = item.result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results, nil
}

// processPage runs the load, audit and write steps for one page.
func (r *Runner) processPage(ctx context.Context, input, slug, defaultBase string) *PageResult {
	result := &PageResult{Input: input, Slug: slug}

	page, err := r.Loader.LoadPage(ctx, input, slug, defaultBase)
	if err != nil {
		result.Err = err
		return result
	}

	audit, err := r.Auditor.Audit(ctx, page)
	if err != nil {
		result.Err = err
		return result
	}
	result.Audit = audit

	paths, err := r.Writer.WriteArtifacts(ctx, audit)
	if err != nil {
		result.Err = err
		return result
	}
	result.Paths = paths
	return result
}

// record stores the audit in History when configured. Records are written
// one at a time from the collecting goroutine.
func (r *Runner) record(ctx context.Context, result *PageResult) error {
	if r.History == nil || result.Audit == nil {
		return nil
	}
	return r.History.CreateAuditRecord(ctx, pageaudit.NewAuditRecord(result.Audit), result.Audit.Page.HTML)
}

// Failed counts the results that carry an error.
func Failed(results []*PageResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
