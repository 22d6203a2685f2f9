package mock

import (
	"context"
	"io"

	"github.com/fwojciec/pageaudit"
)

var (
	_ pageaudit.Auditor         = (*Auditor)(nil)
	_ pageaudit.ArtifactWriter  = (*ArtifactWriter)(nil)
	_ pageaudit.SummaryRenderer = (*SummaryRenderer)(nil)
	_ pageaudit.PageLoader      = (*PageLoader)(nil)
)

// Auditor is a mock implementation of pageaudit.Auditor.
type Auditor struct {
	AuditFn func(ctx context.Context, page *pageaudit.Page) (*pageaudit.Audit, error)
}

func (a *Auditor) Audit(ctx context.Context, page *pageaudit.Page) (*pageaudit.Audit, error) {
	return a.AuditFn(ctx, page)
}

// ArtifactWriter is a mock implementation of pageaudit.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactsFn func(ctx context.Context, audit *pageaudit.Audit) ([]string, error)
}

func (w *ArtifactWriter) WriteArtifacts(ctx context.Context, audit *pageaudit.Audit) ([]string, error) {
	return w.WriteArtifactsFn(ctx, audit)
}

// SummaryRenderer is a mock implementation of pageaudit.SummaryRenderer.
type SummaryRenderer struct {
	RenderSummaryFn func(w io.Writer, audit *pageaudit.Audit) error
}

func (r *SummaryRenderer) RenderSummary(w io.Writer, audit *pageaudit.Audit) error {
	return r.RenderSummaryFn(w, audit)
}

// PageLoader is a mock implementation of pageaudit.PageLoader.
type PageLoader struct {
	LoadPageFn func(ctx context.Context, path, slug, defaultBase string) (*pageaudit.Page, error)
}

func (l *PageLoader) LoadPage(ctx context.Context, path, slug, defaultBase string) (*pageaudit.Page, error) {
	return l.LoadPageFn(ctx, path, slug, defaultBase)
}
