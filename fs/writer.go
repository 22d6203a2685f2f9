// Package fs provides file-based page loading and artifact storage.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/pageaudit"
)

// Ensure Writer implements pageaudit.ArtifactWriter at compile time.
var _ pageaudit.ArtifactWriter = (*Writer)(nil)

// Writer writes audit artifacts to a directory.
type Writer struct {
	baseDir string
	summary pageaudit.SummaryRenderer
}

// NewWriter creates a new Writer that writes to the given base directory.
// summary renders the Markdown summary; when nil no summary is written.
func NewWriter(baseDir string, summary pageaudit.SummaryRenderer) *Writer {
	return &Writer{baseDir: baseDir, summary: summary}
}

type artifact struct {
	suffix  string
	content []byte
}

// WriteArtifacts renders every artifact and then writes them under the base
// directory, creating it if needed. A rendering failure writes nothing.
func (w *Writer) WriteArtifacts(ctx context.Context, a *pageaudit.Audit) ([]string, error) {
	if err := a.Page.Validate(); err != nil {
		return nil, err
	}

	artifacts, err := w.render(a)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(artifacts))
	for _, art := range artifacts {
		path := filepath.Join(w.baseDir, a.Page.Slug+art.suffix)
		if err := os.WriteFile(path, art.content, 0644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) render(a *pageaudit.Audit) ([]artifact, error) {
	inventory, err := FormatInventory(a)
	if err != nil {
		return nil, fmt.Errorf("render inventory: %w", err)
	}
	issues, err := FormatIssues(a)
	if err != nil {
		return nil, fmt.Errorf("render issues: %w", err)
	}

	artifacts := []artifact{
		{SuffixHead, []byte(FormatHead(a))},
		{SuffixText, []byte(FormatText(a))},
		{SuffixInventory, inventory},
		{SuffixIssues, issues},
	}

	if w.summary != nil {
		var buf bytes.Buffer
		if err := w.summary.RenderSummary(&buf, a); err != nil {
			return nil, fmt.Errorf("render summary: %w", err)
		}
		artifacts = append(artifacts, artifact{SuffixSummary, buf.Bytes()})
	}
	return artifacts, nil
}
