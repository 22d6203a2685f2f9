package pageaudit

import (
	"context"
	"time"
)

// AuditRecord is the persisted summary of one completed audit.
type AuditRecord struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	InputPath        string    `json:"inputPath"`
	SourceHash       string    `json:"sourceHash"`
	Commit           string    `json:"commit"`
	Verdict          Verdict   `json:"verdict"`
	Blockers         int       `json:"blockers"`
	Warnings         int       `json:"warnings"`
	WordCount        int       `json:"wordCount"`
	ReadabilityScore float64   `json:"readabilityScore"`
	AuditedAt        time.Time `json:"auditedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *AuditRecord) Validate() error {
	if r.Slug == "" {
		return Errorf(EINVALID, "audit record slug required")
	}
	if r.Verdict != VerdictReady && r.Verdict != VerdictBlocked {
		return Errorf(EINVALID, "audit record verdict %q invalid", r.Verdict)
	}
	return nil
}

// NewAuditRecord summarizes a completed audit. ID and SourceHash are
// assigned by the store.
func NewAuditRecord(a *Audit) *AuditRecord {
	return &AuditRecord{
		Slug:             a.Page.Slug,
		InputPath:        a.Page.Path,
		Commit:           a.Commit,
		Verdict:          a.Verdict(),
		Blockers:         len(FilterIssues(a.Issues, SeverityBlocker)),
		Warnings:         len(FilterIssues(a.Issues, SeverityWarn)),
		WordCount:        a.Readability.Words,
		ReadabilityScore: a.Readability.Score,
		AuditedAt:        a.AuditedAt,
	}
}

// AuditService persists audit history.
type AuditService interface {
	// CreateAuditRecord stores a record. source is the audited HTML and is
	// used only to fingerprint the input.
	CreateAuditRecord(ctx context.Context, rec *AuditRecord, source string) error

	// FindAuditRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindAuditRecordByID(ctx context.Context, id string) (*AuditRecord, error)

	// FindAuditRecords retrieves records matching the filter, newest first.
	FindAuditRecords(ctx context.Context, filter AuditRecordFilter) ([]*AuditRecord, error)
}

// AuditRecordFilter represents a filter for FindAuditRecords.
type AuditRecordFilter struct {
	Slug    *string  `json:"slug"`
	Verdict *Verdict `json:"verdict"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
