package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pageaudit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pageaudit.AuditService = (*AuditService)(nil)

const auditColumns = "id, slug, input_path, source_hash, commit_hash, verdict, blockers, warnings, word_count, readability_score, audited_at"

// AuditService implements pageaudit.AuditService using SQLite.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// hashSource fingerprints page source with xxHash as 16 hex digits.
func hashSource(source string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(source))
}

// CreateAuditRecord stores rec, assigning its ID and source hash. A zero
// AuditedAt is set to the current time. Times are kept at second precision.
func (s *AuditService) CreateAuditRecord(ctx context.Context, rec *pageaudit.AuditRecord, source string) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.SourceHash = hashSource(source)
	if rec.AuditedAt.IsZero() {
		rec.AuditedAt = time.Now()
	}
	rec.AuditedAt = rec.AuditedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audits (`+auditColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Slug, rec.InputPath, rec.SourceHash, rec.Commit, string(rec.Verdict),
		rec.Blockers, rec.Warnings, rec.WordCount, rec.ReadabilityScore,
		rec.AuditedAt.Format(time.RFC3339))

	return err
}

// FindAuditRecordByID retrieves a record by ID.
func (s *AuditService) FindAuditRecordByID(ctx context.Context, id string) (*pageaudit.AuditRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+auditColumns+" FROM audits WHERE id = ?", id)

	rec, err := scanAuditRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pageaudit.Errorf(pageaudit.ENOTFOUND, "audit record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindAuditRecords retrieves records matching the filter, newest first.
func (s *AuditService) FindAuditRecords(ctx context.Context, filter pageaudit.AuditRecordFilter) ([]*pageaudit.AuditRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + auditColumns + " FROM audits WHERE 1=1")

	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Verdict != nil {
		query.WriteString(" AND verdict = ?")
		args = append(args, string(*filter.Verdict))
	}

	query.WriteString(" ORDER BY audited_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*pageaudit.AuditRecord
	for rows.Next() {
		rec, err := scanAuditRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAuditRecord(row scanner) (*pageaudit.AuditRecord, error) {
	var rec pageaudit.AuditRecord
	var verdict, auditedAt string

	if err := row.Scan(&rec.ID, &rec.Slug, &rec.InputPath, &rec.SourceHash, &rec.Commit, &verdict,
		&rec.Blockers, &rec.Warnings, &rec.WordCount, &rec.ReadabilityScore, &auditedAt); err != nil {
		return nil, err
	}
	rec.Verdict = pageaudit.Verdict(verdict)

	var err error
	if rec.AuditedAt, err = parseRFC3339(auditedAt, "audited_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}
