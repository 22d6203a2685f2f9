package mock

import (
	"context"

	"github.com/fwojciec/pageaudit"
)

var _ pageaudit.AuditService = (*AuditService)(nil)

// AuditService is a mock implementation of pageaudit.AuditService.
type AuditService struct {
	CreateAuditRecordFn   func(ctx context.Context, rec *pageaudit.AuditRecord, source string) error
	FindAuditRecordByIDFn func(ctx context.Context, id string) (*pageaudit.AuditRecord, error)
	FindAuditRecordsFn    func(ctx context.Context, filter pageaudit.AuditRecordFilter) ([]*pageaudit.AuditRecord, error)
}

func (s *AuditService) CreateAuditRecord(ctx context.Context, rec *pageaudit.AuditRecord, source string) error {
	return s.CreateAuditRecordFn(ctx, rec, source)
}

func (s *AuditService) FindAuditRecordByID(ctx context.Context, id string) (*pageaudit.AuditRecord, error) {
	return s.FindAuditRecordByIDFn(ctx, id)
}

func (s *AuditService) FindAuditRecords(ctx context.Context, filter pageaudit.AuditRecordFilter) ([]*pageaudit.AuditRecord, error) {
	return s.FindAuditRecordsFn(ctx, filter)
}
