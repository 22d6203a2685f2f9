package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_CreateAuditRecord(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateAuditRecordFn", func(t *testing.T) {
		t.Parallel()

		var gotRec *pageaudit.AuditRecord
		var gotSource string
		s := &mock.AuditService{
			CreateAuditRecordFn: func(_ context.Context, rec *pageaudit.AuditRecord, source string) error {
				gotRec, gotSource = rec, source
				return nil
			},
		}

		rec := &pageaudit.AuditRecord{Slug: "home", Verdict: pageaudit.VerdictReady}

		err := s.CreateAuditRecord(context.Background(), rec, "<html></html>")

		require.NoError(t, err)
		assert.Equal(t, rec, gotRec)
		assert.Equal(t, "<html></html>", gotSource)
	})
}
