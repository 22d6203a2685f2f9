package mock

import (
	"context"

	"github.com/fwojciec/pageaudit"
)

var _ pageaudit.RevisionService = (*RevisionService)(nil)

// RevisionService is a mock implementation of pageaudit.RevisionService.
type RevisionService struct {
	RevisionFn func(ctx context.Context, dir string) (string, error)
}

func (s *RevisionService) Revision(ctx context.Context, dir string) (string, error) {
	return s.RevisionFn(ctx, dir)
}
