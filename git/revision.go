// Package git resolves source-control revisions with go-git, so audits can
// record the commit without shelling out to a git binary.
package git

import (
	"context"
	"errors"

	"github.com/fwojciec/pageaudit"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Ensure RevisionService implements pageaudit.RevisionService at compile time.
var _ pageaudit.RevisionService = (*RevisionService)(nil)

// RevisionService reads the HEAD commit of the repository containing a
// directory.
type RevisionService struct{}

// NewRevisionService creates a new RevisionService.
func NewRevisionService() *RevisionService {
	return &RevisionService{}
}

// Revision returns the full hash of HEAD for the repository at dir or any
// parent of dir.
func (s *RevisionService) Revision(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", pageaudit.Errorf(pageaudit.ENOTFOUND, "no git repository at %s", dir)
	} else if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", pageaudit.Errorf(pageaudit.ENOTFOUND, "repository at %s has no commits", dir)
	} else if err != nil {
		return "", err
	}
	return head.Hash().String(), nil
}
