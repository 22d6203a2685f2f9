package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/pageaudit"
)

// Ensure Loader implements pageaudit.PageLoader at compile time.
var _ pageaudit.PageLoader = (*Loader)(nil)

// Loader reads pages from the local filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadPage reads the file at path into a page.
func (l *Loader) LoadPage(ctx context.Context, path, slug, defaultBase string) (*pageaudit.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, pageaudit.Errorf(pageaudit.ENOTFOUND, "input file not found: %s", path)
	} else if err != nil {
		return nil, err
	}

	page := &pageaudit.Page{
		Path:        path,
		Slug:        slug,
		HTML:        string(data),
		DefaultBase: defaultBase,
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}
