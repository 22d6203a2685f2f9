package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPage(t *testing.T) {
	t.Parallel()

	t.Run("reads the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		page, err := fs.NewLoader().LoadPage(context.Background(), path, "home", "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, &pageaudit.Page{
			Path:        path,
			Slug:        "home",
			HTML:        "<html></html>",
			DefaultBase: "https://example.com/",
		}, page)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.html")

		_, err := fs.NewLoader().LoadPage(context.Background(), path, "home", "")

		assert.Equal(t, pageaudit.ENOTFOUND, pageaudit.ErrorCode(err))
	})

	t.Run("rejects empty slug", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		_, err := fs.NewLoader().LoadPage(context.Background(), path, "", "")

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
	})
}
