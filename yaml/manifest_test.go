package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestSrc = `
output: out/audits
default_base: https://example.com/
pages:
  - input: site/index.html
    slug: home
  - input: /srv/site/gear.html
    slug: gear
    default_base: https://gear.example.com/
`

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative paths against the manifest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "pages.yaml")
		require.NoError(t, os.WriteFile(path, []byte(manifestSrc), 0o644))

		m, err := yaml.LoadManifest(path)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "out/audits"), m.Output)
		assert.Equal(t, "https://example.com/", m.DefaultBase)
		require.Len(t, m.Pages, 2)
		assert.Equal(t, filepath.Join(dir, "site/index.html"), m.Pages[0].Input)
		assert.Equal(t, "home", m.Pages[0].Slug)
		assert.Equal(t, "/srv/site/gear.html", m.Pages[1].Input)
		assert.Equal(t, "https://gear.example.com/", m.Pages[1].DefaultBase)
	})

	t.Run("leaves empty output unset", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "pages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pages:\n  - input: a.html\n    slug: a\n"), 0o644))

		m, err := yaml.LoadManifest(path)

		require.NoError(t, err)
		assert.Empty(t, m.Output)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, pageaudit.ENOTFOUND, pageaudit.ErrorCode(err))
	})
}

func TestDecodeManifest(t *testing.T) {
	t.Parallel()

	t.Run("decodes pages", func(t *testing.T) {
		t.Parallel()

		m, err := yaml.DecodeManifest(strings.NewReader(manifestSrc))

		require.NoError(t, err)
		assert.Equal(t, "out/audits", m.Output)
		assert.Equal(t, "site/index.html", m.Pages[0].Input)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeManifest(strings.NewReader("pages: [\n"))

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeManifest(strings.NewReader("pagez:\n  - input: a.html\n"))

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeManifest(strings.NewReader(""))

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
		assert.Equal(t, "manifest is empty", pageaudit.ErrorMessage(err))
	})

	t.Run("validates decoded manifest", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeManifest(strings.NewReader("pages:\n  - input: a.html\n"))

		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
		assert.Contains(t, pageaudit.ErrorMessage(err), "slug required")
	})
}
