package pageaudit_test

import (
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/stretchr/testify/assert"
)

func TestManifest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pages   []pageaudit.ManifestPage
		wantMsg string
	}{
		{
			name:    "no pages",
			wantMsg: "manifest lists no pages",
		},
		{
			name:    "missing input",
			pages:   []pageaudit.ManifestPage{{Slug: "home"}},
			wantMsg: "manifest page 1: input required",
		},
		{
			name:    "missing slug",
			pages:   []pageaudit.ManifestPage{{Input: "a.html", Slug: "a"}, {Input: "b.html"}},
			wantMsg: "manifest page 2: slug required",
		},
		{
			name:    "duplicate slug",
			pages:   []pageaudit.ManifestPage{{Input: "a.html", Slug: "a"}, {Input: "b.html", Slug: "a"}},
			wantMsg: `manifest page 2: duplicate slug "a"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := &pageaudit.Manifest{Pages: tt.pages}

			err := m.Validate()

			assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
			assert.Equal(t, tt.wantMsg, pageaudit.ErrorMessage(err))
		})
	}

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()

		m := &pageaudit.Manifest{Pages: []pageaudit.ManifestPage{
			{Input: "a.html", Slug: "a"},
			{Input: "b.html", Slug: "b"},
		}}

		assert.NoError(t, m.Validate())
	})
}

func TestManifest_BaseFor(t *testing.T) {
	t.Parallel()

	page := pageaudit.ManifestPage{Input: "a.html", Slug: "a", DefaultBase: "https://page.example/"}
	bare := pageaudit.ManifestPage{Input: "b.html", Slug: "b"}

	m := &pageaudit.Manifest{DefaultBase: "https://manifest.example/"}
	assert.Equal(t, "https://page.example/", m.BaseFor(page))
	assert.Equal(t, "https://manifest.example/", m.BaseFor(bare))

	empty := &pageaudit.Manifest{}
	assert.Equal(t, pageaudit.DefaultBaseURL, empty.BaseFor(bare))
}
