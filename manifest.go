package pageaudit

// Manifest lists the pages of a batch audit.
type Manifest struct {
	// Output is the artifact directory used for every page.
	Output string `yaml:"output"`

	// DefaultBase applies to pages that do not set their own.
	DefaultBase string `yaml:"default_base"`

	Pages []ManifestPage `yaml:"pages"`
}

// ManifestPage is one entry of a Manifest.
type ManifestPage struct {
	Input       string `yaml:"input"`
	Slug        string `yaml:"slug"`
	DefaultBase string `yaml:"default_base"`
}

// Validate returns an error if the manifest cannot be run.
func (m *Manifest) Validate() error {
	if len(m.Pages) == 0 {
		return Errorf(EINVALID, "manifest lists no pages")
	}
	seen := make(map[string]bool, len(m.Pages))
	for i, p := range m.Pages {
		if p.Input == "" {
			return Errorf(EINVALID, "manifest page %d: input required", i+1)
		}
		if p.Slug == "" {
			return Errorf(EINVALID, "manifest page %d: slug required", i+1)
		}
		if seen[p.Slug] {
			return Errorf(EINVALID, "manifest page %d: duplicate slug %q", i+1, p.Slug)
		}
		seen[p.Slug] = true
	}
	return nil
}

// BaseFor returns the default base for p, falling back to the manifest's
// and then to DefaultBaseURL.
func (m *Manifest) BaseFor(p ManifestPage) string {
	switch {
	case p.DefaultBase != "":
		return p.DefaultBase
	case m.DefaultBase != "":
		return m.DefaultBase
	default:
		return DefaultBaseURL
	}
}
