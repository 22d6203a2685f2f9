// Package yaml reads batch manifests from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/pageaudit"
	"gopkg.in/yaml.v3"
)

// LoadManifest reads and validates the manifest at path. Relative input
// paths and the output directory are resolved against the manifest's
// directory.
//
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// decoded.
func LoadManifest(path string) (*pageaudit.Manifest, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, pageaudit.Errorf(pageaudit.ENOTFOUND, "manifest not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := DecodeManifest(f)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i := range m.Pages {
		m.Pages[i].Input = resolve(dir, m.Pages[i].Input)
	}
	m.Output = resolve(dir, m.Output)
	return m, nil
}

// DecodeManifest decodes and validates a manifest. Unknown keys are
// rejected so that typos do not silently drop settings.
func DecodeManifest(r io.Reader) (*pageaudit.Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m pageaudit.Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pageaudit.Errorf(pageaudit.EINVALID, "manifest is empty")
		}
		return nil, pageaudit.Errorf(pageaudit.EINVALID, "decode manifest: %s", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return &m, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
