// Package manifest reads and writes package.json files.
package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

var _ ports.Manifests = (*Store)(nil)

// Store implements ports.Manifests against the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the manifest of the package rooted at dir.
func (s *Store) Load(dir string) (*domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the package dir
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	return domain.ParseManifest(path, data)
}

// Save writes a manifest's raw text back to the path it was read from.
func (s *Store) Save(m *domain.Manifest) error {
	if err := os.WriteFile(m.Path, m.Raw, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", m.Path)
	}
	return nil
}
