package ports

import "github.com/lezer-parser/lezer/internal/core/domain"

// Manifests reads and writes package manifest files.
//
//go:generate mockgen -source=manifests.go -destination=mocks/mock_manifests.go -package=mocks
type Manifests interface {
	// Load reads and parses the manifest of the package rooted at dir.
	Load(dir string) (*domain.Manifest, error)

	// Save writes a manifest's raw text back to the path it was read from.
	Save(m *domain.Manifest) error
}
