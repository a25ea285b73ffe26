package ports

import "github.com/lezer-parser/lezer/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from the given working directory to the workspace
	// configuration file and returns the package registry it declares.
	// Each call returns a fresh registry; callers reload after operations
	// that change the checkout set.
	Load(cwd string) (*domain.Registry, error)
}
