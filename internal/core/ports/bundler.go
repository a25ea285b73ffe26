package ports

import (
	"context"

	"github.com/lezer-parser/lezer/internal/core/domain"
)

// Bundler invokes the external bundling tool for one package.
//
// The bundler produces artifacts in memory; deciding which artifacts reach
// disk (and when declaration writes are suppressed) is the build driver's
// job, not the bundler's.
//
//go:generate mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	Bundle(ctx context.Context, job domain.BundleJob) (*domain.BundleResult, error)
}
