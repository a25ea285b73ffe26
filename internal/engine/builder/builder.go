// Package builder implements the staleness-gated build driver.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// Options configure one build invocation.
type Options struct {
	// Force bypasses the staleness check.
	Force bool
}

// Builder drives the external bundler for stale packages. The bundler
// hands artifacts back in memory; the builder owns every write into a
// package's dist directory.
type Builder struct {
	bundler  ports.Bundler
	resolver ports.Resolver
	hasher   ports.Hasher
	logger   ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(
	bundler ports.Bundler,
	resolver ports.Resolver,
	hasher ports.Hasher,
	logger ports.Logger,
) *Builder {
	return &Builder{
		bundler:  bundler,
		resolver: resolver,
		hasher:   hasher,
		logger:   logger,
	}
}

// Build builds one package if it is stale or forced. It reports whether a
// build actually ran; a fresh package is a silent no-op.
func (b *Builder) Build(ctx context.Context, reg *domain.Registry, pkg *domain.Package, opts Options) (bool, error) {
	if !opts.Force {
		stale, err := b.stale(reg, pkg)
		if err != nil {
			return false, err
		}
		if !stale {
			return false, nil
		}
	}

	start := time.Now()

	result, err := b.bundler.Bundle(ctx, domain.JobFor(pkg))
	if err != nil {
		return false, err
	}

	if err := b.writeArtifacts(pkg, result.Artifacts); err != nil {
		return false, err
	}

	b.logger.Info(fmt.Sprintf("built %s in %s", pkg.Name, time.Since(start).Round(time.Millisecond)))
	return true, nil
}

// BuildAll builds the given packages in order, stopping at the first
// failure. It returns the number of packages that were actually rebuilt.
func (b *Builder) BuildAll(ctx context.Context, reg *domain.Registry, pkgs []*domain.Package, opts Options) (int, error) {
	built := 0
	for _, pkg := range pkgs {
		ran, err := b.Build(ctx, reg, pkg, opts)
		if err != nil {
			return built, zerr.With(err, "package", pkg.Name)
		}
		if ran {
			built++
		}
	}
	return built, nil
}

// writeArtifacts writes bundle output into the package's dist directory.
// A declaration artifact whose bytes already match the file on disk is
// skipped, so dependents do not see a fresh mtime for an unchanged
// interface; everything else is written unconditionally.
func (b *Builder) writeArtifacts(pkg *domain.Package, artifacts []domain.Artifact) error {
	distDir := pkg.DistDir()
	if err := os.MkdirAll(distDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create dist directory"), "package", pkg.Name)
	}

	for _, artifact := range artifacts {
		path := filepath.Join(distDir, artifact.Name)
		if artifact.Declaration && b.unchanged(path, artifact.Data) {
			continue
		}
		if err := os.WriteFile(path, artifact.Data, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write artifact"), "artifact", path)
		}
	}
	return nil
}

// unchanged reports whether the file at path already holds exactly data.
// Sizes are compared before hashing.
func (b *Builder) unchanged(path string, data []byte) bool {
	info, err := os.Stat(path)
	if err != nil || info.Size() != int64(len(data)) {
		return false
	}

	onDisk, err := b.hasher.HashFile(path)
	if err != nil {
		return false
	}
	return onDisk == b.hasher.HashBytes(data)
}
