// Package imports resolves intra-workspace dependencies by scanning import
// statements in package sources.
package imports

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/adapters/fs"
	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// scannableExtensions are the file types searched for import statements.
// Other files under src (grammar definitions, fixtures) still count as
// build inputs but are never scanned.
var scannableExtensions = []string{".ts", ".tsx", ".js", ".mjs", ".cjs"}

var _ ports.Resolver = (*Resolver)(nil)

// Resolver implements ports.Resolver with regexp-based import scanning.
//
// Dependency sets are memoized per package name for the process lifetime.
// Source and declaration listings are enumerated fresh on every call so
// files created by a build are visible to later staleness checks.
type Resolver struct {
	walker *fs.Walker

	mu   sync.Mutex
	deps map[string][]string
}

// NewResolver creates a new Resolver using the given walker.
func NewResolver(walker *fs.Walker) *Resolver {
	return &Resolver{
		walker: walker,
		deps:   make(map[string][]string),
	}
}

// Sources returns every file under the package's source directory.
func (r *Resolver) Sources(pkg *domain.Package) ([]string, error) {
	if _, err := os.Stat(pkg.Dir); err != nil {
		return nil, zerr.With(domain.ErrMissingCheckout, "package", pkg.Name)
	}

	var sources []string
	for path := range r.walker.WalkFiles(pkg.SourceDir(), nil) {
		sources = append(sources, path)
	}
	return sources, nil
}

// Declarations returns the package's built declaration files under dist.
// A package that has never been built yields an empty slice.
func (r *Resolver) Declarations(pkg *domain.Package) []string {
	var decls []string
	for path := range r.walker.WalkFiles(pkg.DistDir(), nil) {
		if strings.HasSuffix(path, ".d.ts") {
			decls = append(decls, path)
		}
	}
	return decls
}

// Dependencies returns the registered packages referenced by the given
// package's sources, de-duplicated in order of first occurrence.
func (r *Resolver) Dependencies(reg *domain.Registry, pkg *domain.Package) ([]*domain.Package, error) {
	r.mu.Lock()
	names, ok := r.deps[pkg.Name]
	r.mu.Unlock()

	if !ok {
		resolved, err := r.resolve(reg, pkg)
		if err != nil {
			return nil, err
		}
		names = resolved

		r.mu.Lock()
		r.deps[pkg.Name] = names
		r.mu.Unlock()
	}

	packages := make([]*domain.Package, 0, len(names))
	for _, name := range names {
		if dep, found := reg.ByName(name); found {
			packages = append(packages, dep)
		}
	}
	return packages, nil
}

// InputFiles returns the full staleness-relevant input set: the package's
// own sources plus every direct dependency's declarations.
func (r *Resolver) InputFiles(reg *domain.Registry, pkg *domain.Package) ([]string, error) {
	inputs, err := r.Sources(pkg)
	if err != nil {
		return nil, err
	}

	deps, err := r.Dependencies(reg, pkg)
	if err != nil {
		return nil, err
	}
	for _, dep := range deps {
		inputs = append(inputs, r.Declarations(dep)...)
	}

	return inputs, nil
}

// resolve scans the package's sources for import specifiers that resolve
// into another registered package's directory.
func (r *Resolver) resolve(reg *domain.Registry, pkg *domain.Package) ([]string, error) {
	sources, err := r.Sources(pkg)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, path := range sources {
		if !slices.Contains(scannableExtensions, filepath.Ext(path)) {
			continue
		}

		data, err := os.ReadFile(path) //nolint:gosec // Paths come from walking the package dir
		if err != nil {
			// A source that vanishes mid-scan invalidates the whole
			// dependency picture, so this aborts the build.
			return nil, zerr.With(errors.Join(domain.ErrMissingSource, err), "path", path)
		}

		fileDir := filepath.Dir(path)
		for _, spec := range scanSpecifiers(string(data)) {
			dep := lookupTarget(reg, pkg, fileDir, spec)
			if dep == "" || slices.Contains(names, dep) {
				continue
			}
			names = append(names, dep)
		}
	}

	return names, nil
}

// lookupTarget resolves a specifier to the name of the registered package it
// lands in, or "" when the import is external or stays inside the importing
// package. Only relative specifiers can reference a sibling package.
func lookupTarget(reg *domain.Registry, pkg *domain.Package, fileDir, spec string) string {
	if !strings.HasPrefix(spec, ".") {
		return ""
	}

	target := filepath.Clean(filepath.Join(fileDir, spec))
	owner := reg.Owner(target)
	if owner == nil || owner.Name == pkg.Name {
		return ""
	}
	return owner.Name
}
