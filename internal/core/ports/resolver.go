// Package ports defines the core interfaces for the application.
package ports

import "github.com/lezer-parser/lezer/internal/core/domain"

// Resolver derives a package's input collections from its sources.
//
// Dependencies are resolved once per package and memoized for the process
// lifetime; file lists are enumerated fresh on every call so declaration
// files created by a build are seen by subsequent staleness checks.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Sources returns the package's own source files in enumeration order.
	Sources(pkg *domain.Package) ([]string, error)

	// Declarations returns the package's published declaration files.
	// A package that has never been built yields an empty slice.
	Declarations(pkg *domain.Package) []string

	// Dependencies returns the other registered packages the given package
	// statically imports, de-duplicated in order of first occurrence and
	// never including the package itself. A missing source file is a fatal
	// error that must stop the whole build.
	Dependencies(reg *domain.Registry, pkg *domain.Package) ([]*domain.Package, error)

	// InputFiles returns the full staleness-relevant input set: the
	// package's sources plus every direct dependency's declarations.
	InputFiles(reg *domain.Registry, pkg *domain.Package) ([]string, error)
}
