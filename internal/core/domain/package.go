package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Kind classifies a package within the workspace.
type Kind string

const (
	// KindCore marks a hand-written library package.
	KindCore Kind = "core"
	// KindGrammar marks a generated grammar package.
	KindGrammar Kind = "grammar"
)

// ParseKind validates and converts a config string into a Kind.
// An empty string defaults to KindCore.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindCore:
		return KindCore, nil
	case KindGrammar:
		return KindGrammar, nil
	default:
		return "", zerr.With(ErrInvalidKind, "kind", s)
	}
}

// Package describes one buildable unit of the workspace.
// The identity fields are set at registry construction and never mutated;
// derived collections (sources, declarations, dependencies) are computed by
// the import resolver, not stored here.
type Package struct {
	// Name is the short package name, unique within the registry.
	Name string
	// Kind classifies the package (core library or generated grammar).
	Kind Kind
	// Dir is the absolute path of the package checkout.
	Dir string
	// Entry is the bundler entry point, relative to Dir.
	Entry string
	// ESM reports whether the alternate ES module output is built.
	ESM bool
	// Repo optionally overrides the clone URL derived from the workspace
	// repository base.
	Repo string
}

// SourceDir returns the absolute path of the package's source directory.
func (p *Package) SourceDir() string {
	return filepath.Join(p.Dir, SourceDirName)
}

// DistDir returns the absolute path of the package's output directory.
func (p *Package) DistDir() string {
	return filepath.Join(p.Dir, DistDirName)
}

// EntryPath returns the absolute path of the bundler entry point.
func (p *Package) EntryPath() string {
	return filepath.Join(p.Dir, p.Entry)
}

// MainOutput returns the absolute path of the primary bundle output.
func (p *Package) MainOutput() string {
	return filepath.Join(p.DistDir(), MainOutputName)
}

// ESMOutput returns the absolute path of the alternate-format output.
func (p *Package) ESMOutput() string {
	return filepath.Join(p.DistDir(), ESMOutputName)
}

// RequiredOutputs returns the output files the current configuration must
// produce. The alternate-format output is included only when enabled, so a
// package that never requests it is not considered stale for lacking it.
func (p *Package) RequiredOutputs() []string {
	outputs := []string{p.MainOutput()}
	if p.ESM {
		outputs = append(outputs, p.ESMOutput())
	}
	return outputs
}

// NPMName returns the package's published name under the given scope.
func (p *Package) NPMName(scope string) string {
	if scope == "" {
		return p.Name
	}
	return scope + "/" + p.Name
}

// Owns reports whether the given absolute path lies inside the package
// directory.
func (p *Package) Owns(path string) bool {
	rel, err := filepath.Rel(p.Dir, path)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}
