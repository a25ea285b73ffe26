package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var packageNameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Registry is the ordered set of packages declared by the workspace
// configuration. Order is significant: packages are listed upstream before
// their dependents by convention, and build and drain loops follow it.
// A Registry is immutable after construction; reloading the configuration
// returns a fresh one.
type Registry struct {
	root       string
	scope      string
	repository string
	packages   []*Package
	index      map[string]int
}

// NewRegistry validates the package list and builds a registry rooted at the
// given workspace directory.
func NewRegistry(root, scope, repository string, packages []*Package) (*Registry, error) {
	if len(packages) == 0 {
		return nil, zerr.With(ErrNoPackages, "root", root)
	}
	if scope == "" {
		scope = DefaultScope
	}

	index := make(map[string]int, len(packages))
	for i, pkg := range packages {
		if !packageNameRE.MatchString(pkg.Name) {
			return nil, zerr.With(ErrInvalidPackageName, "name", pkg.Name)
		}
		if _, exists := index[pkg.Name]; exists {
			return nil, zerr.With(ErrDuplicatePackage, "name", pkg.Name)
		}
		index[pkg.Name] = i
	}

	return &Registry{
		root:       root,
		scope:      scope,
		repository: repository,
		packages:   packages,
		index:      index,
	}, nil
}

// Root returns the workspace root directory.
func (r *Registry) Root() string {
	return r.root
}

// Scope returns the npm scope packages are published under.
func (r *Registry) Scope() string {
	return r.scope
}

// Packages returns the packages in registry order.
// The returned slice must not be mutated.
func (r *Registry) Packages() []*Package {
	return r.packages
}

// Len returns the number of registered packages.
func (r *Registry) Len() int {
	return len(r.packages)
}

// ByName returns the package with the given name, if registered.
func (r *Registry) ByName(name string) (*Package, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.packages[i], true
}

// Index returns the registry position of the named package, or -1.
func (r *Registry) Index(name string) int {
	i, ok := r.index[name]
	if !ok {
		return -1
	}
	return i
}

// Names returns the package names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.packages))
	for i, pkg := range r.packages {
		names[i] = pkg.Name
	}
	return names
}

// Owner returns the registered package owning the given absolute path,
// or nil when the path belongs to no package.
func (r *Registry) Owner(path string) *Package {
	for _, pkg := range r.packages {
		if pkg.Owns(path) {
			return pkg
		}
	}
	return nil
}

// Remote returns the clone URL for a package, either its explicit override
// or one derived from the workspace repository base.
func (r *Registry) Remote(pkg *Package) string {
	if pkg.Repo != "" {
		return pkg.Repo
	}
	if r.repository == "" {
		return ""
	}
	return strings.TrimSuffix(r.repository, "/") + "/" + pkg.Name + ".git"
}
