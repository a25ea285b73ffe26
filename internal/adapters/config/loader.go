// Package config provides the workspace configuration loader for lez.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load locates the workspace configuration starting at cwd and returns the
// package registry built from it.
func (l *Loader) Load(cwd string) (*domain.Registry, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.loadLezerfile(configPath)
}

// findConfiguration walks from cwd toward the filesystem root looking for
// lezer.yaml. The nearest match wins, so lez can be invoked from inside a
// package checkout.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadLezerfile(configPath string) (*domain.Registry, error) {
	var lezerfile Lezerfile
	if err := readAndUnmarshalYAML(configPath, &lezerfile); err != nil {
		return nil, err
	}

	root := filepath.Dir(configPath)

	packages := make([]*domain.Package, 0, len(lezerfile.Packages))
	for _, dto := range lezerfile.Packages {
		pkg, err := buildPackage(root, dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return domain.NewRegistry(root, lezerfile.Scope, lezerfile.Repository, packages)
}

// buildPackage creates a domain.Package from a PackageDTO. The package
// directory is derived from the package name, rooted at the workspace root.
func buildPackage(root string, dto *PackageDTO) (*domain.Package, error) {
	kind, err := domain.ParseKind(dto.Kind)
	if err != nil {
		return nil, zerr.With(err, "package", dto.Name)
	}

	entry := dto.Entry
	if entry == "" {
		entry = domain.DefaultEntryPoint
	}

	esm := true
	if dto.ESM != nil {
		esm = *dto.ESM
	}

	return &domain.Package{
		Name:  dto.Name,
		Kind:  kind,
		Dir:   filepath.Join(root, dto.Name),
		Entry: entry,
		ESM:   esm,
		Repo:  dto.Repo,
	}, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by walking up from cwd
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
