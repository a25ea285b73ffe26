// Package bundler drives the external rollup binary to produce a package's
// distribution artifacts.
package bundler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

const (
	binaryName       = "rollup"
	typescriptPlugin = "typescript"
	dtsPlugin        = "dts"
)

var _ ports.Bundler = (*Rollup)(nil)

// Rollup implements ports.Bundler by shelling out to rollup, once per
// output. Artifacts land in a temporary directory and are returned in
// memory; the caller owns every write into the package's dist directory.
type Rollup struct {
	executor ports.Executor
}

// NewRollup creates a new Rollup.
func NewRollup(executor ports.Executor) *Rollup {
	return &Rollup{executor: executor}
}

// Bundle runs the bundler for every output the job requests and collects
// the produced artifacts.
func (r *Rollup) Bundle(ctx context.Context, job domain.BundleJob) (*domain.BundleResult, error) {
	outDir, err := os.MkdirTemp("", "lez-bundle-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create bundler staging directory")
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	for _, spec := range job.Outputs {
		if err := r.run(ctx, job, bundleArgs(job, spec, outDir)); err != nil {
			return nil, err
		}
		if spec.Declarations {
			if err := r.run(ctx, job, declarationArgs(job, outDir)); err != nil {
				return nil, err
			}
		}
	}

	artifacts, err := collectArtifacts(outDir)
	if err != nil {
		return nil, err
	}
	return &domain.BundleResult{Artifacts: artifacts}, nil
}

// run invokes one bundler command, capturing its output so a failure can
// carry the bundler's own diagnostics.
func (r *Rollup) run(ctx context.Context, job domain.BundleJob, args []string) error {
	var output bytes.Buffer
	cmd := domain.Command{
		Name: binaryName,
		Args: args,
		Dir:  job.Dir,
		Env:  map[string]string{"PATH": binSearchPath(job.Dir)},
	}

	if err := r.executor.Execute(ctx, cmd, &output, &output); err != nil {
		err = zerr.With(errors.Join(domain.ErrBuildFailed, err), "package", job.Package)
		if out := strings.TrimSpace(output.String()); out != "" {
			err = zerr.With(err, "output", out)
		}
		return err
	}
	return nil
}

// bundleArgs builds the invocation for one code output.
func bundleArgs(job domain.BundleJob, spec domain.OutputSpec, outDir string) []string {
	args := []string{
		job.Entry,
		"--format", string(spec.Format),
		"--file", filepath.Join(outDir, spec.File),
		"--plugin", typescriptPlugin,
	}
	if spec.Sourcemap {
		args = append(args, "--sourcemap")
	}
	return args
}

// declarationArgs builds the invocation that bundles type declarations.
// Declarations are emitted once per job regardless of how many code
// formats it produces.
func declarationArgs(job domain.BundleJob, outDir string) []string {
	return []string{
		job.Entry,
		"--format", string(domain.FormatES),
		"--file", filepath.Join(outDir, domain.DeclarationOutputName),
		"--plugin", dtsPlugin,
	}
}

// binSearchPath returns the node binary directories for the package and
// the workspace root. The executor prepends them to the inherited PATH,
// so a repo-local rollup wins over a global one.
func binSearchPath(dir string) string {
	return strings.Join([]string{
		filepath.Join(dir, "node_modules", ".bin"),
		filepath.Join(filepath.Dir(dir), "node_modules", ".bin"),
	}, string(os.PathListSeparator))
}

// collectArtifacts reads every file the bundler staged, in name order.
func collectArtifacts(dir string) ([]domain.Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read bundler staging directory"), "dir", dir)
	}

	artifacts := make([]domain.Artifact, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name())) //nolint:gosec // Paths come from the staging directory listing
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read bundler artifact"), "artifact", entry.Name())
		}
		artifacts = append(artifacts, domain.Artifact{
			Name:        entry.Name(),
			Data:        data,
			Declaration: isDeclaration(entry.Name()),
		})
	}
	return artifacts, nil
}

func isDeclaration(name string) bool {
	return strings.HasSuffix(name, ".d.ts") || strings.HasSuffix(name, ".d.ts.map")
}
