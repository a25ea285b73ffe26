// Package app implements the application layer for lez.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
	"github.com/lezer-parser/lezer/internal/engine/builder"
	"github.com/lezer-parser/lezer/internal/engine/release"
	"github.com/lezer-parser/lezer/internal/engine/watch"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	vcs          ports.VCS
	builder      *builder.Builder
	session      *watch.Session
	releaser     *release.Releaser
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	vcs ports.VCS,
	build *builder.Builder,
	session *watch.Session,
	releaser *release.Releaser,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		vcs:          vcs,
		builder:      build,
		session:      session,
		releaser:     releaser,
		out:          os.Stdout,
	}
}

// WithOutput redirects command output. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Packages prints the registered package names in registry order.
func (a *App) Packages(_ context.Context) error {
	reg, err := a.load()
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		_, _ = fmt.Fprintln(a.out, name)
	}
	return nil
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Force bool
}

// Build builds the named packages, or every package when none are named.
func (a *App) Build(ctx context.Context, names []string, opts BuildOptions) error {
	reg, err := a.load()
	if err != nil {
		return err
	}

	packages := reg.Packages()
	if len(names) > 0 {
		packages, err = selectPackages(reg, names)
		if err != nil {
			return err
		}
	}
	for _, pkg := range packages {
		if _, err := os.Stat(pkg.Dir); err != nil {
			return zerr.With(domain.ErrMissingCheckout, "package", pkg.Name)
		}
	}

	built, err := a.builder.BuildAll(ctx, reg, packages, builder.Options{Force: opts.Force})
	if err != nil {
		return err
	}
	if built == 0 {
		a.logger.Info("everything is up to date")
	}
	return nil
}

// Watch builds everything once, then rebuilds packages as their input files
// change until the context is canceled.
func (a *App) Watch(ctx context.Context) error {
	reg, err := a.load()
	if err != nil {
		return err
	}
	if err := a.session.Run(ctx, reg); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Release publishes a new version of one package.
func (a *App) Release(ctx context.Context, name string, opts release.Options) error {
	reg, err := a.load()
	if err != nil {
		return err
	}
	pkg, err := lookup(reg, name)
	if err != nil {
		return err
	}
	_, err = a.releaser.Release(ctx, pkg, opts)
	return err
}

// ReleaseAll publishes every package at one shared version.
func (a *App) ReleaseAll(ctx context.Context, opts release.AllOptions) error {
	reg, err := a.load()
	if err != nil {
		return err
	}
	for name := range opts.PackageNotes {
		if _, err := lookup(reg, name); err != nil {
			return err
		}
	}
	_, err = a.releaser.ReleaseAll(ctx, reg, opts)
	return err
}

// BumpDeps rewrites cross-package dependency constraints in every manifest.
func (a *App) BumpDeps(_ context.Context, version string) error {
	reg, err := a.load()
	if err != nil {
		return err
	}
	return a.releaser.BumpDeps(reg, version)
}

// Notes prints the changelog content pending for one package.
func (a *App) Notes(ctx context.Context, name string) error {
	reg, err := a.load()
	if err != nil {
		return err
	}
	pkg, err := lookup(reg, name)
	if err != nil {
		return err
	}
	text, err := a.releaser.Notes(ctx, pkg)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(a.out, text)
	return nil
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Continue keeps going after a package fails instead of stopping.
	Continue bool
}

// Run executes a shell command in every package directory in registry
// order.
func (a *App) Run(ctx context.Context, args []string, opts RunOptions) error {
	if len(args) == 0 {
		return domain.ErrNoCommand
	}

	reg, err := a.load()
	if err != nil {
		return err
	}

	command := domain.Command{Name: args[0], Args: args[1:]}
	for _, pkg := range reg.Packages() {
		_, _ = fmt.Fprintf(a.out, "%s:\n", pkg.Name)
		run := command
		run.Dir = pkg.Dir
		if err := a.executor.Execute(ctx, run, a.out, a.out); err != nil {
			err = zerr.With(err, "package", pkg.Name)
			if !opts.Continue {
				return err
			}
			a.logger.Error(err)
		}
	}
	return nil
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// NoDeps skips the dependency install step after cloning.
	NoDeps bool
}

// Install clones missing package checkouts, then installs each package's
// npm dependencies. Clones run concurrently; installs run one at a time.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	reg, err := a.load()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, pkg := range reg.Packages() {
		if _, err := os.Stat(pkg.Dir); err == nil {
			continue
		}
		remote := reg.Remote(pkg)
		if remote == "" {
			return zerr.With(domain.ErrNoRemote, "package", pkg.Name)
		}
		g.Go(func() error {
			a.logger.Info(fmt.Sprintf("cloning %s", remote))
			if err := a.vcs.Clone(gctx, remote, pkg.Dir); err != nil {
				return zerr.With(err, "package", pkg.Name)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.NoDeps {
		return nil
	}

	install := domain.Command{Name: "npm", Args: []string{"install"}}
	for _, pkg := range reg.Packages() {
		a.logger.Info(fmt.Sprintf("installing dependencies in %s", pkg.Name))
		cmd := install
		cmd.Dir = pkg.Dir
		if err := a.executor.Execute(ctx, cmd, a.out, a.out); err != nil {
			return zerr.With(err, "package", pkg.Name)
		}
	}
	return nil
}

// Status prints the version-control status of every dirty checkout.
func (a *App) Status(ctx context.Context) error {
	reg, err := a.load()
	if err != nil {
		return err
	}

	clean := true
	for _, pkg := range reg.Packages() {
		if _, err := os.Stat(pkg.Dir); err != nil {
			continue
		}
		status, err := a.vcs.Status(ctx, pkg.Dir)
		if err != nil {
			return zerr.With(err, "package", pkg.Name)
		}
		if status == "" {
			continue
		}
		clean = false
		_, _ = fmt.Fprintf(a.out, "%s:\n%s\n", pkg.Name, indent(status))
	}
	if clean {
		a.logger.Info("all checkouts clean")
	}
	return nil
}

// Commit commits outstanding changes in every dirty checkout with one
// shared message.
func (a *App) Commit(ctx context.Context, message string) error {
	reg, err := a.load()
	if err != nil {
		return err
	}

	committed := 0
	for _, pkg := range reg.Packages() {
		if _, err := os.Stat(pkg.Dir); err != nil {
			continue
		}
		dirty, err := a.vcs.Dirty(ctx, pkg.Dir)
		if err != nil {
			return zerr.With(err, "package", pkg.Name)
		}
		if !dirty {
			continue
		}
		if err := a.vcs.CommitAll(ctx, pkg.Dir, message); err != nil {
			return zerr.With(err, "package", pkg.Name)
		}
		a.logger.Info(fmt.Sprintf("committed %s", pkg.Name))
		committed++
	}
	if committed == 0 {
		a.logger.Info("nothing to commit")
	}
	return nil
}

func (a *App) load() (*domain.Registry, error) {
	reg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return reg, nil
}

func lookup(reg *domain.Registry, name string) (*domain.Package, error) {
	pkg, ok := reg.ByName(name)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPackage, "package", name)
	}
	return pkg, nil
}

// selectPackages resolves names to packages, keeping registry order
// regardless of the order the names were given in.
func selectPackages(reg *domain.Registry, names []string) ([]*domain.Package, error) {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := reg.ByName(name); !ok {
			return nil, zerr.With(domain.ErrUnknownPackage, "package", name)
		}
		wanted[name] = struct{}{}
	}

	var packages []*domain.Package
	for _, pkg := range reg.Packages() {
		if _, ok := wanted[pkg.Name]; ok {
			packages = append(packages, pkg)
		}
	}
	return packages, nil
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
