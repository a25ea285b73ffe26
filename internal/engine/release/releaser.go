// Package release implements version bumps, changelog updates, and tags.
package release

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// Options carry per-release overrides.
type Options struct {
	// Version, when non-empty, is released as given instead of being
	// computed from the pending release notes. An explicit version
	// qualifies a release even when no notes are pending.
	Version string

	// Note is a free-form changelog paragraph placed above the note
	// sections. It does not qualify a release by itself.
	Note string
}

// AllOptions carry the per-package notes for a combined release.
type AllOptions struct {
	// GrammarNote is the changelog paragraph applied to every grammar
	// package that has no note of its own.
	GrammarNote string

	// PackageNotes maps package names to their changelog paragraphs.
	PackageNotes map[string]string
}

// Releaser versions packages: it derives the next version from commit
// messages, rewrites manifests, prepends changelog entries, and commits and
// tags each package checkout.
type Releaser struct {
	vcs       ports.VCS
	manifests ports.Manifests
	logger    ports.Logger
	now       func() time.Time
}

// NewReleaser creates a new Releaser.
func NewReleaser(vcs ports.VCS, manifests ports.Manifests, logger ports.Logger) *Releaser {
	return &Releaser{
		vcs:       vcs,
		manifests: manifests,
		logger:    logger,
		now:       time.Now,
	}
}

// Release publishes a new version of one package. The version is taken from
// opts or computed from the notes pending since the last tag; with neither
// notes nor an explicit version the release is rejected before anything is
// written.
func (r *Releaser) Release(ctx context.Context, pkg *domain.Package, opts Options) (*semver.Version, error) {
	version, err := r.release(ctx, pkg, opts)
	if err != nil {
		return nil, zerr.With(err, "package", pkg.Name)
	}
	return version, nil
}

func (r *Releaser) release(ctx context.Context, pkg *domain.Package, opts Options) (*semver.Version, error) {
	manifest, err := r.manifests.Load(pkg.Dir)
	if err != nil {
		return nil, err
	}
	current, err := domain.ParseVersion(manifest.Version)
	if err != nil {
		return nil, err
	}

	notes, err := r.pendingNotes(ctx, pkg)
	if err != nil {
		return nil, err
	}

	var version *semver.Version
	if opts.Version != "" {
		version, err = domain.ParseVersion(opts.Version)
	} else {
		version, err = domain.BumpVersion(current, notes)
	}
	if err != nil {
		return nil, err
	}

	if err := r.publish(ctx, pkg, manifest, version, opts.Note, notes); err != nil {
		return nil, err
	}
	return version, nil
}

// ReleaseAll publishes every package at one shared version: the highest
// current version across the registry, minor-bumped. Missing notes do not
// block a combined release; the shared bump is the qualifier. All manifests
// are loaded and validated before the first write.
func (r *Releaser) ReleaseAll(ctx context.Context, reg *domain.Registry, opts AllOptions) (*semver.Version, error) {
	type staged struct {
		pkg      *domain.Package
		manifest *domain.Manifest
		notes    domain.ReleaseNotes
	}

	var (
		plan    []staged
		highest *semver.Version
	)
	for _, pkg := range reg.Packages() {
		manifest, err := r.manifests.Load(pkg.Dir)
		if err != nil {
			return nil, zerr.With(err, "package", pkg.Name)
		}
		current, err := domain.ParseVersion(manifest.Version)
		if err != nil {
			return nil, zerr.With(err, "package", pkg.Name)
		}
		notes, err := r.pendingNotes(ctx, pkg)
		if err != nil {
			return nil, zerr.With(err, "package", pkg.Name)
		}
		if highest == nil || current.GreaterThan(highest) {
			highest = current
		}
		plan = append(plan, staged{pkg: pkg, manifest: manifest, notes: notes})
	}

	next := highest.IncMinor()
	version := &next

	for _, entry := range plan {
		rewriteConstraints(reg, entry.pkg, entry.manifest, version)
		note := noteFor(entry.pkg, opts)
		if err := r.publish(ctx, entry.pkg, entry.manifest, version, note, entry.notes); err != nil {
			return nil, zerr.With(err, "package", entry.pkg.Name)
		}
	}
	return version, nil
}

// BumpDeps rewrites the constraints every manifest declares on other
// registry packages to match the given version. Manifests without such
// constraints are left untouched.
func (r *Releaser) BumpDeps(reg *domain.Registry, version string) error {
	v, err := domain.ParseVersion(version)
	if err != nil {
		return err
	}

	for _, pkg := range reg.Packages() {
		manifest, err := r.manifests.Load(pkg.Dir)
		if err != nil {
			return zerr.With(err, "package", pkg.Name)
		}
		if !rewriteConstraints(reg, pkg, manifest, v) {
			continue
		}
		if err := r.manifests.Save(manifest); err != nil {
			return zerr.With(err, "package", pkg.Name)
		}
		r.logger.Info(fmt.Sprintf("updated dependencies in %s", pkg.Name))
	}
	return nil
}

// Notes renders the changelog content pending for a package since its last
// tag. Nothing is written; with no pending notes the same rejection as a
// release applies.
func (r *Releaser) Notes(ctx context.Context, pkg *domain.Package) (string, error) {
	notes, err := r.pendingNotes(ctx, pkg)
	if err != nil {
		return "", zerr.With(err, "package", pkg.Name)
	}
	if notes.Empty() {
		return "", zerr.With(domain.ErrNoReleaseNotes, "package", pkg.Name)
	}
	return strings.TrimPrefix(renderSections(notes), "\n"), nil
}

// pendingNotes collects release notes from the commit messages after the
// package's latest tag. An untagged checkout contributes its whole history.
func (r *Releaser) pendingNotes(ctx context.Context, pkg *domain.Package) (domain.ReleaseNotes, error) {
	tag, err := r.vcs.LatestTag(ctx, pkg.Dir)
	if err != nil {
		return domain.ReleaseNotes{}, err
	}
	messages, err := r.vcs.MessagesSince(ctx, pkg.Dir, tag)
	if err != nil {
		return domain.ReleaseNotes{}, err
	}
	return domain.CollectNotes(messages), nil
}

// publish writes the changelog entry and manifest, then commits and tags the
// checkout at the new version.
func (r *Releaser) publish(ctx context.Context, pkg *domain.Package, manifest *domain.Manifest, version *semver.Version, note string, notes domain.ReleaseNotes) error {
	entry := renderEntry(version, r.now(), note, notes)
	if err := prependChangelog(pkg, entry); err != nil {
		return err
	}

	if err := manifest.SetVersion(version.String()); err != nil {
		return err
	}
	if err := r.manifests.Save(manifest); err != nil {
		return err
	}

	if err := r.vcs.CommitAll(ctx, pkg.Dir, "Mark version "+version.String()); err != nil {
		return err
	}
	if err := r.vcs.Tag(ctx, pkg.Dir, version.String()); err != nil {
		return err
	}

	r.logger.Info(fmt.Sprintf("released %s %s", pkg.Name, version))
	return nil
}

// rewriteConstraints points the manifest's constraints on other registry
// packages at the given version. It reports whether anything changed.
func rewriteConstraints(reg *domain.Registry, pkg *domain.Package, manifest *domain.Manifest, version *semver.Version) bool {
	constraint := domain.Constraint(version)

	changed := false
	for _, dep := range reg.Packages() {
		if dep.Name == pkg.Name {
			continue
		}
		if manifest.SetDependency(dep.NPMName(reg.Scope()), constraint) {
			changed = true
		}
	}
	return changed
}

// noteFor picks the changelog paragraph for one package of a combined
// release. A package-specific note wins over the shared grammar note.
func noteFor(pkg *domain.Package, opts AllOptions) string {
	if note, ok := opts.PackageNotes[pkg.Name]; ok {
		return note
	}
	if pkg.Kind == domain.KindGrammar {
		return opts.GrammarNote
	}
	return ""
}

// renderEntry renders one changelog entry: a version header, an optional
// free-form paragraph, then one section per non-empty note bucket.
func renderEntry(version *semver.Version, date time.Time, note string, notes domain.ReleaseNotes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (%s)\n", version, date.Format("2006-01-02"))
	if note != "" {
		b.WriteString("\n" + note + "\n")
	}
	b.WriteString(renderSections(notes))
	return b.String()
}

func renderSections(notes domain.ReleaseNotes) string {
	var b strings.Builder
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n### " + title + "\n")
		for _, item := range items {
			b.WriteString("\n" + item + "\n")
		}
	}
	section("Breaking changes", notes.Breaking)
	section("New features", notes.Feature)
	section("Bug fixes", notes.Fix)
	return b.String()
}

// prependChangelog puts a new entry at the top of the package changelog,
// creating the file on first release.
func prependChangelog(pkg *domain.Package, entry string) error {
	path := filepath.Join(pkg.Dir, domain.ChangelogFileName)
	existing, err := os.ReadFile(path) //nolint:gosec // Path is derived from the workspace configuration.
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to read changelog")
	}

	content := entry
	if len(existing) > 0 {
		content += "\n" + string(existing)
	}
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write changelog")
	}
	return nil
}
