package domain

import (
	"errors"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// ParseVersion parses a semantic version string.
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, zerr.With(errors.Join(ErrInvalidVersion, err), "version", s)
	}
	return v, nil
}

// BumpVersion computes the next version implied by a set of release notes.
//
// Breaking changes bump the major version, except while the major version is
// still 0 (pre-1.0 packages treat breaking changes as minor bumps). Features
// bump the minor version, fixes the patch version. Empty notes yield
// ErrNoReleaseNotes: a release must be backed by at least one qualifying
// change.
func BumpVersion(current *semver.Version, notes ReleaseNotes) (*semver.Version, error) {
	if notes.Empty() {
		return nil, ErrNoReleaseNotes
	}

	var next semver.Version
	switch {
	case len(notes.Breaking) > 0 && current.Major() != 0:
		next = current.IncMajor()
	case len(notes.Breaking) > 0 || len(notes.Feature) > 0:
		next = current.IncMinor()
	default:
		next = current.IncPatch()
	}
	return &next, nil
}

// Constraint returns the manifest dependency constraint for a version,
// matching the caret ranges the packages publish with.
func Constraint(v *semver.Version) string {
	return "^" + v.String()
}
