package ports

import "context"

// VCS defines the version-control operations the tool invokes.
// Implementations shell out to the version-control binary; no VCS semantics
// live in this codebase beyond argument construction and output parsing.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// Clone checks out a remote repository into dir.
	Clone(ctx context.Context, remote, dir string) error

	// Status returns the short status of the checkout, empty when clean.
	Status(ctx context.Context, dir string) (string, error)

	// Dirty reports whether the checkout has uncommitted changes.
	Dirty(ctx context.Context, dir string) (bool, error)

	// LatestTag returns the most recent release tag reachable from HEAD,
	// or the empty string when the repository has no tags.
	LatestTag(ctx context.Context, dir string) (string, error)

	// MessagesSince returns the full commit messages after the given tag,
	// newest first. An empty tag returns the whole history.
	MessagesSince(ctx context.Context, dir, tag string) ([]string, error)

	// CommitAll stages every tracked change in dir and commits it.
	CommitAll(ctx context.Context, dir, message string) error

	// Tag creates a tag named name at HEAD.
	Tag(ctx context.Context, dir, name string) error
}
