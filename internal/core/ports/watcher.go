package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher watches an explicit set of files for changes.
//
// Watches are per-file, not recursive: the watch session knows exactly which
// paths feed which package and registers each one. A watch lost to a rename
// or removal is re-armed by the caller via Add once the path settles.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Add registers a watch on the given file path.
	Add(path string) error

	// Start begins delivering events until the context is canceled.
	Start(ctx context.Context) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator over file system events. The iterator
	// terminates when the watcher stops.
	Events() iter.Seq[WatchEvent]
}
