// Package fs provides file system adapters for walking and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping version control and
// dependency directories plus any entries matching the ignore patterns.
// filepath.WalkDir yields paths starting with root, so an absolute root
// yields absolute paths.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			name := d.Name()

			if d.IsDir() {
				// Always skip version control metadata and installed dependencies.
				if name == ".git" || name == "node_modules" || matchesAny(ignores, name) {
					return filepath.SkipDir
				}
				return nil
			}

			if matchesAny(ignores, name) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
