package builder

import (
	"os"
	"time"

	"github.com/lezer-parser/lezer/internal/core/domain"
)

// oldestOutput returns the modification time of the package's stalest
// required output. A missing output yields the zero time, read as "never
// built".
func oldestOutput(pkg *domain.Package) time.Time {
	var oldest time.Time
	for i, path := range pkg.RequiredOutputs() {
		info, err := os.Stat(path)
		if err != nil {
			return time.Time{}
		}
		if i == 0 || info.ModTime().Before(oldest) {
			oldest = info.ModTime()
		}
	}
	return oldest
}

// newestInput returns the modification time of the freshest input file.
// A file that vanishes between enumeration and stat is skipped, not an
// error.
func newestInput(inputs []string) time.Time {
	var newest time.Time
	for _, path := range inputs {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	return newest
}

// stale reports whether the package must be rebuilt. A never-built package
// is always stale; otherwise the stalest output is compared against the
// freshest input.
func (b *Builder) stale(reg *domain.Registry, pkg *domain.Package) (bool, error) {
	oldest := oldestOutput(pkg)
	if oldest.IsZero() {
		return true, nil
	}

	inputs, err := b.resolver.InputFiles(reg, pkg)
	if err != nil {
		return false, err
	}
	return oldest.Before(newestInput(inputs)), nil
}
