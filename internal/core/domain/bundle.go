package domain

// OutputFormat selects the module format of one bundler output.
type OutputFormat string

const (
	// FormatCJS is the primary CommonJS output format.
	FormatCJS OutputFormat = "cjs"
	// FormatES is the alternate ES module output format.
	FormatES OutputFormat = "es"
)

// OutputSpec describes one artifact the bundler must produce.
type OutputSpec struct {
	// File is the artifact base name within the package's dist directory.
	File string
	// Format is the module format to emit.
	Format OutputFormat
	// Sourcemap requests a sibling .map artifact.
	Sourcemap bool
	// Declarations requests bundled type declaration artifacts. At most one
	// output spec per job carries this, so declarations are emitted once.
	Declarations bool
}

// BundleJob is the input to one external bundler invocation.
type BundleJob struct {
	// Package is the name of the package being bundled, for diagnostics.
	Package string
	// Dir is the package directory the bundler runs in.
	Dir string
	// Entry is the absolute path of the entry point.
	Entry string
	// Outputs lists the artifacts to produce.
	Outputs []OutputSpec
}

// Artifact is one file produced by a bundler invocation, held in memory so
// the build driver decides what actually reaches disk.
type Artifact struct {
	// Name is the artifact path relative to the package's dist directory.
	Name string
	// Data is the artifact content.
	Data []byte
	// Declaration marks type declaration artifacts, which are written with
	// change suppression.
	Declaration bool
}

// BundleResult is the output of one bundler invocation.
type BundleResult struct {
	Artifacts []Artifact
}

// JobFor derives the bundler job for a package.
func JobFor(pkg *Package) BundleJob {
	outputs := []OutputSpec{{
		File:         MainOutputName,
		Format:       FormatCJS,
		Sourcemap:    true,
		Declarations: true,
	}}
	if pkg.ESM {
		outputs = append(outputs, OutputSpec{
			File:      ESMOutputName,
			Format:    FormatES,
			Sourcemap: true,
		})
	}
	return BundleJob{
		Package: pkg.Name,
		Dir:     pkg.Dir,
		Entry:   pkg.EntryPath(),
		Outputs: outputs,
	}
}
