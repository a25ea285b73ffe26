package domain

const (
	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "lezer.yaml"

	// SourceDirName is the directory holding a package's sources.
	SourceDirName = "src"

	// DistDirName is the directory holding a package's build outputs.
	DistDirName = "dist"

	// ManifestFileName is the name of a package's manifest file.
	ManifestFileName = "package.json"

	// ChangelogFileName is the name of a package's changelog file.
	ChangelogFileName = "CHANGELOG.md"

	// MainOutputName is the base name of the primary bundle output.
	MainOutputName = "index.cjs"

	// ESMOutputName is the base name of the alternate-format bundle output.
	ESMOutputName = "index.js"

	// DeclarationOutputName is the base name of the bundled declaration file.
	DeclarationOutputName = "index.d.ts"

	// DefaultEntryPoint is the entry point used when a package declares none.
	DefaultEntryPoint = "src/index.ts"

	// DefaultScope is the npm scope packages are published under.
	DefaultScope = "@lezer"

	// DirPerm is the default permission for directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
