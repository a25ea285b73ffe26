package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no lezer.yaml is found in the
	// working directory or any parent.
	ErrConfigNotFound = zerr.New("no " + ConfigFileName + " found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrNoPackages is returned when the configuration declares no packages.
	ErrNoPackages = zerr.New("configuration declares no packages")

	// ErrInvalidPackageName is returned when a package name contains invalid characters.
	ErrInvalidPackageName = zerr.New("package name can only contain lowercase alphanumeric characters and hyphens")

	// ErrDuplicatePackage is returned when two packages share a name.
	ErrDuplicatePackage = zerr.New("duplicate package name")

	// ErrInvalidKind is returned when a package kind is not core or grammar.
	ErrInvalidKind = zerr.New("invalid package kind, expected 'core' or 'grammar'")

	// ErrUnknownPackage is returned when a command names a package that is not registered.
	ErrUnknownPackage = zerr.New("unknown package")

	// ErrMissingSource is returned when a source file disappears while its
	// imports are being scanned. This is fatal for the whole build.
	ErrMissingSource = zerr.New("missing source file")

	// ErrBuildFailed is returned when the external bundler fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrNoReleaseNotes is returned when a release finds no qualifying
	// commit notes and no explicit version was given.
	ErrNoReleaseNotes = zerr.New("No new release notes!")

	// ErrInvalidVersion is returned when a version string does not parse as semver.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrManifestField is returned when a required manifest field cannot be located.
	ErrManifestField = zerr.New("field not found in manifest")

	// ErrMissingCheckout is returned when a package directory does not exist on disk.
	ErrMissingCheckout = zerr.New("package is not checked out, run 'lez install'")

	// ErrNoRemote is returned when a package checkout is missing and no
	// clone URL can be derived for it.
	ErrNoRemote = zerr.New("no repository configured for package")

	// ErrNoCommand is returned when run is invoked without a command.
	ErrNoCommand = zerr.New("no command given")
)
