package bundler

// Exported for white-box testing.
var (
	BundleArgs       = bundleArgs
	DeclarationArgs  = declarationArgs
	BinSearchPath    = binSearchPath
	CollectArtifacts = collectArtifacts
	IsDeclaration    = isDeclaration
)
