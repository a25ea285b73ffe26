package imports

// Exported for white-box testing of the import scanner.
var (
	ScanSpecifiers = scanSpecifiers
	StripComments  = stripComments
)
