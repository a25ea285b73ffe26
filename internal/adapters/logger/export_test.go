package logger

// Exported for white-box testing of the error rendering pipeline.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
