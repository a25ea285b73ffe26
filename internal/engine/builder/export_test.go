package builder

// Exported for white-box testing.
var (
	OldestOutput = oldestOutput
	NewestInput  = newestInput
)
