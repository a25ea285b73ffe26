package git

// Exported for white-box testing.
var SplitMessages = splitMessages
