package watcher

// Exported for white-box testing.
var ConvertEvent = convertEvent
