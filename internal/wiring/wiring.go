// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/lezer-parser/lezer/internal/adapters/bundler"
	_ "github.com/lezer-parser/lezer/internal/adapters/config"
	_ "github.com/lezer-parser/lezer/internal/adapters/fs"
	_ "github.com/lezer-parser/lezer/internal/adapters/git"
	_ "github.com/lezer-parser/lezer/internal/adapters/imports"
	_ "github.com/lezer-parser/lezer/internal/adapters/logger"
	_ "github.com/lezer-parser/lezer/internal/adapters/manifest"
	_ "github.com/lezer-parser/lezer/internal/adapters/shell"
	_ "github.com/lezer-parser/lezer/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/lezer-parser/lezer/internal/app"
	_ "github.com/lezer-parser/lezer/internal/engine/builder"
	_ "github.com/lezer-parser/lezer/internal/engine/release"
	_ "github.com/lezer-parser/lezer/internal/engine/watch"
)
