package app

import (
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
