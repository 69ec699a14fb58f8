package app

import "github.com/javelin-build/javelin/internal/core/ports"

// Components contains the initialized application components.
// It provides controlled access to the pieces needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
