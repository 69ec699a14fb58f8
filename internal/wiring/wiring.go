// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/javelin-build/javelin/internal/adapters/cache"
	_ "github.com/javelin-build/javelin/internal/adapters/config"
	_ "github.com/javelin-build/javelin/internal/adapters/fs"
	_ "github.com/javelin-build/javelin/internal/adapters/logger"
	_ "github.com/javelin-build/javelin/internal/adapters/render"
	_ "github.com/javelin-build/javelin/internal/adapters/telemetry"
	_ "github.com/javelin-build/javelin/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "github.com/javelin-build/javelin/internal/app"
	_ "github.com/javelin-build/javelin/internal/engine/planner"
)
