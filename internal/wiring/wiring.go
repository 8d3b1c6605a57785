// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cdb/internal/adapters/config"
	_ "go.trai.ch/cdb/internal/adapters/logger"
	_ "go.trai.ch/cdb/internal/adapters/report"
	_ "go.trai.ch/cdb/internal/adapters/shell"
	_ "go.trai.ch/cdb/internal/adapters/store"
	_ "go.trai.ch/cdb/internal/adapters/symbolmap"
	_ "go.trai.ch/cdb/internal/adapters/telemetry"
	_ "go.trai.ch/cdb/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/cdb/internal/app"
)
