// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wandler/internal/adapters/config"
	_ "go.trai.ch/wandler/internal/adapters/logger"
	_ "go.trai.ch/wandler/internal/adapters/shell"
	_ "go.trai.ch/wandler/internal/adapters/telemetry"
	_ "go.trai.ch/wandler/internal/adapters/terminal"
	// Register app nodes.
	_ "go.trai.ch/wandler/internal/app"
)
