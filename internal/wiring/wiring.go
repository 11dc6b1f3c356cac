// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/strata/internal/adapters/config"
	_ "go.trai.ch/strata/internal/adapters/identity"
	_ "go.trai.ch/strata/internal/adapters/logger"
	_ "go.trai.ch/strata/internal/adapters/query"
	_ "go.trai.ch/strata/internal/adapters/store"
	_ "go.trai.ch/strata/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/strata/internal/app"
)
