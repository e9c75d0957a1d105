// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cascade/internal/adapters/cas"
	_ "go.trai.ch/cascade/internal/adapters/config"
	_ "go.trai.ch/cascade/internal/adapters/detector"
	_ "go.trai.ch/cascade/internal/adapters/linear"
	_ "go.trai.ch/cascade/internal/adapters/logger"
	_ "go.trai.ch/cascade/internal/adapters/platform"
	_ "go.trai.ch/cascade/internal/adapters/properties"
	_ "go.trai.ch/cascade/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/cascade/internal/app"
)
