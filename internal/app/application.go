package app

import (
	"log/slog"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the server configuration, the loaded dataset, the
// recomputation driver over it, and a logger.
type Application struct {
	Config     Config
	DataConfig dataset.Config
	Logger     *slog.Logger
	Dataset    *dataset.Manager
	Views      *analysis.Recomputer
}

// Config holds all the configuration settings for our Application: the
// network port that we want the server to listen on, the name of the
// current operating environment for the Application (development,
// staging, production, etc.), and the per-client request rate limit.
// We read these configuration settings from command-line flags when the
// Application starts.
type Config struct {
	Port      int
	Env       string
	RateLimit int
}
