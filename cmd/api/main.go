package main

import (
	"context"
	"os"

	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/server"
)

// @title Personnel API
// @version 1.0
// @description Employee records: departments, employees, search and status lifecycle.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	ctx := context.Background()

	srv, err := server.NewServer(ctx)
	if err != nil {
		// Details are logged by the setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
