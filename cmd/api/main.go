package main

import (
	"os"

	"github.com/unifiedacademics/uap-backend/internal/pkg/logger"
	"github.com/unifiedacademics/uap-backend/internal/server"
)

// @title Unified Academic Platform API
// @version 1.0
// @description Admin backend for school records: employees, students, teachers, staff and bulk imports

// @contact.name UAP Support
// @contact.email support@uap.academy

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
