package main

import (
	"os"

	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// @title Student Records API
// @version 1.0
// @description CRUD API for student records

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
