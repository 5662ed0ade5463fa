package main

import (
	"github.com/osse101/fitreport/internal/config"
	"github.com/osse101/fitreport/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only help while developing
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.Environment,
		cfg.IsDevelopment() && cfg.LogLevel == logger.LogLevelDebug,
	)

	logger.InitLogger(loggerConfig)
}
