package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/fitreport/internal/fitdata"
	"github.com/osse101/fitreport/internal/results"
)

// Config holds the application configuration
type Config struct {
	ResultsFile string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	FitPoints   int    `validate:"min=0"`
	FitSeed     int64
	MetricsFile string `validate:"omitempty,endswith=.prom"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		ResultsFile: getEnv(EnvResultsFile, results.DefaultFile),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		MetricsFile: getEnv(EnvMetricsFile, ""),
	}

	points, err := strconv.Atoi(getEnv(EnvFitPoints, strconv.Itoa(fitdata.DefaultPoints)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvFitPoints, err)
	}
	cfg.FitPoints = points

	seed, err := strconv.ParseInt(getEnv(EnvFitSeed, strconv.FormatInt(fitdata.DefaultSeed, 10)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvFitSeed, err)
	}
	cfg.FitSeed = seed

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the environment is a development one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
