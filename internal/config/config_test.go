package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "sample_results.json", cfg.ResultsFile)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, 100, cfg.FitPoints)
		assert.Equal(t, int64(42), cfg.FitSeed)
		assert.Empty(t, cfg.MetricsFile)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("RESULTS_FILE", "runs/fit_042.json")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("FIT_POINTS", "250")
		t.Setenv("FIT_SEED", "-7")
		t.Setenv("METRICS_FILE", "/var/lib/node_exporter/fitreport.prom")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "runs/fit_042.json", cfg.ResultsFile)
		assert.Equal(t, "debug", cfg.LogLevel, "level is normalized to lower case")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, 250, cfg.FitPoints)
		assert.Equal(t, int64(-7), cfg.FitSeed)
		assert.Equal(t, "/var/lib/node_exporter/fitreport.prom", cfg.MetricsFile)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("reads a .env file from the working directory", func(t *testing.T) {
		clearEnvVars(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FIT_POINTS=12\nRESULTS_FILE=from_dotenv.json\n"), 0600))
		t.Chdir(dir)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 12, cfg.FitPoints)
		assert.Equal(t, "from_dotenv.json", cfg.ResultsFile)
	})

	t.Run("returns error for invalid FIT_POINTS", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("FIT_POINTS", "many")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid FIT_POINTS")
	})

	t.Run("returns error for invalid FIT_SEED", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("FIT_SEED", "4.2")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid FIT_SEED")
	})

	t.Run("validation failures name the variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_LEVEL", "verbose")
		t.Setenv("FIT_POINTS", "-1")
		t.Setenv("METRICS_FILE", "metrics.txt")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "LOG_LEVEL")
		assert.Contains(t, err.Error(), "FIT_POINTS: must be at least 0")
		assert.Contains(t, err.Error(), "METRICS_FILE: must end in .prom")
	})

	t.Run("empty results file is rejected", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RESULTS_FILE", "")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "RESULTS_FILE: must be set")
	})
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	for _, key := range EnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
