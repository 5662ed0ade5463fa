package config

// Environment variable names
const (
	EnvResultsFile = "RESULTS_FILE"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvFitPoints   = "FIT_POINTS"
	EnvFitSeed     = "FIT_SEED"
	EnvMetricsFile = "METRICS_FILE"
)

// Default values
const (
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
)

// EnvVars lists every variable Load reads
var EnvVars = []string{
	EnvResultsFile,
	EnvLogLevel,
	EnvLogFormat,
	EnvEnvironment,
	EnvFitPoints,
	EnvFitSeed,
	EnvMetricsFile,
}
