package logger

// Context Keys
const (
	ContextKeyRunID = "run_id"
)

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "fitreport"
	DefaultVersion     = "dev"
)

// Version is stamped at build time with -ldflags "-X .../logger.Version=..."
var Version = DefaultVersion

// EnvironmentDev is the environment reported when none is configured
const EnvironmentDev = "dev"

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRunID       = "run_id"
)
