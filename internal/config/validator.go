package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldEnv maps Config fields back to the variable that sets them
var fieldEnv = map[string]string{
	"ResultsFile": EnvResultsFile,
	"LogLevel":    EnvLogLevel,
	"LogFormat":   EnvLogFormat,
	"Environment": EnvEnvironment,
	"FitPoints":   EnvFitPoints,
	"FitSeed":     EnvFitSeed,
	"MetricsFile": EnvMetricsFile,
}

// Validate checks cfg against its struct tags and reports every invalid
// setting by environment variable name
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	problems := FormatValidationError(err)
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, problems[k]))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// FormatValidationError formats validation errors into a map keyed by
// environment variable
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field, ok := fieldEnv[e.Field()]
		if !ok {
			field = strings.ToUpper(e.Field())
		}
		switch e.Tag() {
		case "required":
			errs[field] = "must be set"
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s], got %q", e.Param(), e.Value())
		case "min":
			errs[field] = fmt.Sprintf("must be at least %s, got %v", e.Param(), e.Value())
		case "endswith":
			errs[field] = fmt.Sprintf("must end in %s", e.Param())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}
