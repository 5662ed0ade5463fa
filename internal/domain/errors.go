package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Document shape errors
	ErrMsgMissingField   = "missing field"
	ErrMsgUnexpectedType = "unexpected type"

	// Table errors
	ErrMsgUnknownColumn     = "unknown column"
	ErrMsgUnsupportedFormat = "unsupported format"

	// Curve generation errors
	ErrMsgInvalidPointCount = "number of points must be non-negative"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Document shape errors
	ErrMissingField   = errors.New(ErrMsgMissingField)
	ErrUnexpectedType = errors.New(ErrMsgUnexpectedType)

	// Table errors
	ErrUnknownColumn     = errors.New(ErrMsgUnknownColumn)
	ErrUnsupportedFormat = errors.New(ErrMsgUnsupportedFormat)

	// Curve generation errors
	ErrInvalidPointCount = errors.New(ErrMsgInvalidPointCount)
)
