package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrNotFound indicates the source document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrQuery indicates the query evaluator failed.
	ErrQuery = errors.New("query error")

	// ErrWrite indicates the output document could not be written.
	ErrWrite = errors.New("write error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a source document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the encoding the source was parsed as ("json" or "yaml")
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NotFoundError reports a source document that does not exist.
type NotFoundError struct {
	// Path is the missing file path
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	msg := "document not found"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// QueryError represents a failure to parse, compile or evaluate a query.
type QueryError struct {
	// Query is the filter expression that failed
	Query string
	// Stage is one of "parse", "compile" or "eval"
	Stage string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *QueryError) Error() string {
	msg := "query error"
	if e.Stage != "" {
		msg += " during " + e.Stage
	}
	if e.Query != "" {
		msg += fmt.Sprintf(" of %q", e.Query)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// WriteError represents a failure to serialize or write the output document.
type WriteError struct {
	// Path is the destination file path
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
