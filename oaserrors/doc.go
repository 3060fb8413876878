// Package oaserrors provides structured error types for the oascomponents library.
//
// Import path: github.com/erraggy/oascomponents/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a missing source document, an
// unparsable one, a failed query evaluation and a failed write.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures
//   - [NotFoundError]: the source document does not exist
//   - [QueryError]: the declarative query evaluator failed
//   - [WriteError]: the output document could not be written
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrNotFound]: Matches any [NotFoundError]
//   - [ErrQuery]: Matches any [QueryError]
//   - [ErrWrite]: Matches any [WriteError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	doc, format, err := document.Load("input.json")
//	if errors.Is(err, oaserrors.ErrNotFound) {
//	    fmt.Println("No input file found!")
//	    return
//	}
//
// Extract error details with errors.As():
//
//	var qErr *oaserrors.QueryError
//	if errors.As(err, &qErr) {
//	    fmt.Printf("query %q failed\n", qErr.Query)
//	}
package oaserrors
