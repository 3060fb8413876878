package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "api.yaml",
			Format:  "yaml",
			Message: "invalid syntax",
			Cause:   cause,
		}
		assert.Equal(t, "parse error in api.yaml (yaml): invalid syntax: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		assert.Equal(t, "parse error", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", &ParseError{Path: "x.json"})
		assert.ErrorIs(t, err, ErrParse)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Path: "input.json"}
	assert.Equal(t, "document not found: input.json", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	var target *NotFoundError
	wrapped := fmt.Errorf("run: %w", err)
	if assert.ErrorAs(t, wrapped, &target) {
		assert.Equal(t, "input.json", target.Path)
	}
}

func TestQueryError(t *testing.T) {
	tests := []struct {
		name     string
		err      *QueryError
		expected string
	}{
		{
			name:     "empty",
			err:      &QueryError{},
			expected: "query error",
		},
		{
			name:     "stage and query",
			err:      &QueryError{Stage: "parse", Query: ".["},
			expected: `query error during parse of ".["`,
		},
		{
			name:     "with cause",
			err:      &QueryError{Stage: "eval", Query: "add", Cause: errors.New("boom")},
			expected: `query error during eval of "add": boom`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrQuery)
		})
	}
}

func TestWriteError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &WriteError{Path: "out.yaml", Cause: cause}
	assert.Equal(t, "write error for out.yaml: permission denied", err.Error())
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, cause)
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "MinOccurrences", Value: 0, Message: "must be at least 1"}
	assert.Equal(t, "configuration error for MinOccurrences (value: 0): must be at least 1", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.NotErrorIs(t, err, ErrParse)
}
