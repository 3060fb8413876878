package normalizer

import (
	"context"
	"fmt"

	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/oaserrors"
)

// Option is a function that configures a normalize operation
type Option func(*normalizeConfig) error

// normalizeConfig holds configuration for a normalize operation
type normalizeConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	doc      map[string]any

	minOccurrences    int
	placeholderPrefix string
	skipSchemas       bool
	skipPaths         bool
	dryRun            bool
	logger            document.Logger
	evaluator         QueryEvaluator
}

// NormalizeWithOptions normalizes a document using functional options.
// This provides a flexible, extensible API that combines input source
// specification and configuration in a single function call.
//
// Example:
//
//	result, err := normalizer.NormalizeWithOptions(ctx,
//	    normalizer.WithFilePath("openapi.yaml"),
//	    normalizer.WithMinOccurrences(1),
//	)
func NormalizeWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("normalizer: invalid options: %w", err)
	}

	n := &Normalizer{
		MinOccurrences:    cfg.minOccurrences,
		PlaceholderPrefix: cfg.placeholderPrefix,
		SkipSchemas:       cfg.skipSchemas,
		SkipPaths:         cfg.skipPaths,
		DryRun:            cfg.dryRun,
		Logger:            cfg.logger,
		Evaluator:         cfg.evaluator,
	}

	if cfg.filePath != nil {
		return n.Normalize(ctx, *cfg.filePath)
	}
	return n.NormalizeDocument(ctx, cfg.doc)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*normalizeConfig, error) {
	cfg := &normalizeConfig{
		minOccurrences:    DefaultMinOccurrences,
		placeholderPrefix: DefaultPlaceholderPrefix,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.doc != nil {
		sources++
	}
	if sources == 0 {
		return nil, &oaserrors.ConfigError{Option: "input", Message: "no input source specified: use WithFilePath or WithDocument"}
	}
	if sources > 1 {
		return nil, &oaserrors.ConfigError{Option: "input", Message: "multiple input sources specified: use only one of WithFilePath or WithDocument"}
	}

	return cfg, nil
}

// WithFilePath specifies the JSON or YAML file to normalize
func WithFilePath(path string) Option {
	return func(cfg *normalizeConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "WithFilePath", Message: "file path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already decoded document to normalize
func WithDocument(doc map[string]any) Option {
	return func(cfg *normalizeConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "WithDocument", Message: "document cannot be nil"}
		}
		cfg.doc = doc
		return nil
	}
}

// WithMinOccurrences sets how many inline occurrences a field name needs
// to be hoisted. Default: 2
func WithMinOccurrences(n int) Option {
	return func(cfg *normalizeConfig) error {
		if n < 1 {
			return &oaserrors.ConfigError{Option: "WithMinOccurrences", Value: n, Message: "must be at least 1"}
		}
		cfg.minOccurrences = n
		return nil
	}
}

// WithPlaceholderPrefix sets the prefix of path placeholder names. Default: "id_"
func WithPlaceholderPrefix(prefix string) Option {
	return func(cfg *normalizeConfig) error {
		if prefix == "" {
			return &oaserrors.ConfigError{Option: "WithPlaceholderPrefix", Message: "prefix cannot be empty"}
		}
		cfg.placeholderPrefix = prefix
		return nil
	}
}

// WithSkipSchemas disables property hoisting
func WithSkipSchemas(skip bool) Option {
	return func(cfg *normalizeConfig) error {
		cfg.skipSchemas = skip
		return nil
	}
}

// WithSkipPaths disables path placeholder normalization
func WithSkipPaths(skip bool) Option {
	return func(cfg *normalizeConfig) error {
		cfg.skipPaths = skip
		return nil
	}
}

// WithDryRun works on a copy of the document. Default: false
func WithDryRun(dryRun bool) Option {
	return func(cfg *normalizeConfig) error {
		cfg.dryRun = dryRun
		return nil
	}
}

// WithLogger sets the logger for diagnostics
func WithLogger(l document.Logger) Option {
	return func(cfg *normalizeConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithEvaluator replaces the default jq query evaluator
func WithEvaluator(e QueryEvaluator) Option {
	return func(cfg *normalizeConfig) error {
		if e == nil {
			return &oaserrors.ConfigError{Option: "WithEvaluator", Message: "evaluator cannot be nil"}
		}
		cfg.evaluator = e
		return nil
	}
}
