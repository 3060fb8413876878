// Package jq evaluates jq filter expressions over generic document trees.
//
// The normalizer depends on two selections only: collecting every
// `properties` mapping at any depth, and merging those mappings into one
// object. A third filter flattens the path map. Compiled filters are cached
// per Evaluator, so repeated runs do not re-parse them.
package jq

import (
	"context"
	"fmt"
	"sync"

	"github.com/erraggy/oascomponents/oaserrors"
	"github.com/itchyny/gojq"
)

// Filters used by the normalizer.
const (
	// PropertiesFilter collects every mapping found under a `properties`
	// key, at any depth, in pre-order.
	PropertiesFilter = `[.. | .properties? | select(type == "object")]`
	// MergeFilter shallow-merges the collected property groups; later
	// groups win.
	MergeFilter = PropertiesFilter + ` | add`
	// FlattenFilter merges the input into a single mapping.
	FlattenFilter = `[.] | add`
)

// Evaluator runs jq filters. The zero value is ready to use and an
// Evaluator is safe for concurrent use.
type Evaluator struct {
	codes sync.Map // filter string -> *gojq.Code
}

// New creates an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) compile(filter string) (*gojq.Code, error) {
	if c, ok := e.codes.Load(filter); ok {
		return c.(*gojq.Code), nil
	}
	q, err := gojq.Parse(filter)
	if err != nil {
		return nil, &oaserrors.QueryError{Query: filter, Stage: "parse", Cause: err}
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, &oaserrors.QueryError{Query: filter, Stage: "compile", Cause: err}
	}
	actual, _ := e.codes.LoadOrStore(filter, code)
	return actual.(*gojq.Code), nil
}

// Query evaluates filter against input and returns every output value.
// Values in the result may share structure with input.
func (e *Evaluator) Query(ctx context.Context, filter string, input any) ([]any, error) {
	code, err := e.compile(filter)
	if err != nil {
		return nil, err
	}

	var results []any
	iter := code.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, &oaserrors.QueryError{Query: filter, Stage: "eval", Cause: err}
		}
		results = append(results, v)
	}
	return results, nil
}

// single evaluates a filter that must produce exactly one value.
func (e *Evaluator) single(ctx context.Context, filter string, input any) (any, error) {
	results, err := e.Query(ctx, filter, input)
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, &oaserrors.QueryError{
			Query: filter,
			Stage: "eval",
			Cause: fmt.Errorf("expected 1 result, got %d", len(results)),
		}
	}
	return results[0], nil
}

// CollectProperties returns every property group in doc.
func (e *Evaluator) CollectProperties(ctx context.Context, doc map[string]any) ([]map[string]any, error) {
	v, err := e.single(ctx, PropertiesFilter, doc)
	if err != nil {
		return nil, err
	}
	list, _ := v.([]any)
	groups := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			groups = append(groups, m)
		}
	}
	return groups, nil
}

// MergeProperties returns the property groups of doc merged into one
// mapping, later groups winning per field. A document without groups
// yields an empty mapping.
func (e *Evaluator) MergeProperties(ctx context.Context, doc map[string]any) (map[string]any, error) {
	v, err := e.single(ctx, MergeFilter, doc)
	if err != nil {
		return nil, err
	}
	return asMap(v), nil
}

// Flatten merges v into a single mapping.
func (e *Evaluator) Flatten(ctx context.Context, v map[string]any) (map[string]any, error) {
	out, err := e.single(ctx, FlattenFilter, v)
	if err != nil {
		return nil, err
	}
	return asMap(out), nil
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return make(map[string]any)
}
