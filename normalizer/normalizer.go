package normalizer

import (
	"context"
	"fmt"

	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/internal/jq"
	"github.com/erraggy/oascomponents/internal/schemautil"
	"github.com/erraggy/oascomponents/oaserrors"
)

// DefaultMinOccurrences is the number of inline occurrences a field name
// needs before it is hoisted into a shared definition.
const DefaultMinOccurrences = 2

// DefaultPlaceholderPrefix prefixes the placeholder names of rewritten paths.
const DefaultPlaceholderPrefix = "id_"

// QueryEvaluator is the declarative query capability the normalizer
// relies on. *jq.Evaluator implements it.
type QueryEvaluator interface {
	// CollectProperties returns every `properties` mapping of doc, at any depth.
	CollectProperties(ctx context.Context, doc map[string]any) ([]map[string]any, error)
	// MergeProperties returns all `properties` mappings merged into one, later winning.
	MergeProperties(ctx context.Context, doc map[string]any) (map[string]any, error)
	// Flatten merges v into a single mapping.
	Flatten(ctx context.Context, v map[string]any) (map[string]any, error)
}

var _ QueryEvaluator = (*jq.Evaluator)(nil)

// Hoist records one field name hoisted into a shared definition.
type Hoist struct {
	// Name is the field name and the components.schemas key
	Name string
	// Kind is the classification of the first-discovered variant
	Kind Kind
	// Type is the type tag of the registered definition, if any
	Type string
	// Variants is the number of inline occurrences discovered
	Variants int
	// Shapes is the number of structurally distinct variants
	Shapes int
	// Occurrences is the number of inline occurrences replaced by a reference
	Occurrences int
}

// Result contains the results of a normalize operation
type Result struct {
	// Document is the normalized document
	Document map[string]any
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat document.Format
	// SourcePath is the path to the source file, if any
	SourcePath string
	// TypeTable is the canonical type of every field name with a resolved type
	TypeTable TypeTable
	// Registry holds the shared definitions hoisted by this run
	Registry *Registry
	// Hoists lists the hoisted field names in processing order
	Hoists []Hoist
	// PathRewrites lists the rewritten path templates
	PathRewrites []PathRewrite
	// DryRun is true when the input document was left untouched
	DryRun bool
}

// HasChanges returns true if any definition was hoisted or path rewritten
func (r *Result) HasChanges() bool {
	return len(r.Hoists) > 0 || len(r.PathRewrites) > 0
}

// Normalizer discovers repeated property definitions, hoists them into
// components.schemas and rewrites path identifiers into placeholders.
type Normalizer struct {
	// MinOccurrences is the number of inline occurrences a field name needs
	// to be hoisted. 1 hoists every field name.
	MinOccurrences int
	// PlaceholderPrefix prefixes the names of path placeholders.
	PlaceholderPrefix string
	// SkipSchemas disables property hoisting.
	SkipSchemas bool
	// SkipPaths disables path placeholder normalization.
	SkipPaths bool
	// DryRun works on a copy and leaves the input document untouched.
	DryRun bool
	// Logger receives diagnostics. Defaults to document.NopLogger.
	Logger document.Logger
	// Evaluator runs the property and path queries. Defaults to a jq evaluator.
	Evaluator QueryEvaluator
}

// New creates a new Normalizer instance with default settings
func New() *Normalizer {
	return &Normalizer{
		MinOccurrences:    DefaultMinOccurrences,
		PlaceholderPrefix: DefaultPlaceholderPrefix,
	}
}

func (n *Normalizer) log() document.Logger {
	if n.Logger == nil {
		return document.NopLogger{}
	}
	return n.Logger
}

func (n *Normalizer) evaluator() QueryEvaluator {
	if n.Evaluator == nil {
		n.Evaluator = jq.New()
	}
	return n.Evaluator
}

func (n *Normalizer) validate() error {
	if n.MinOccurrences < 1 {
		return &oaserrors.ConfigError{Option: "MinOccurrences", Value: n.MinOccurrences, Message: "must be at least 1"}
	}
	if n.PlaceholderPrefix == "" {
		return &oaserrors.ConfigError{Option: "PlaceholderPrefix", Message: "cannot be empty"}
	}
	return nil
}

// NormalizeDocument normalizes doc in place with default settings.
func NormalizeDocument(ctx context.Context, doc map[string]any) (*Result, error) {
	return New().NormalizeDocument(ctx, doc)
}

// Normalize loads the document at path and normalizes it.
func (n *Normalizer) Normalize(ctx context.Context, path string) (*Result, error) {
	doc, format, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	result, err := n.NormalizeDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	result.SourcePath = path
	result.SourceFormat = format
	return result, nil
}

// NormalizeDocument normalizes doc in place (or a copy of it when DryRun is
// set). components.schemas is created when absent; paths are processed
// only when present.
func (n *Normalizer) NormalizeDocument(ctx context.Context, doc map[string]any) (*Result, error) {
	if err := n.validate(); err != nil {
		return nil, fmt.Errorf("normalizer: invalid options: %w", err)
	}
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "Document", Message: "document cannot be nil"}
	}
	if n.DryRun {
		doc = schemautil.CopyNode(doc)
	}

	result := &Result{
		Document:     doc,
		SourceFormat: document.FormatUnknown,
		TypeTable:    TypeTable{},
		Registry:     newRegistry(),
		DryRun:       n.DryRun,
	}
	document.Schemas(doc)

	if !n.SkipSchemas {
		if err := n.hoistSchemas(ctx, doc, result); err != nil {
			return nil, err
		}
	}
	if !n.SkipPaths {
		if err := n.normalizePaths(ctx, doc, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Plan runs discovery only: it returns the property groups, the canonical
// type table, the variants and the hoisting worklist without modifying doc.
func (n *Normalizer) Plan(ctx context.Context, doc map[string]any) (*Plan, error) {
	if err := n.validate(); err != nil {
		return nil, fmt.Errorf("normalizer: invalid options: %w", err)
	}
	groups, err := n.collectGroups(ctx, doc)
	if err != nil {
		return nil, err
	}
	reps, err := n.evaluator().MergeProperties(ctx, doc)
	if err != nil {
		return nil, err
	}
	reps = schemautil.CopyNode(reps)

	variants := CollectVariants(groups)
	return &Plan{
		Groups:    groups,
		TypeTable: ResolveTypes(groups),
		Variants:  variants,
		Worklist:  Sequence(variants, reps, n.MinOccurrences),
	}, nil
}

// Plan is the outcome of discovery over a document.
type Plan struct {
	// Groups are copies of every property group, in discovery order
	Groups []map[string]any
	// TypeTable is the canonical type per field name
	TypeTable TypeTable
	// Variants holds every shape observed per field name
	Variants *Variants
	// Worklist is the hoisting order
	Worklist []WorkItem
}

func (n *Normalizer) hoistSchemas(ctx context.Context, doc map[string]any, result *Result) error {
	plan, err := n.Plan(ctx, doc)
	if err != nil {
		return err
	}
	log := n.log()
	for _, name := range plan.TypeTable.Names() {
		log.Debug("found component type", "name", name, "type", plan.TypeTable[name])
	}

	h := newHoister(doc, plan.TypeTable, plan.Variants, log)
	for _, item := range plan.Worklist {
		if err := ctx.Err(); err != nil {
			return err
		}
		hoist, err := h.hoist(item)
		if err != nil {
			return fmt.Errorf("normalizer: hoisting %q: %w", item.Name, err)
		}
		result.Hoists = append(result.Hoists, hoist)
	}
	result.TypeTable = plan.TypeTable
	result.Registry = h.registry
	return nil
}

func (n *Normalizer) normalizePaths(ctx context.Context, doc map[string]any, result *Result) error {
	paths, ok := document.Paths(doc)
	if !ok {
		return nil
	}
	result.PathRewrites = normalizePaths(paths, n.PlaceholderPrefix, n.log())

	flattened, err := n.evaluator().Flatten(ctx, paths)
	if err != nil {
		return err
	}
	doc["paths"] = flattened
	return nil
}
