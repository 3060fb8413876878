package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/erraggy/oascomponents/internal/schemautil"
	"github.com/erraggy/oascomponents/normalizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The document to inspect"`
	MinOccurrences int       `json:"min_occurrences,omitempty" jsonschema:"Inline occurrences a field name needs to be hoisted (default 2)"`
	Name           string    `json:"name,omitempty"            jsonschema:"Only report field names matching this glob (e.g. *_id)"`
	Offset         int       `json:"offset,omitempty"          jsonschema:"Skip the first N candidates (for pagination)"`
	Limit          int       `json:"limit,omitempty"           jsonschema:"Maximum number of candidates to return (default 100)"`
}

type candidateSummary struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Type     string `json:"type,omitempty"`
	Variants int    `json:"variants"`
	Shapes   int    `json:"shapes"`
}

type inspectOutput struct {
	GroupCount     int                `json:"group_count"`
	FieldCount     int                `json:"field_count"`
	CandidateCount int                `json:"candidate_count"`
	Returned       int                `json:"returned"`
	Candidates     []candidateSummary `json:"candidates,omitempty"`
	Types          map[string]string  `json:"types,omitempty"`
}

func handleInspect(ctx context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	if err := validateGlobPattern(input.Name); err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	spec, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	n := normalizer.New()
	n.MinOccurrences = cfg.MinOccurrences
	if input.MinOccurrences > 0 {
		n.MinOccurrences = input.MinOccurrences
	}
	plan, err := n.Plan(ctx, spec.doc)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		GroupCount: len(plan.Groups),
		FieldCount: len(plan.Variants.Names()),
	}

	candidates := makeSlice[candidateSummary](len(plan.Worklist))
	for _, item := range plan.Worklist {
		if !matchGlobName(input.Name, item.Name) {
			continue
		}
		candidates = append(candidates, candidateSummary{
			Name:     item.Name,
			Kind:     item.Kind.String(),
			Type:     plan.TypeTable[item.Name],
			Variants: item.Variants,
			Shapes:   schemautil.CountShapes(plan.Variants.Nodes(item.Name)),
		})
	}
	output.CandidateCount = len(candidates)
	output.Candidates = paginate(candidates, input.Offset, input.Limit)
	output.Returned = len(output.Candidates)

	for _, name := range plan.TypeTable.Names() {
		if !matchGlobName(input.Name, name) {
			continue
		}
		if output.Types == nil {
			output.Types = make(map[string]string)
		}
		output.Types[name] = plan.TypeTable[name]
	}

	return nil, output, nil
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlobName never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlobName reports whether name matches pattern. An empty pattern
// matches everything; a pattern without glob characters must match exactly.
func matchGlobName(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	ok, _ := filepath.Match(pattern, name)
	return ok
}
