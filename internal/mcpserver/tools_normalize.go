package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/normalizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type normalizeInput struct {
	Spec              specInput `json:"spec"                         jsonschema:"The document to normalize"`
	MinOccurrences    int       `json:"min_occurrences,omitempty"    jsonschema:"Inline occurrences a field name needs to be hoisted (default 2; 1 hoists every field)"`
	PlaceholderPrefix string    `json:"placeholder_prefix,omitempty" jsonschema:"Prefix of path placeholder names (default id_)"`
	SkipSchemas       bool      `json:"skip_schemas,omitempty"       jsonschema:"Do not hoist property definitions"`
	SkipPaths         bool      `json:"skip_paths,omitempty"         jsonschema:"Do not rewrite path templates"`
	DryRun            bool      `json:"dry_run,omitempty"            jsonschema:"Report the changes without writing the document"`
	IncludeDocument   bool      `json:"include_document,omitempty"   jsonschema:"Include the full normalized document in output"`
	Output            string    `json:"output,omitempty"             jsonschema:"File path to write the normalized document. The encoding follows the extension."`
	Offset            int       `json:"offset,omitempty"             jsonschema:"Skip the first N hoists and path rewrites (for pagination)"`
	Limit             int       `json:"limit,omitempty"              jsonschema:"Maximum number of hoists and path rewrites to return (default 100)"`
}

type hoistSummary struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Type        string `json:"type,omitempty"`
	Variants    int    `json:"variants"`
	Shapes      int    `json:"shapes"`
	Occurrences int    `json:"occurrences"`
}

type pathRewriteSummary struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	Placeholders map[string]string `json:"placeholders,omitempty"`
	Merged       bool              `json:"merged,omitempty"`
}

type normalizeOutput struct {
	HoistCount       int                  `json:"hoist_count"`
	PathRewriteCount int                  `json:"path_rewrite_count"`
	Returned         int                  `json:"returned"`
	Hoists           []hoistSummary       `json:"hoists,omitempty"`
	PathRewrites     []pathRewriteSummary `json:"path_rewrites,omitempty"`
	Format           string               `json:"format"`
	WrittenTo        string               `json:"written_to,omitempty"`
	Document         string               `json:"document,omitempty"`
}

func handleNormalize(ctx context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	spec, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	minOccurrences := input.MinOccurrences
	if minOccurrences <= 0 {
		minOccurrences = cfg.MinOccurrences
	}
	prefix := input.PlaceholderPrefix
	if prefix == "" {
		prefix = cfg.PlaceholderPrefix
	}

	result, err := normalizer.NormalizeWithOptions(ctx,
		normalizer.WithDocument(spec.doc),
		normalizer.WithMinOccurrences(minOccurrences),
		normalizer.WithPlaceholderPrefix(prefix),
		normalizer.WithSkipSchemas(input.SkipSchemas),
		normalizer.WithSkipPaths(input.SkipPaths),
		normalizer.WithDryRun(input.DryRun),
	)
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	output := normalizeOutput{
		HoistCount:       len(result.Hoists),
		PathRewriteCount: len(result.PathRewrites),
		Format:           string(spec.format),
	}

	output.Hoists = makeSlice[hoistSummary](len(result.Hoists))
	for _, h := range result.Hoists {
		output.Hoists = append(output.Hoists, hoistSummary{
			Name:        h.Name,
			Kind:        h.Kind.String(),
			Type:        h.Type,
			Variants:    h.Variants,
			Shapes:      h.Shapes,
			Occurrences: h.Occurrences,
		})
	}
	output.Hoists = paginate(output.Hoists, input.Offset, input.Limit)

	output.PathRewrites = makeSlice[pathRewriteSummary](len(result.PathRewrites))
	for _, r := range result.PathRewrites {
		placeholders := make(map[string]string, len(r.Placeholders))
		for _, p := range r.Placeholders {
			placeholders[p.Name] = p.Token
		}
		output.PathRewrites = append(output.PathRewrites, pathRewriteSummary{
			From:         r.From,
			To:           r.To,
			Placeholders: placeholders,
			Merged:       r.Merged,
		})
	}
	output.PathRewrites = paginate(output.PathRewrites, input.Offset, input.Limit)
	output.Returned = len(output.Hoists) + len(output.PathRewrites)

	needsDocument := !input.DryRun && (input.Output != "" || input.IncludeDocument)
	if needsDocument {
		format := spec.format
		if input.Output != "" {
			if f := document.FormatFromPath(input.Output); f != document.FormatUnknown {
				format = f
			}
			if err := document.Write(input.Output, result.Document, format); err != nil {
				return errResult(err), normalizeOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
		if input.IncludeDocument {
			data, err := document.Marshal(result.Document, format)
			if err != nil {
				return errResult(fmt.Errorf("failed to encode document: %w", err)), normalizeOutput{}, nil
			}
			output.Document = string(data)
		}
	}

	return nil, output, nil
}
