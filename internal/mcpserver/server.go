// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the normalizer as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oascomponents"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oascomponents MCP server: hoists repeated property definitions of API description documents into components.schemas and replaces literal identifiers in path templates with {id_N} placeholders.

Use inspect first to see which field names would be hoisted, then normalize to rewrite the document.

Configuration: All defaults are configurable via OASCOMPONENTS_* environment variables set in your MCP client config.

Key settings:
- OASCOMPONENTS_MIN_OCCURRENCES (default: 2): occurrences a field name needs to be hoisted; 1 hoists every field
- OASCOMPONENTS_PLACEHOLDER_PREFIX (default: id_): prefix of path placeholder names
- OASCOMPONENTS_CACHE_ENABLED (default: true): disable document caching entirely
- OASCOMPONENTS_CACHE_FILE_TTL (default: 15m): cache TTL for file documents
- OASCOMPONENTS_RESULT_LIMIT (default: 100): default result limit for list outputs

Caching: Decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oascomponents", Version: oascomponents.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Normalize an API description document: every field name declared inline in properties groups at least min_occurrences times is hoisted into components.schemas (variants deep-merged, later wins) and each matching occurrence is replaced by a $ref. Path templates like /users/1a2b/orders/42 become /users/{id_0}/orders/{id_1} with matching path parameters. Use dry_run=true to preview. Use output to write to a file, or include_document to return the result inline.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect an API description document without changing it. Returns the number of properties groups, the canonical type per field name, and the hoisting worklist (name, kind, variant and shape counts) in processing order: composite shapes first, then scalars. Filter by name with a * glob.",
	}, handleInspect)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
