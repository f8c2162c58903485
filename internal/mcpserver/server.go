// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes bricktools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bricktools/bricktools"
)

const serverInstructions = `bricktools MCP server — merges, inspects, and validates BrickLink wanted lists (XML).

Wanted lists are provided per tool call as either a file path or inline XML content.

Merge semantics:
- Entries match when both item ID and color are equal; a colorless entry only matches another colorless entry
- Matched entries keep the left list's metadata and sum the quantities (missing MINQTY counts as 1)
- Unmatched right entries are appended after the left entries, preserving input order`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "bricktools", Version: bricktools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge two BrickLink wanted lists into one. Entries present in both lists (same item ID and color) are combined by summing quantities while keeping the left list's metadata; entries only in the right list are appended. Returns per-list statistics and the merged XML document, or writes it to a file when output is set.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats",
		Description: "Parse a BrickLink wanted list and return its statistics: total items (lots), total parts (quantities summed, missing MINQTY counts as 1), unique item/color pairs, and unique colors.",
	}, handleStats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check a BrickLink wanted list for malformed entries and duplicate item/color pairs. Returns valid=true when the list parses cleanly and every item/color pair appears at most once.",
	}, handleValidate)
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
