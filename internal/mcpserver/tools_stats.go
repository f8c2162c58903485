package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bricktools/bricktools/wanted"
)

type statsInput struct {
	List listInput `json:"list" jsonschema:"The wanted list to inspect"`
}

type statsOutput struct {
	Source     string            `json:"source"`
	SourceSize int64             `json:"source_size"`
	Stats      wanted.Statistics `json:"stats"`
	Summary    string            `json:"summary"`
}

func handleStats(_ context.Context, _ *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, statsOutput, error) {
	result, err := input.List.resolve(true)
	if err != nil {
		return errResult(err), statsOutput{}, nil
	}

	output := statsOutput{
		Source:     sanitizeSource(result.SourcePath),
		SourceSize: result.SourceSize,
		Stats:      result.Stats,
	}
	output.Summary = formatCount(result.Stats.TotalItems, "entry") +
		" totaling " + formatCount(result.Stats.TotalParts, "part") +
		" across " + formatCount(result.Stats.UniqueColorCount, "color") + "."

	return nil, output, nil
}

// sanitizeSource strips absolute filesystem prefixes from a source path the
// same way tool errors are sanitized.
func sanitizeSource(source string) string {
	return pathPattern.ReplaceAllString(source, "<path>")
}
