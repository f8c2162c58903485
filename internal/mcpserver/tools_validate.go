package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bricktools/bricktools/blerrors"
	"github.com/bricktools/bricktools/wanted"
)

type validateInput struct {
	List listInput `json:"list" jsonschema:"The wanted list to validate"`
}

type validateOutput struct {
	Valid        bool              `json:"valid"`
	Error        string            `json:"error,omitempty"`
	DuplicateKey string            `json:"duplicate_key,omitempty"`
	Stats        wanted.Statistics `json:"stats,omitempty"`
	Summary      string            `json:"summary"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	result, err := input.List.resolve(true)
	if err != nil {
		// Duplicate keys and malformed documents are validation findings,
		// not tool failures. Anything else (bad input selection, unreadable
		// file) is a tool error.
		if !errors.Is(err, blerrors.ErrDuplicateKey) && !errors.Is(err, blerrors.ErrParse) {
			return errResult(err), validateOutput{}, nil
		}
		output := validateOutput{
			Valid:   false,
			Error:   sanitizeError(err),
			Summary: "Validation failed: " + sanitizeError(err),
		}
		var dupErr *blerrors.DuplicateKeyError
		if errors.As(err, &dupErr) {
			output.DuplicateKey = dupErr.Key()
		}
		return nil, output, nil
	}

	return nil, validateOutput{
		Valid: true,
		Stats: result.Stats,
		Summary: "Validation passed: " + formatCount(result.Stats.TotalItems, "entry") +
			", every item/color pair unique.",
	}, nil
}
