package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bricktools/bricktools/internal/fileutil"
	"github.com/bricktools/bricktools/internal/pathutil"
	"github.com/bricktools/bricktools/merger"
	"github.com/bricktools/bricktools/wanted"
)

type mergeInput struct {
	Left       listInput `json:"left"                  jsonschema:"The left wanted list; its metadata wins for matched entries"`
	Right      listInput `json:"right"                 jsonschema:"The right wanted list; unmatched entries are appended"`
	NoValidate bool      `json:"no_validate,omitempty" jsonschema:"Skip duplicate item/color validation of the inputs"`
	Output     string    `json:"output,omitempty"      jsonschema:"File path to write the merged document. If omitted the result is returned inline."`
}

type mergeOutput struct {
	LeftStats   wanted.Statistics `json:"left_stats"`
	RightStats  wanted.Statistics `json:"right_stats"`
	MergedStats wanted.Statistics `json:"merged_stats"`
	Matched     int               `json:"matched"`
	Appended    int               `json:"appended"`
	WrittenTo   string            `json:"written_to,omitempty"`
	Document    string            `json:"document,omitempty"`
	Summary     string            `json:"summary"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	left, err := input.Left.resolve(!input.NoValidate)
	if err != nil {
		return errResult(fmt.Errorf("left: %w", err)), mergeOutput{}, nil
	}
	right, err := input.Right.resolve(!input.NoValidate)
	if err != nil {
		return errResult(fmt.Errorf("right: %w", err)), mergeOutput{}, nil
	}

	result, err := merger.MergeWithOptions(
		merger.WithParsed(left, right),
		merger.WithValidateInputs(false), // already validated at parse time
	)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		LeftStats:   result.LeftStats,
		RightStats:  result.RightStats,
		MergedStats: result.MergedStats,
		Matched:     result.Counts.Matched,
		Appended:    result.Counts.Appended,
	}
	output.Summary = buildMergeSummary(output)

	data, err := wanted.MarshalList(result.Document)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), mergeOutput{}, nil
		}
		if err := os.WriteFile(cleanPath, data, fileutil.OwnerReadWrite); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), mergeOutput{}, nil
		}
		output.WrittenTo = cleanPath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

func buildMergeSummary(output mergeOutput) string {
	summary := "Merged into " + formatCount(output.MergedStats.TotalItems, "entry") +
		" totaling " + formatCount(output.MergedStats.TotalParts, "part") + "."
	if output.Matched > 0 {
		summary += " " + formatCount(output.Matched, "entry") + " matched and combined."
	}
	if output.Appended > 0 {
		summary += " " + formatCount(output.Appended, "entry") + " appended."
	}
	return summary
}

// formatCount renders "N noun(s)" with a naive plural. Nouns ending in "y"
// pluralize to "ies".
func formatCount(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n == 1 {
		return s
	}
	if last := len(noun) - 1; last >= 0 && noun[last] == 'y' {
		return strconv.Itoa(n) + " " + noun[:last] + "ies"
	}
	return s + "s"
}
