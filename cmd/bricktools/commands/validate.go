package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bricktools/bricktools"
	"github.com/bricktools/bricktools/blerrors"
	"github.com/bricktools/bricktools/wanted"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Quiet  bool
	Format string
}

// validateOutput is the structured payload for -f json/yaml output.
type validateOutput struct {
	Path     string            `json:"path" yaml:"path"`
	Valid    bool              `json:"valid" yaml:"valid"`
	Error    string            `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Stats    wanted.Statistics `json:"stats" yaml:"stats"`
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: bricktools validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Check a BrickLink wanted list for malformed entries and duplicate item/color pairs.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  bricktools validate wanted.xml\n")
		Writef(fs.Output(), "  cat wanted.xml | bricktools validate -q -\n")
		Writef(fs.Output(), "  bricktools validate -f json wanted.xml | jq '.valid'\n")
		Writef(fs.Output(), "\nPipelining:\n")
		Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}

	listPath := fs.Arg(0)

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	// Parse with duplicate validation enabled and timing
	startTime := time.Now()
	p := wanted.New()
	result, parseErr := ParseInput(p, listPath)
	totalTime := time.Since(startTime)

	// Malformed XML and invalid entries are hard failures; report them the
	// same way as duplicates so pipelines get a single exit-code contract.
	var dupErr *blerrors.DuplicateKeyError
	isDuplicate := errors.As(parseErr, &dupErr)
	if parseErr != nil && !isDuplicate {
		if flags.Format != FormatText {
			if err := OutputStructured(validateOutput{
				Path:  FormatListPath(listPath),
				Valid: false,
				Error: parseErr.Error(),
			}, flags.Format); err != nil {
				return err
			}
			os.Exit(1)
		}
		return fmt.Errorf("parsing wanted list: %w", parseErr)
	}

	valid := parseErr == nil

	// Handle structured output formats
	if flags.Format != FormatText {
		out := validateOutput{
			Path:  FormatListPath(listPath),
			Valid: valid,
		}
		if parseErr != nil {
			out.Error = parseErr.Error()
		}
		if result != nil {
			out.Warnings = result.Warnings
			out.Stats = result.Stats
		}
		if err := OutputStructured(out, flags.Format); err != nil {
			return err
		}
		if !valid {
			os.Exit(1)
		}
		return nil
	}

	// Text format output
	if !flags.Quiet {
		Writef(os.Stderr, "BrickLink Wanted List Validator\n")
		Writef(os.Stderr, "===============================\n\n")
		Writef(os.Stderr, "bricktools version: %s\n", bricktools.Version())
		Writef(os.Stderr, "Wanted List: %s\n", FormatListPath(listPath))
		if result != nil {
			Writef(os.Stderr, "Source Size: %s\n", wanted.FormatBytes(result.SourceSize))
			Writef(os.Stderr, "Total Items: %d\n", result.Stats.TotalItems)
			Writef(os.Stderr, "Total Parts: %d\n", result.Stats.TotalParts)
		}
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
	}

	if result != nil && !flags.Quiet {
		for _, w := range result.Warnings {
			Writef(os.Stderr, "⚠ %s\n", w)
		}
	}

	if valid {
		if !flags.Quiet {
			Writef(os.Stderr, "✓ Validation passed\n")
		}
		return nil
	}

	Writef(os.Stderr, "✗ Validation failed: %s\n", dupErr.Error())
	os.Exit(1)
	return nil
}
