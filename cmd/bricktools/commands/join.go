package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bricktools/bricktools"
	"github.com/bricktools/bricktools/internal/cliutil"
	"github.com/bricktools/bricktools/merger"
	"github.com/bricktools/bricktools/wanted"
)

// JoinFlags contains flags for the join command
type JoinFlags struct {
	Output     string
	Format     string
	NoValidate bool
	Quiet      bool
}

// SetupJoinFlags creates and configures a FlagSet for the join command.
// Returns the FlagSet and a JoinFlags struct with bound flag variables.
func SetupJoinFlags() (*flag.FlagSet, *JoinFlags) {
	fs := flag.NewFlagSet("join", flag.ContinueOnError)
	flags := &JoinFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatText, "report format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "report format: text, json, or yaml")
	fs.BoolVar(&flags.NoValidate, "no-validate", false, "skip duplicate item/color validation of the inputs")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages (for pipelining)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: bricktools join [flags] <left.xml> <right.xml>\n\n")
		cliutil.Writef(fs.Output(), "Merge two BrickLink wanted list files into a single document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nMerge Semantics:\n")
		cliutil.Writef(fs.Output(), "  - Entries match when both item ID and color are equal (a colorless\n")
		cliutil.Writef(fs.Output(), "    entry only matches another colorless entry)\n")
		cliutil.Writef(fs.Output(), "  - Matched entries keep the left file's metadata; quantities are summed\n")
		cliutil.Writef(fs.Output(), "  - An entry without MINQTY counts as quantity 1\n")
		cliutil.Writef(fs.Output(), "  - Unmatched right entries are appended after the left entries\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  bricktools join -o merged.xml castle.xml spaceship.xml\n")
		cliutil.Writef(fs.Output(), "  bricktools join -f json -o merged.xml castle.xml spaceship.xml\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  bricktools join -q castle.xml spaceship.xml | bricktools validate -q -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Inputs are rejected if either file repeats an item/color pair\n")
		cliutil.Writef(fs.Output(), "    (disable with --no-validate)\n")
		cliutil.Writef(fs.Output(), "  - When -o is specified, file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleJoin executes the join command
func HandleJoin(args []string) error {
	fs, flags := SetupJoinFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("join command requires exactly 2 input files")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	leftPath := fs.Arg(0)
	rightPath := fs.Arg(1)

	// Validate output path before merging (only when writing to file)
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{leftPath, rightPath}); err != nil {
			return err
		}
	}

	// Merge with timing
	startTime := time.Now()
	result, err := merger.MergeWithOptions(
		merger.WithFilePaths(leftPath, rightPath),
		merger.WithValidateInputs(!flags.NoValidate),
	)
	if err != nil {
		return fmt.Errorf("merging wanted lists: %w", err)
	}
	totalTime := time.Since(startTime)

	report := merger.BuildReport(result, "Left", "Right", "Merged")

	// Print diagnostic messages (to stderr to keep stdout clean for pipelining)
	if !flags.Quiet && flags.Format == FormatText {
		cliutil.Writef(os.Stderr, "BrickLink Wanted List Merger\n")
		cliutil.Writef(os.Stderr, "============================\n\n")
		cliutil.Writef(os.Stderr, "bricktools version: %s\n", bricktools.Version())
		if flags.Output != "" {
			cliutil.Writef(os.Stderr, "Output: %s\n", flags.Output)
		} else {
			cliutil.Writef(os.Stderr, "Output: <stdout>\n")
		}
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
		cliutil.Writef(os.Stderr, "%s", report.Render())
		cliutil.Writef(os.Stderr, "\n✓ Join completed successfully!\n")
	}

	if flags.Format != FormatText {
		if err := OutputStructured(report, flags.Format); err != nil {
			return err
		}
	}

	// Write output
	if flags.Output != "" {
		if err := merger.WriteResult(result, flags.Output); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet && flags.Format == FormatText {
			cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
		}
	} else if flags.Format == FormatText {
		data, err := wanted.MarshalList(result.Document)
		if err != nil {
			return fmt.Errorf("marshaling merged document: %w", err)
		}
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing merged document to stdout: %w", err)
		}
	}

	return nil
}
