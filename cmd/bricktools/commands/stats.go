package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bricktools/bricktools/wanted"
)

// StatsFlags contains flags for the stats command
type StatsFlags struct {
	Format string
	Quiet  bool
}

// statsOutput is the structured payload for -f json/yaml output.
type statsOutput struct {
	Path       string            `json:"path" yaml:"path"`
	SourceSize int64             `json:"source_size" yaml:"source_size"`
	Stats      wanted.Statistics `json:"stats" yaml:"stats"`
}

// SetupStatsFlags creates and configures a FlagSet for the stats command.
// Returns the FlagSet and a StatsFlags struct with bound flag variables.
func SetupStatsFlags() (*flag.FlagSet, *StatsFlags) {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	flags := &StatsFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the statistics, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the statistics, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: bricktools stats [flags] <file|->\n\n")
		Writef(output, "Parse a BrickLink wanted list and display its statistics.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nStatistics:\n")
		Writef(output, "  Total Items              number of <ITEM> entries (lots)\n")
		Writef(output, "  Total Parts              sum of quantities (missing MINQTY counts as 1)\n")
		Writef(output, "  Unique Item/Color Count  distinct item/color pairs\n")
		Writef(output, "  Unique Color Count       distinct colors (colorless entries excluded)\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  bricktools stats wanted.xml\n")
		Writef(output, "  bricktools stats -f json wanted.xml\n")
		Writef(output, "  cat wanted.xml | bricktools stats -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
	}

	return fs, flags
}

// HandleStats executes the stats command
func HandleStats(args []string) error {
	fs, flags := SetupStatsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("stats command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	listPath := fs.Arg(0)

	p := wanted.New()
	result, err := ParseInput(p, listPath)
	if err != nil {
		return fmt.Errorf("parsing wanted list: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(statsOutput{
			Path:       FormatListPath(listPath),
			SourceSize: result.SourceSize,
			Stats:      result.Stats,
		}, flags.Format)
	}

	// Diagnostics to stderr, statistics to stdout so -q still yields the stats.
	if !flags.Quiet {
		Writef(os.Stderr, "BrickLink Wanted List Parser\n")
		Writef(os.Stderr, "============================\n\n")
		OutputListHeader(os.Stderr, listPath)
		Writef(os.Stderr, "\n")
	}
	OutputListStats(os.Stdout, result.SourceSize, result.Stats, result.LoadTime)

	if !flags.Quiet {
		for _, w := range result.Warnings {
			Writef(os.Stderr, "⚠ %s\n", w)
		}
		Writef(os.Stderr, "\nParsing completed successfully!\n")
	}
	return nil
}
