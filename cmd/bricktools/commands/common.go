// Package commands provides CLI command handlers for bricktools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/bricktools/bricktools"
	"github.com/bricktools/bricktools/wanted"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	// Get absolute path of output file
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// FormatListPath returns a display-friendly path for the wanted list.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatListPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ParseInput parses a wanted list from a file path or stdin ("-").
func ParseInput(p *wanted.Parser, path string) (*wanted.ParseResult, error) {
	if path == StdinFilePath {
		return p.ParseReader(os.Stdin, "<stdin>")
	}
	return p.Parse(path)
}

// OutputListHeader outputs the common wanted-list header.
// This includes bricktools version and the list path.
func OutputListHeader(w io.Writer, path string) {
	Writef(w, "bricktools version: %s\n", bricktools.Version())
	Writef(w, "Wanted List: %s\n", FormatListPath(path))
}

// OutputListStats outputs the common wanted-list statistics.
func OutputListStats(w io.Writer, sourceSize int64, stats wanted.Statistics, loadTime time.Duration) {
	Writef(w, "Source Size: %s\n", wanted.FormatBytes(sourceSize))
	Writef(w, "Total Items: %d\n", stats.TotalItems)
	Writef(w, "Total Parts: %d\n", stats.TotalParts)
	Writef(w, "Unique Item/Color Count: %d\n", stats.UniqueItemColorCount)
	Writef(w, "Unique Color Count: %d\n", stats.UniqueColorCount)
	Writef(w, "Load Time: %v\n", loadTime)
}
