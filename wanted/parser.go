package wanted

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Parser handles wanted-list document parsing
type Parser struct {
	// ValidateStructure determines whether to enforce the per-document
	// key-uniqueness invariant during parsing. Enabled by default; disable
	// only to inspect corrupt documents.
	ValidateStructure bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed wanted-list document and metadata.
//
// Callers should treat ParseResult as read-only after parsing; the merger
// package never mutates its inputs and constructs a fresh document for the
// merged output.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// If the source was not a file path, this is the caller-supplied name.
	SourcePath string
	// List is the parsed wanted-list document
	List *WantedList
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats Statistics
	// Warnings are non-fatal findings: entries that parse cleanly but look
	// suspicious (a filled quantity above the wanted quantity, a
	// non-positive price cap). They never block parsing or merging.
	Warnings []string
}

// Parse parses a wanted-list XML file from a local path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("wanted: failed to read file: %w", err)
	}

	result, err := p.ParseBytes(data, path)
	if err != nil {
		return nil, err
	}
	result.LoadTime = loadTime
	return result, nil
}

// ParseReader parses a wanted-list XML document from a reader. The
// sourceName identifies the source in errors and results (e.g. "<stdin>").
func (p *Parser) ParseReader(r io.Reader, sourceName string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("wanted: failed to read input: %w", err)
	}

	result, err := p.ParseBytes(data, sourceName)
	if err != nil {
		return nil, err
	}
	result.LoadTime = loadTime
	return result, nil
}

// ParseBytes parses a wanted-list XML document from raw bytes. The
// sourceName identifies the source in errors and results.
func (p *Parser) ParseBytes(data []byte, sourceName string) (*ParseResult, error) {
	list, err := unmarshalList(data, sourceName)
	if err != nil {
		return nil, err
	}
	p.log().Debug("parsed wanted list", "source", sourceName, "entries", len(list.Items))

	if p.ValidateStructure {
		if err := ValidateUnique(list, sourceName); err != nil {
			return nil, err
		}
	}

	return &ParseResult{
		SourcePath: sourceName,
		List:       list,
		SourceSize: int64(len(data)),
		Stats:      ComputeStats(list),
		Warnings:   collectWarnings(list),
	}, nil
}

// collectWarnings reports suspicious but legal entries.
func collectWarnings(list *WantedList) []string {
	var warnings []string
	for i := range list.Items {
		item := &list.Items[i]
		if item.QtyFilled != nil && *item.QtyFilled > item.EffectiveQty() {
			warnings = append(warnings, fmt.Sprintf(
				"entry %d (%s): QTYFILLED %d exceeds wanted quantity %d",
				i, item.Key(), *item.QtyFilled, item.EffectiveQty()))
		}
		if item.MaxPrice != nil && *item.MaxPrice <= 0 {
			warnings = append(warnings, fmt.Sprintf(
				"entry %d (%s): MAXPRICE %.2f is not a usable price cap",
				i, item.Key(), *item.MaxPrice))
		}
	}
	return warnings
}
