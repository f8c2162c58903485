package merger

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bricktools/bricktools/wanted"
)

// ReportSection pairs one document's statistics with its display label and
// source path.
type ReportSection struct {
	Label string            `json:"label" yaml:"label"`
	Path  string            `json:"path,omitempty" yaml:"path,omitempty"`
	Stats wanted.Statistics `json:"stats" yaml:"stats"`
}

// Report is a plain value object packaging the statistics of the two inputs
// and the merged output for rendering. It carries no business logic beyond
// assembly and marshals cleanly to JSON or YAML for structured output.
type Report struct {
	Left     ReportSection `json:"left" yaml:"left"`
	Right    ReportSection `json:"right" yaml:"right"`
	Merged   ReportSection `json:"merged" yaml:"merged"`
	Matched  int           `json:"matched_keys" yaml:"matched_keys"`
	Appended int           `json:"appended_entries" yaml:"appended_entries"`
}

// BuildReport assembles a Report from a merge result. The labels name the
// three sections in rendered output (e.g. "Left", "Right", "Merged").
func BuildReport(result *MergeResult, leftLabel, rightLabel, mergedLabel string) *Report {
	return &Report{
		Left:     ReportSection{Label: leftLabel, Path: result.LeftPath, Stats: result.LeftStats},
		Right:    ReportSection{Label: rightLabel, Path: result.RightPath, Stats: result.RightStats},
		Merged:   ReportSection{Label: mergedLabel, Stats: result.MergedStats},
		Matched:  result.Counts.Matched,
		Appended: result.Counts.Appended,
	}
}

// Render returns the plain-text form of the report. Counts are grouped with
// locale-aware separators so large part totals stay readable.
func (r *Report) Render() string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	renderSection(&b, p, r.Left)
	renderSection(&b, p, r.Right)
	renderSection(&b, p, r.Merged)

	p.Fprintf(&b, "Matched Keys: %d\n", r.Matched)
	p.Fprintf(&b, "Appended Entries: %d\n", r.Appended)
	return b.String()
}

func renderSection(b *strings.Builder, p *message.Printer, s ReportSection) {
	if s.Path != "" {
		p.Fprintf(b, "%s (%s):\n", s.Label, s.Path)
	} else {
		p.Fprintf(b, "%s:\n", s.Label)
	}
	p.Fprintf(b, "  Total Items: %d\n", s.Stats.TotalItems)
	p.Fprintf(b, "  Total Parts: %d\n", s.Stats.TotalParts)
	p.Fprintf(b, "  Unique Item/Color Count: %d\n", s.Stats.UniqueItemColorCount)
	p.Fprintf(b, "  Unique Color Count: %d\n", s.Stats.UniqueColorCount)
	b.WriteByte('\n')
}
