package merger

import (
	"fmt"
	"os"

	"github.com/bricktools/bricktools/internal/fileutil"
	"github.com/bricktools/bricktools/wanted"
)

// Side labels used to identify inputs in validation errors when a document
// has no source path of its own.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// Config configures how documents are merged
type Config struct {
	// ValidateInputs re-checks the per-document key-uniqueness invariant on
	// both inputs before merging. Enabled by default; disable only when the
	// inputs are known-valid (e.g. just produced by wanted.Parser with
	// ValidateStructure on) and the check would be redundant.
	ValidateInputs bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger wanted.Logger
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		ValidateInputs: true,
	}
}

// Merger handles merging of two wanted-list documents.
//
// Concurrency: a Merger holds no per-merge state and is safe to reuse across
// goroutines as long as the inputs of concurrent calls are independent.
type Merger struct {
	config Config
}

// New creates a new Merger instance with the provided configuration
func New(config Config) *Merger {
	return &Merger{config: config}
}

// log returns the configured logger, or a no-op logger if none is set.
func (m *Merger) log() wanted.Logger {
	if m.config.Logger != nil {
		return m.config.Logger
	}
	return wanted.NopLogger{}
}

// MergeCounts reports how right-document entries were consumed by a merge.
type MergeCounts struct {
	// Matched is the number of right entries whose key matched a left entry
	Matched int
	// Appended is the number of right entries added as new output entries
	Appended int
}

// MergeResult contains the merged wanted-list document and metadata
type MergeResult struct {
	// Document is the merged wanted-list document
	Document *wanted.WantedList
	// LeftPath and RightPath identify the input sources
	LeftPath  string
	RightPath string
	// LeftStats, RightStats, and MergedStats are computed independently on
	// the two inputs and the merged output
	LeftStats   wanted.Statistics
	RightStats  wanted.Statistics
	MergedStats wanted.Statistics
	// Counts reports matched and appended right entries
	Counts MergeCounts
}

// Merge merges the right parsed document into a fresh copy of the left one.
// Neither input is mutated. Document-level identity (source path) of the
// result is taken from the left input.
func (m *Merger) Merge(left, right *wanted.ParseResult) (*MergeResult, error) {
	if left == nil || left.List == nil {
		return nil, fmt.Errorf("merger: left document is nil")
	}
	if right == nil || right.List == nil {
		return nil, fmt.Errorf("merger: right document is nil")
	}

	if m.config.ValidateInputs {
		if err := wanted.ValidateUnique(left.List, sourceLabel(left.SourcePath, SideLeft)); err != nil {
			return nil, err
		}
		if err := wanted.ValidateUnique(right.List, sourceLabel(right.SourcePath, SideRight)); err != nil {
			return nil, err
		}
	}

	merged, counts := mergeLists(left.List, right.List, m.log())

	return &MergeResult{
		Document:    merged,
		LeftPath:    left.SourcePath,
		RightPath:   right.SourcePath,
		LeftStats:   wanted.ComputeStats(left.List),
		RightStats:  wanted.ComputeStats(right.List),
		MergedStats: wanted.ComputeStats(merged),
		Counts:      counts,
	}, nil
}

// MergeLists merges two bare wanted lists, validating both against the
// key-uniqueness invariant first (sides are named "left" and "right" in
// errors). It is a convenience for callers that build lists in memory;
// prefer Merger.Merge for parsed documents.
func MergeLists(left, right *wanted.WantedList) (*wanted.WantedList, MergeCounts, error) {
	if err := wanted.ValidateUnique(left, SideLeft); err != nil {
		return nil, MergeCounts{}, err
	}
	if err := wanted.ValidateUnique(right, SideRight); err != nil {
		return nil, MergeCounts{}, err
	}
	merged, counts := mergeLists(left, right, wanted.NopLogger{})
	return merged, counts, nil
}

// mergeLists implements the merge:
//  1. Copy the left entries into the output in their original order and
//     index them by key.
//  2. Walk the right entries in their original order. A matched key adds
//     the right entry's effective quantity to the left entry in place;
//     all other fields stay as the left entry had them. An unmatched key
//     appends a copy of the right entry.
//
// Inputs must already satisfy the key-uniqueness invariant, which makes the
// left index exact and guarantees the output satisfies it too.
func mergeLists(left, right *wanted.WantedList, log wanted.Logger) (*wanted.WantedList, MergeCounts) {
	out := &wanted.WantedList{Items: make([]wanted.Item, 0, len(left.Items)+len(right.Items))}
	index := make(map[wanted.ItemKey]int, len(left.Items))
	for i := range left.Items {
		out.Items = append(out.Items, left.Items[i].Clone())
		index[left.Items[i].Key()] = i
	}

	var counts MergeCounts
	for i := range right.Items {
		rightItem := &right.Items[i]
		key := rightItem.Key()
		if pos, ok := index[key]; ok {
			sum := out.Items[pos].EffectiveQty() + rightItem.EffectiveQty()
			out.Items[pos].MinQty = wanted.Ptr(sum)
			counts.Matched++
			log.Debug("matched entry", "key", key.String(), "merged_qty", sum)
		} else {
			out.Items = append(out.Items, rightItem.Clone())
			counts.Appended++
			log.Debug("appended entry", "key", key.String())
		}
	}

	return out, counts
}

// WriteResult serializes the merged document and writes it to the given path
// with restrictive permissions (0600).
func WriteResult(result *MergeResult, path string) error {
	data, err := wanted.MarshalList(result.Document)
	if err != nil {
		return fmt.Errorf("merger: marshaling merged document: %w", err)
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("merger: writing output file: %w", err)
	}
	return nil
}

func sourceLabel(path, side string) string {
	if path != "" {
		return path
	}
	return side
}
