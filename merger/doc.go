// Package merger provides merging for two BrickLink wanted-list documents.
//
// The merger joins two wanted lists on the (item, color) key. Matched entries
// have their quantities summed; every other field of a matched entry is taken
// from the left document (left-wins). Unmatched right entries are appended.
// Output order is deterministic: all left entries in their original order,
// followed by unmatched right entries in their original relative order, so
// merging the same two documents always produces identical bytes.
//
// # Quick Start
//
// Merge files using functional options:
//
//	result, err := merger.MergeWithOptions(
//		merger.WithFilePaths("base.xml", "extra.xml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = merger.WriteResult(result, "merged.xml")
//
// Or create a reusable Merger instance:
//
//	m := merger.New(merger.DefaultConfig())
//	result1, _ := m.Merge(leftParsed, rightParsed)
//	result2, _ := m.Merge(otherLeft, otherRight)
//
// # Validation
//
// Both inputs are re-validated against the per-document key-uniqueness
// invariant before any merge computation; an input containing a duplicate
// (item, color) pair fails with blerrors.DuplicateKeyError naming the key
// and the offending side. The merge itself has no other failure modes:
// merging two empty documents yields an empty document.
//
// # Related Packages
//
//   - [github.com/bricktools/bricktools/wanted] - Parse documents before merging
//   - [github.com/bricktools/bricktools/blerrors] - Structured error types
package merger
