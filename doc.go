// Package bricktools provides tools for working with BrickLink wanted-list documents.
//
// BrickLink enforces a uniqueness constraint on the (item, color) pair within a
// single wanted list and refuses to import a document that would duplicate a pair
// already present in the target list. bricktools merges two wanted lists into one
// document that satisfies that constraint: matched entries have their quantities
// summed, unmatched entries are carried over, and aggregate statistics are
// reported for both inputs and the merged output.
//
// # Packages
//
//   - [github.com/bricktools/bricktools/wanted] - Entity model, XML codec, parsing,
//     validation, and statistics for wanted-list documents
//   - [github.com/bricktools/bricktools/merger] - Key-based merge engine and
//     report assembly
//   - [github.com/bricktools/bricktools/blerrors] - Structured error types for
//     programmatic error handling
//
// # Quick Start
//
// Merge two wanted lists:
//
//	result, err := merger.MergeWithOptions(
//		merger.WithFilePaths("left.xml", "right.xml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := merger.WriteResult(result, "merged.xml"); err != nil {
//		log.Fatal(err)
//	}
//
// Or compute statistics for a single list:
//
//	p := wanted.New()
//	parsed, err := p.Parse("wanted.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("lots: %d parts: %d\n", parsed.Stats.TotalItems, parsed.Stats.TotalParts)
//
// The bricktools CLI exposes the same functionality as the join, stats, and
// validate commands, plus an MCP server over stdio (bricktools mcp).
package bricktools
