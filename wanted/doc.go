// Package wanted provides the entity model, XML codec, validation, and
// statistics for BrickLink wanted-list documents.
//
// The types mirror the BrickLink wanted-list XML schema described at
// https://www.bricklink.com/help.asp?helpID=207: an <INVENTORY> root element
// containing repeated <ITEM> elements. Optional fields are pointers so that
// absent fields round-trip as absent rather than as zero values.
//
// # Quick Start
//
// Parse a wanted list from a file:
//
//	p := wanted.New()
//	result, err := p.Parse("wanted.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d lots, %d parts\n", result.Stats.TotalItems, result.Stats.TotalParts)
//
// Serialize a list back to XML:
//
//	data, err := wanted.MarshalList(result.List)
//
// # Key Invariant
//
// Within one document the (ItemID, Color) pair is unique; BrickLink refuses
// uploads that would duplicate a pair. Parsing enforces the invariant by
// default (Parser.ValidateStructure), and ValidateUnique exposes the same
// check as an explicit pass for callers that construct lists in memory.
//
// # Related Packages
//
//   - [github.com/bricktools/bricktools/merger] - Merge two parsed lists
//   - [github.com/bricktools/bricktools/blerrors] - Structured error types
package wanted
