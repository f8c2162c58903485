package mcpserver

import (
	"fmt"

	"github.com/bricktools/bricktools/wanted"
)

// listInput represents the two ways a wanted list can be provided to a tool.
// Exactly one of File or Content must be set.
type listInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a BrickLink wanted list XML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline wanted list XML content"`
}

// maxInlineSize caps inline XML content to keep tool payloads bounded.
const maxInlineSize = 4 << 20 // 4 MiB

// resolve parses the wanted list from whichever input was provided.
func (s listInput) resolve(validate bool) (*wanted.ParseResult, error) {
	if (s.File == "") == (s.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}

	p := wanted.New()
	p.ValidateStructure = validate

	if s.File != "" {
		return p.Parse(s.File)
	}

	if len(s.Content) > maxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead",
			len(s.Content), maxInlineSize)
	}
	return p.ParseBytes([]byte(s.Content), "<inline>")
}
