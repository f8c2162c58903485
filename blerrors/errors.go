// Package blerrors provides structured error types for bricktools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - DuplicateKeyError: an input document violates the per-document
//     uniqueness of the (item, color) pair
//   - ParseError: XML parsing failures and structural issues
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := p.Parse("wanted.xml")
//	if err != nil {
//	    var dupErr *blerrors.DuplicateKeyError
//	    if errors.As(err, &dupErr) {
//	        fmt.Printf("duplicate lot %s in %s\n", dupErr.Key(), dupErr.Source)
//	    }
//	}
package blerrors

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDuplicateKey indicates a document contains two entries with the
	// same (item, color) pair.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// DuplicateKeyError reports a violation of the per-document uniqueness
// invariant on the (item, color) pair. BrickLink rejects wanted lists
// containing duplicate pairs, so this is treated as structural corruption
// of the input rather than something a merge can resolve.
type DuplicateKeyError struct {
	// Source identifies the offending document (file path or "left"/"right")
	Source string
	// ItemID is the item identifier of the duplicated key
	ItemID string
	// Color is the BrickLink color code of the duplicated key, or nil if
	// the entries carry no color
	Color *int
	// FirstIndex is the zero-based position of the first entry with the key
	FirstIndex int
	// DupIndex is the zero-based position of the duplicate entry
	DupIndex int
}

// Key returns the duplicated key in "itemID/color" display form.
// Entries without a color render as "itemID/-".
func (e *DuplicateKeyError) Key() string {
	if e.Color == nil {
		return e.ItemID + "/-"
	}
	return e.ItemID + "/" + strconv.Itoa(*e.Color)
}

// Error returns a human-readable error message.
func (e *DuplicateKeyError) Error() string {
	msg := "duplicate key"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	msg += ": item " + e.Key()
	msg += fmt.Sprintf(" appears at entries %d and %d", e.FirstIndex, e.DupIndex)
	return msg
}

// Unwrap returns nil as DuplicateKeyError has no underlying cause.
func (e *DuplicateKeyError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// ParseError represents a failure to parse a wanted-list document.
// This includes XML deserialization errors, unknown field codes, and
// missing required fields.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ConfigError has no underlying cause.
func (e *ConfigError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
