package cliutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	if got := buf.String(); got != "Hello, World!" {
		t.Errorf("Writef() = %q, want %q", got, "Hello, World!")
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	if got := buf.String(); got != "Simple message" {
		t.Errorf("Writef() = %q, want %q", got, "Simple message")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	// Writef must handle write errors gracefully rather than panicking.
	Writef(errorWriter{}, "This will fail")
}
