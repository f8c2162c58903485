// Package cliutil provides small helpers shared by the bricktools CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer, reporting failed writes to
// stderr instead of returning an error. Usage texts and diagnostics go
// through it so a broken pipe never panics a command.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
