package commands

import (
	"testing"
)

func TestHandleMCP_Help(t *testing.T) {
	if err := HandleMCP([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleMCP_RejectsArguments(t *testing.T) {
	if err := HandleMCP([]string{"extra"}); err == nil {
		t.Error("expected error for positional arguments")
	}
}
