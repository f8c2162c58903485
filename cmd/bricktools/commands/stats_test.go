package commands

import (
	"testing"
)

func TestSetupStatsFlags(t *testing.T) {
	fs, flags := SetupStatsFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Format != FormatText {
			t.Errorf("expected Format 'text' by default, got '%s'", flags.Format)
		}
		if flags.Quiet {
			t.Error("expected Quiet to be false by default")
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-f", "yaml", "-q", "wanted.xml"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if flags.Format != "yaml" {
			t.Errorf("expected Format 'yaml', got '%s'", flags.Format)
		}
		if !flags.Quiet {
			t.Error("expected Quiet to be true")
		}
		if fs.NArg() != 1 {
			t.Errorf("expected 1 file arg, got %d", fs.NArg())
		}
	})
}

func TestHandleStats_WrongArgCount(t *testing.T) {
	if err := HandleStats(nil); err == nil {
		t.Error("expected error when no file provided")
	}
	if err := HandleStats([]string{"a.xml", "b.xml"}); err == nil {
		t.Error("expected error when two files provided")
	}
}

func TestHandleStats_Help(t *testing.T) {
	if err := HandleStats([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleStats_InvalidFormat(t *testing.T) {
	if err := HandleStats([]string{"-f", "csv", "wanted.xml"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestHandleStats_MissingFile(t *testing.T) {
	if err := HandleStats([]string{"does-not-exist.xml"}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHandleStats_TextOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "wanted.xml", leftFixture)

	if err := HandleStats([]string{"-q", path}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleStats_StructuredOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "wanted.xml", leftFixture)

	if err := HandleStats([]string{"-f", "json", path}); err != nil {
		t.Errorf("unexpected error for JSON output: %v", err)
	}
	if err := HandleStats([]string{"-f", "yaml", path}); err != nil {
		t.Errorf("unexpected error for YAML output: %v", err)
	}
}
