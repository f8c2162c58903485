package wanted

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("debug msg", "key", "3001/5")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	out := buf.String()
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, "key=3001/5")
	assert.Contains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "error msg")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, nil)
	logger := NewSlogAdapter(slog.New(handler)).With("source", "left.xml")

	logger.Info("parsed")
	assert.Contains(t, buf.String(), "source=left.xml")
}

func TestNewSlogAdapterNilUsesDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	assert.NotNil(t, adapter)
	// Must not panic.
	adapter.Debug("noop")
}

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	// All methods are no-ops and With returns a usable logger.
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")
	assert.NotNil(t, logger.With("k", "v"))
}

func TestParserLogsWithConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	p := New()
	p.Logger = NewSlogAdapter(slog.New(handler))

	_, err := p.ParseBytes([]byte(`<INVENTORY><ITEM><ITEMTYPE>P</ITEMTYPE><ITEMID>3001</ITEMID></ITEM></INVENTORY>`), "inline")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "parsed wanted list"))
	assert.Contains(t, buf.String(), "entries=1")
}
