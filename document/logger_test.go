package document

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	// Should not panic
	l.Debug("test message", "key", "value")
	l.Info("test message", "key", "value")
	l.Warn("test message", "key", "value")
	l.Error("test message", "key", "value")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("logs at every level with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("debug msg", "name", "price")
		adapter.Info("info msg")
		adapter.Warn("warn msg")
		adapter.Error("error msg")

		out := buf.String()
		for _, want := range []string{"debug msg", "name=price", "info msg", "warn msg", "error msg"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))
		adapter.With("path", "/items/7").Info("rewrote path")
		assert.True(t, strings.Contains(buf.String(), "path=/items/7"))
	})
}
