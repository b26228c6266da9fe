package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// newTestLogger returns a debug-level masked logger writing to buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return NewLogger(buf, true)
}

// TestMaskingHandler verifies that sensitive attribute values never reach
// the output.
func TestMaskingHandler(t *testing.T) {
	t.Parallel()

	t.Run("masks sensitive keys", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("database configured",
			"name", "app",
			"password", "hunter2",
			"db_token", "tok-123",
		)

		output := buf.String()
		if strings.Contains(output, "hunter2") {
			t.Error("expected password to be masked")
		}
		if strings.Contains(output, "tok-123") {
			t.Error("expected token to be masked")
		}
		if !strings.Contains(output, MaskValue) {
			t.Error("expected mask value in output")
		}
		if !strings.Contains(output, "name=app") {
			t.Error("expected non-sensitive attribute to pass through")
		}
	})

	t.Run("masks inside groups", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("config loaded",
			slog.Group("database",
				slog.String("user", "admin"),
				slog.String("password", "s3cret"),
			),
		)

		output := buf.String()
		if strings.Contains(output, "s3cret") {
			t.Error("expected grouped password to be masked")
		}
		if !strings.Contains(output, "admin") {
			t.Error("expected grouped user to pass through")
		}
	})

	t.Run("masks attributes added via With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf).With("api_key", "key-456")

		logger.Warn("request failed")

		if strings.Contains(buf.String(), "key-456") {
			t.Error("expected With attribute to be masked")
		}
	})

	t.Run("default level suppresses debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Debug("noisy detail")
		if buf.Len() != 0 {
			t.Errorf("expected no output at debug level, got %q", buf.String())
		}

		logger.Warn("important")
		if buf.Len() == 0 {
			t.Error("expected warn output")
		}
	})
}

// TestIsSensitiveKey verifies keyword matching rules.
func TestIsSensitiveKey(t *testing.T) {
	t.Parallel()

	sensitive := []string{"password", "DB_PASSWORD", "access_token", "credentials", "secret_key"}
	for _, key := range sensitive {
		if !isSensitiveKey(key) {
			t.Errorf("expected %q to be sensitive", key)
		}
	}

	benign := []string{"name", "primary_key", "keyboard", "url", "port"}
	for _, key := range benign {
		if isSensitiveKey(key) {
			t.Errorf("expected %q to be benign", key)
		}
	}
}
