package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// sensitiveKeys contains attribute keys that are always masked.
var sensitiveKeys = map[string]bool{
	"password":      true,
	"passwd":        true,
	"secret":        true,
	"token":         true,
	"api_key":       true,
	"apikey":        true,
	"api-key":       true,
	"access_token":  true,
	"refresh_token": true,
	"private_key":   true,
	"secret_key":    true,
	"credential":    true,
	"credentials":   true,
	"auth":          true,
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***MASKED***"

// MaskingHandler wraps an slog.Handler to mask sensitive attribute values
// before they reach the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
type MaskingHandler struct {
	// handler is the underlying slog handler that receives masked records.
	handler slog.Handler
}

// NewMaskingHandler creates a MaskingHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewMaskingHandler(handler slog.Handler) *MaskingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &MaskingHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *MaskingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *MaskingHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are masked before being added.
func (h *MaskingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &MaskingHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *MaskingHandler) WithGroup(name string) slog.Handler {
	return &MaskingHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursively handling groups.
func (h *MaskingHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// isSensitiveKey reports whether the key names a secret.
// The bare keyword "key" is intentionally excluded; it causes false
// positives (primary_key, keyboard). Specific key-related names are in
// the sensitiveKeys map.
func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	if sensitiveKeys[lower] {
		return true
	}

	for _, keyword := range []string{"password", "passwd", "secret", "token", "credential"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// NewLogger creates a *slog.Logger that writes masked text records to w.
// Verbose mode lowers the level from Warn to Debug; sensitive values are
// masked in either mode.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(NewMaskingHandler(slog.NewTextHandler(w, opts)))
}
