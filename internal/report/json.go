package report

import (
	"encoding/json"
	"io"

	"github.com/space-cli/space/internal/model"
)

// JSONWriter outputs the project context in JSON format.
// This format is designed for tool integration and programmatic processing;
// it is also the exact document the run dispatcher pipes to custom commands.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because it is sufficient for struct encoding and keeps the
// wire format identical to what custom commands receive on stdin.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the context in JSON format.
func (w *JSONWriter) Write(ctx *model.ProjectContext) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(ctx, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(ctx)
	}

	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
