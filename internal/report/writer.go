package report

import (
	"io"

	"github.com/space-cli/space/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a project context in a specific format.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers with
// the same API.
type Writer interface {
	// Write renders the context to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(ctx *model.ProjectContext) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than using
// io.MultiWriter because our Writer interface renders contexts, not raw
// bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the context to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(ctx *model.ProjectContext) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(ctx)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
