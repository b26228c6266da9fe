package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/space-cli/space/internal/model"
)

// SimpleWriter outputs a human-readable text summary of a project context.
// The format is fixed: three header lines identifying the project, then one
// block per service in ascending name order.
//
// Design decision: We use plain text without ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. The output doubles as the stable contract consumed by scripts
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the context in human-readable format.
//
// The whole report is rendered into a buffer and written in one call, so a
// consumer never observes a partially flushed report. Service blocks appear
// in ascending lexicographic order of service name regardless of map
// insertion order.
func (w *SimpleWriter) Write(ctx *model.ProjectContext) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Project: %s\n", ctx.ProjectName))
	sb.WriteString(fmt.Sprintf("Hash: %s\n", ctx.Hash))
	sb.WriteString(fmt.Sprintf("Domain: %s\n", ctx.BaseDomain))
	sb.WriteString("\n")

	if len(ctx.Services) == 0 {
		sb.WriteString("No services configured.\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString("Services:\n")
	for _, name := range ctx.SortedServiceNames() {
		svc := ctx.Services[name]
		sb.WriteString(fmt.Sprintf("  %s:\n", name))
		sb.WriteString(fmt.Sprintf("    DNS:  %s\n", svc.DNSName))
		sb.WriteString(fmt.Sprintf("    Port: %d\n", svc.InternalPort))
		sb.WriteString(fmt.Sprintf("    URL:  %s\n", svc.URL))
		sb.WriteString("\n")
	}

	return w.output.Write([]byte(sb.String()))
}
