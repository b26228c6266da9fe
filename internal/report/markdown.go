package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/space-cli/space/internal/model"
)

// MarkdownWriter outputs the project context in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting the
// service table into a project README or a pull request.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the context in Markdown format.
func (w *MarkdownWriter) Write(ctx *model.ProjectContext) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, ctx)
	w.writeServices(md, ctx)

	return len(md.String()), md.Build()
}

// writeHeader writes the project identity table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, ctx *model.ProjectContext) {
	md.H1("Project Services")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", ctx.ProjectName},
			{"Hash", "`" + ctx.Hash + "`"},
			{"Domain", "`" + ctx.BaseDomain + "`"},
		},
	})
	md.PlainText("")
}

// writeServices writes one table row per service, in name order.
func (w *MarkdownWriter) writeServices(md *markdown.Markdown, ctx *model.ProjectContext) {
	md.H2("Services")
	md.PlainText("")

	if len(ctx.Services) == 0 {
		md.Note("No services configured.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(ctx.Services))
	for _, name := range ctx.SortedServiceNames() {
		svc := ctx.Services[name]
		rows = append(rows, []string{
			name,
			"`" + svc.DNSName + "`",
			strconv.Itoa(svc.InternalPort),
			svc.URL,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Service", "DNS", "Port", "URL"},
		Rows:   rows,
	})
	md.PlainText("")
}
