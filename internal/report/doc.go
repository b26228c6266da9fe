// Package report renders project contexts for human and machine consumers.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//
// Design decision: We separate report writing from the context data
// structures (which are in the model package) so that new output formats can
// be added without touching the core types.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
