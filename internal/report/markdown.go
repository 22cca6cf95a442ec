package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs summaries in Markdown format.
// This format is designed for documentation and sharing.
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

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeColumns(md, summary)

	return len(md.String()), md.Build()
}

// writeHeader writes the summary header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *Summary) {
	md.H1("Pokefetch Run Summary")
	md.PlainText("")

	rows := [][]string{
		{"Catalog", "`" + summary.CatalogURL + "`"},
		{"Entities", strconv.Itoa(summary.Entities)},
		{"Columns", strconv.Itoa(len(summary.Columns))},
		{"Table", "`" + summary.TableName + "`"},
		{"Destination", "`" + summary.Destination + "`"},
		{"Elapsed", summary.Elapsed.Round(timeRounding).String()},
	}
	if !summary.FinishedAt.IsZero() {
		rows = append(rows, []string{"Finished", summary.FinishedAt.Format("2006-01-02 15:04:05 MST")})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.Entities == 0 {
		md.Warningf("no entities were collected from %s", summary.CatalogURL)
		md.PlainText("")
	}
}

// writeColumns writes the merged column list in first-seen order.
func (w *MarkdownWriter) writeColumns(md *markdown.Markdown, summary *Summary) {
	md.H2("Columns")
	md.PlainText("")

	if len(summary.Columns) == 0 {
		md.PlainText("No columns collected.")
		md.PlainText("")
		return
	}

	md.BulletList(summary.Columns...)
	md.PlainText("")
}
