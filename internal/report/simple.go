package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// timeRounding keeps elapsed durations readable in terminal output.
const timeRounding = 10 * time.Millisecond

// SimpleWriter outputs human-readable text summaries.
// This format is designed for terminal display after a run finishes.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showColumns controls whether the column list is printed.
	showColumns bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowColumns configures the writer to list the merged columns.
func WithShowColumns(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showColumns = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:  newBaseWriter(output),
		showColumns: false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeCounts(&sb, summary)
	if w.showColumns {
		w.writeColumns(&sb, summary)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the summary header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, summary *Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         POKEFETCH RUN SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Catalog:     %s\n", summary.CatalogURL))
	if !summary.FinishedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Finished:    %s\n", summary.FinishedAt.Format("2006-01-02 15:04:05 MST")))
	}
	sb.WriteString(fmt.Sprintf("Elapsed:     %s\n", summary.Elapsed.Round(timeRounding)))
	sb.WriteString("\n")
}

// writeCounts writes the row and destination section.
func (w *SimpleWriter) writeCounts(sb *strings.Builder, summary *Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RESULT\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Entities:    %d\n", summary.Entities))
	sb.WriteString(fmt.Sprintf("  Columns:     %d\n", len(summary.Columns)))
	sb.WriteString(fmt.Sprintf("  Table:       %s\n", summary.TableName))
	sb.WriteString(fmt.Sprintf("  Destination: %s\n", summary.Destination))
	sb.WriteString("\n")
}

// writeColumns lists the merged column names in first-seen order.
func (w *SimpleWriter) writeColumns(sb *strings.Builder, summary *Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("COLUMNS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(summary.Columns) == 0 {
		sb.WriteString("  No columns collected\n")
	} else {
		for _, col := range summary.Columns {
			sb.WriteString(fmt.Sprintf("  * %s\n", col))
		}
	}
	sb.WriteString("\n")
}
