// Package report renders run summaries in text and Markdown formats.
package report
