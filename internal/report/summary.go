package report

import "time"

// Summary captures the outcome of a completed fetch run.
// It carries only display-safe values: the destination string must
// already have credentials stripped before it reaches this package.
type Summary struct {
	// CatalogURL is the listing page the run started from.
	CatalogURL string

	// Entities is the number of detail pages scraped into rows.
	Entities int

	// Columns holds the merged column names in first-seen order.
	Columns []string

	// Destination describes the database the rows were written to,
	// with the password removed.
	Destination string

	// TableName is the table that was replaced during persistence.
	TableName string

	// Elapsed is the wall-clock duration of the whole run.
	Elapsed time.Duration

	// FinishedAt records when the run completed.
	FinishedAt time.Time
}
