package pipeline

import (
	"time"

	"github.com/pokefetch/pokefetch/internal/dataset"
)

// Run carries the state of one scrape-and-persist run across steps.
//
// Design decision: All run state lives here and is threaded through the
// steps explicitly. No step keeps per-run fields of its own, so a pipeline
// (and its steps) could be reused for a second run without stale link lists
// or half-filled tables leaking across runs.
type Run struct {
	// Links are the entity detail-page suffixes extracted from the catalog
	// listing, in document order.
	Links []string

	// Table accumulates one row per scraped entity.
	Table *dataset.Table

	// StartedAt is when the run began.
	StartedAt time.Time
}

// NewRun returns an empty Run with a fresh table.
func NewRun() *Run {
	return &Run{
		Table:     dataset.NewTable(),
		StartedAt: time.Now(),
	}
}
