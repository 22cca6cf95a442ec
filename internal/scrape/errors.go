package scrape

import "fmt"

// MissingFieldError indicates a required structural element was not found in
// a document. Every detail page is expected to carry a name heading, so its
// absence is fatal to the run rather than something to skip over.
type MissingFieldError struct {
	// Field names the missing element in human terms (e.g. "name heading").
	Field string

	// Selector is the structural query that produced no match.
	Selector string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q (selector %q)", e.Field, e.Selector)
}
