package fetch

import "fmt"

// FetchError indicates a transport-level failure reaching a URL: connection
// errors, timeouts, or an unexpected HTTP status. The URL identifies which
// page was being fetched when the run aborted.
type FetchError struct {
	// URL is the absolute URL that could not be fetched.
	URL string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError indicates the response body could not be interpreted as markup.
// With a lenient HTML parser this is rare (typically a read failure while
// tokenizing), but it is kept as a distinct kind so callers can tell
// transport problems from parse problems.
type ParseError struct {
	// URL is the page whose body failed to parse.
	URL string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *ParseError) Unwrap() error {
	return e.Err
}
