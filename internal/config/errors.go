package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic handling while still providing human-readable messages.
var (
	// ErrMissingCatalogURL is returned when no catalog listing URL is set.
	ErrMissingCatalogURL = errors.New("missing catalog URL: set --catalog-url or catalog_url in the config file")

	// ErrInvalidCatalogURL is returned when the catalog URL is not absolute.
	ErrInvalidCatalogURL = errors.New("invalid catalog URL: must be absolute (scheme and host)")

	// ErrMissingBaseOrigin is returned when no base origin is set.
	ErrMissingBaseOrigin = errors.New("missing base origin: set --base-origin or base_origin in the config file")

	// ErrInvalidBaseOrigin is returned when the base origin is not absolute.
	ErrInvalidBaseOrigin = errors.New("invalid base origin: must be absolute (scheme and host)")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive (1 means sequential)")

	// ErrConfigNotFound is returned when an explicitly requested
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
