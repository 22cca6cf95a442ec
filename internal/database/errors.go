package database

import "errors"

// Connection and persistence errors.
//
// Design decision: We use package-level sentinel errors so callers can use
// errors.Is() for programmatic handling while keeping human-readable
// messages. The messages name the missing ConnectionSpec key exactly as it
// appears in the configuration file.
var (
	// ErrEmptyTable is returned when persistence is attempted with zero
	// accumulated rows. The sink never silently creates an empty
	// destination table, and it returns this before opening any connection.
	ErrEmptyTable = errors.New("table is empty: nothing was scraped, refusing to persist")

	// ErrUnknownDriver is returned for a driver other than oracle or sqlite.
	ErrUnknownDriver = errors.New("unknown database driver: must be \"oracle\" or \"sqlite\"")

	// ErrMissingUser is returned when the user field is missing.
	ErrMissingUser = errors.New("missing database field: user")

	// ErrMissingPassword is returned when the password field is missing.
	ErrMissingPassword = errors.New("missing database field: password")

	// ErrMissingHost is returned when the host field is missing.
	ErrMissingHost = errors.New("missing database field: host")

	// ErrMissingPort is returned when the port field is missing or not positive.
	ErrMissingPort = errors.New("missing database field: port (must be a positive integer)")

	// ErrMissingService is returned when the service field is missing.
	// For the sqlite driver the service field holds the database file path.
	ErrMissingService = errors.New("missing database field: service")

	// ErrMissingTableName is returned when the destination table name is missing.
	ErrMissingTableName = errors.New("missing database field: table_name")
)
