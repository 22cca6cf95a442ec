package database

import (
	"fmt"

	go_ora "github.com/sijms/go-ora/v2"
	_ "modernc.org/sqlite" // SQLite driver
)

// Driver selects which registered database/sql driver the sink uses.
type Driver string

// Supported destination drivers.
const (
	// DriverOracle writes to an Oracle database reached over the network.
	DriverOracle Driver = "oracle"

	// DriverSQLite writes to a local SQLite file. The ConnectionSpec's
	// Service field holds the database file path.
	DriverSQLite Driver = "sqlite"
)

// ConnectionSpec names the relational destination for a run's table.
//
// It carries a credential, so it must never be logged in full: use
// Redacted() wherever the destination needs to appear in logs or errors.
type ConnectionSpec struct {
	// Driver selects the destination driver.
	Driver Driver `yaml:"driver"`

	// User is the database account name.
	User string `yaml:"user"`

	// Password is the database account password. Prefer supplying it via
	// the POKEFETCH_DB_PASSWORD environment variable over the config file.
	Password string `yaml:"password"`

	// Host is the database server hostname or address.
	Host string `yaml:"host"`

	// Port is the database listener port.
	Port int `yaml:"port"`

	// Service identifies the database: the Oracle service name, or the
	// SQLite file path.
	Service string `yaml:"service"`

	// TableName is the destination table. Any existing table with this
	// name is dropped and recreated on save.
	TableName string `yaml:"table_name"`
}

// Validate checks that every field the selected driver needs is present.
// It returns the first missing field as a sentinel error.
//
// SQLite is file-backed and has no account or listener, so only the service
// (file path) and table name are required for it.
func (s *ConnectionSpec) Validate() error {
	switch s.Driver {
	case DriverOracle:
		if s.User == "" {
			return ErrMissingUser
		}
		if s.Password == "" {
			return ErrMissingPassword
		}
		if s.Host == "" {
			return ErrMissingHost
		}
		if s.Port <= 0 {
			return ErrMissingPort
		}
		if s.Service == "" {
			return ErrMissingService
		}
	case DriverSQLite:
		if s.Service == "" {
			return ErrMissingService
		}
	default:
		return ErrUnknownDriver
	}

	if s.TableName == "" {
		return ErrMissingTableName
	}
	return nil
}

// DSN builds the driver-specific connection string.
// The result contains the credential; never log it.
func (s *ConnectionSpec) DSN() string {
	switch s.Driver {
	case DriverSQLite:
		return s.Service + "?mode=rwc"
	default:
		return go_ora.BuildUrl(s.Host, s.Port, s.Service, s.User, s.Password, nil)
	}
}

// Redacted returns a log-safe description of the destination that excludes
// the password.
func (s *ConnectionSpec) Redacted() string {
	if s.Driver == DriverSQLite {
		return fmt.Sprintf("sqlite://%s (table %s)", s.Service, s.TableName)
	}
	return fmt.Sprintf("oracle://%s@%s:%d/%s (table %s)", s.User, s.Host, s.Port, s.Service, s.TableName)
}
