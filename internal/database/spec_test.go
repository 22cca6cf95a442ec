package database

import (
	"errors"
	"strings"
	"testing"
)

func oracleSpec() ConnectionSpec {
	return ConnectionSpec{
		Driver:    DriverOracle,
		User:      "scraper",
		Password:  "hunter2",
		Host:      "db.example.com",
		Port:      1521,
		Service:   "ORCLPDB1",
		TableName: "master_pokemon",
	}
}

// TestConnectionSpecValidate tests required-field checking per driver.
func TestConnectionSpecValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*ConnectionSpec)
		wantErr error
	}{
		{"valid oracle spec", func(*ConnectionSpec) {}, nil},
		{"missing user", func(s *ConnectionSpec) { s.User = "" }, ErrMissingUser},
		{"missing password", func(s *ConnectionSpec) { s.Password = "" }, ErrMissingPassword},
		{"missing host", func(s *ConnectionSpec) { s.Host = "" }, ErrMissingHost},
		{"missing port", func(s *ConnectionSpec) { s.Port = 0 }, ErrMissingPort},
		{"negative port", func(s *ConnectionSpec) { s.Port = -1 }, ErrMissingPort},
		{"missing service", func(s *ConnectionSpec) { s.Service = "" }, ErrMissingService},
		{"missing table name", func(s *ConnectionSpec) { s.TableName = "" }, ErrMissingTableName},
		{"unknown driver", func(s *ConnectionSpec) { s.Driver = "postgres" }, ErrUnknownDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := oracleSpec()
			tt.mutate(&spec)

			if err := spec.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("sqlite needs only service and table name", func(t *testing.T) {
		t.Parallel()

		spec := ConnectionSpec{Driver: DriverSQLite, Service: "/tmp/pokefetch.db", TableName: "master_pokemon"}
		if err := spec.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}

		spec.Service = ""
		if err := spec.Validate(); !errors.Is(err, ErrMissingService) {
			t.Errorf("Validate() = %v, want ErrMissingService", err)
		}
	})
}

// TestConnectionSpecDSN tests connection string construction.
func TestConnectionSpecDSN(t *testing.T) {
	t.Parallel()

	t.Run("sqlite dsn is the file path", func(t *testing.T) {
		t.Parallel()

		spec := ConnectionSpec{Driver: DriverSQLite, Service: "/tmp/pokefetch.db", TableName: "t"}
		if got := spec.DSN(); got != "/tmp/pokefetch.db?mode=rwc" {
			t.Errorf("DSN() = %q", got)
		}
	})

	t.Run("oracle dsn carries host port and service", func(t *testing.T) {
		t.Parallel()

		spec := oracleSpec()
		dsn := spec.DSN()
		if !strings.HasPrefix(dsn, "oracle://") {
			t.Errorf("DSN() = %q, want oracle:// prefix", dsn)
		}
		for _, part := range []string{"db.example.com", "1521", "ORCLPDB1"} {
			if !strings.Contains(dsn, part) {
				t.Errorf("DSN() = %q, missing %q", dsn, part)
			}
		}
	})
}

// TestConnectionSpecRedacted tests that the credential never leaks.
func TestConnectionSpecRedacted(t *testing.T) {
	t.Parallel()

	spec := oracleSpec()
	redacted := spec.Redacted()

	if strings.Contains(redacted, spec.Password) {
		t.Errorf("Redacted() = %q contains the password", redacted)
	}
	for _, part := range []string{"scraper", "db.example.com", "master_pokemon"} {
		if !strings.Contains(redacted, part) {
			t.Errorf("Redacted() = %q, missing %q", redacted, part)
		}
	}
}
