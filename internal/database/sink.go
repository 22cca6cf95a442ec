package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pokefetch/pokefetch/internal/dataset"
)

// Sink writes an accumulated table to the relational destination.
//
// Design decision: The connection lives only for the duration of one Save
// call. A run persists exactly once at its end, so holding a pooled
// connection open across the scraping loop would buy nothing and keep a
// credentialed session alive for minutes.
type Sink struct {
	// logger for structured logging.
	logger *slog.Logger
}

// SinkOption configures a Sink.
type SinkOption func(*Sink)

// WithSinkLogger sets a custom logger for the sink.
func WithSinkLogger(logger *slog.Logger) SinkOption {
	return func(s *Sink) {
		s.logger = logger
	}
}

// NewSink creates a Sink.
func NewSink(opts ...SinkOption) *Sink {
	s := &Sink{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes every row of table to spec's destination table, dropping and
// recreating that table if it already exists. Column order follows the
// table's column-union order. Saving the same table twice produces identical
// destination contents.
//
// A zero-row table returns ErrEmptyTable before any connection is opened.
// The connection is closed on every exit path.
func (s *Sink) Save(ctx context.Context, table *dataset.Table, spec ConnectionSpec) error {
	if table == nil || table.Len() == 0 {
		return ErrEmptyTable
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	// SQLite creates the database file but not its directory.
	if spec.Driver == DriverSQLite {
		if dir := filepath.Dir(spec.Service); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(string(spec.Driver), spec.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", spec.Redacted(), err)
	}
	defer db.Close()

	s.logger.Debug("persisting table",
		"destination", spec.Redacted(),
		"rows", table.Len(),
		"columns", len(table.Columns()),
	)

	if err := s.replaceTable(ctx, db, table, spec); err != nil {
		return fmt.Errorf("failed to write table %q: %w", spec.TableName, err)
	}
	return nil
}

// replaceTable drops, recreates, and fills the destination table inside a
// single transaction so a failed run never leaves a half-written table.
func (s *Sink) replaceTable(ctx context.Context, db *sql.DB, table *dataset.Table, spec ConnectionSpec) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.ExecContext(ctx, dropStatement(spec)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, createStatement(spec, table.Columns())); err != nil {
		return err
	}

	insert := insertStatement(spec, table.Columns())
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		args := make([]any, len(row))
		for c, v := range row {
			args[c] = v
		}
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// quoteIdent quotes an identifier with double quotes. Attribute keys contain
// spaces ("Pokemon Name"), so quoting is mandatory, not cosmetic.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// dropStatement returns the driver-specific statement that removes the
// destination table if it exists. Oracle has no DROP TABLE IF EXISTS, so a
// PL/SQL block swallows ORA-00942 (table does not exist).
func dropStatement(spec ConnectionSpec) string {
	quoted := quoteIdent(spec.TableName)
	if spec.Driver == DriverSQLite {
		return "DROP TABLE IF EXISTS " + quoted
	}
	return fmt.Sprintf(
		`BEGIN EXECUTE IMMEDIATE 'DROP TABLE %s'; EXCEPTION WHEN OTHERS THEN IF SQLCODE != -942 THEN RAISE; END IF; END;`,
		strings.ReplaceAll(quoted, "'", "''"),
	)
}

// createStatement returns the CREATE TABLE statement with every column
// text-typed, in column-union order.
func createStatement(spec ConnectionSpec, columns []string) string {
	colType := "VARCHAR2(4000)"
	if spec.Driver == DriverSQLite {
		colType = "TEXT"
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " " + colType
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(spec.TableName), strings.Join(defs, ", "))
}

// insertStatement returns the parameterized INSERT statement for one row.
// Oracle uses :n positional binds, SQLite uses ?.
func insertStatement(spec ConnectionSpec, columns []string) string {
	quoted := make([]string, len(columns))
	binds := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		if spec.Driver == DriverSQLite {
			binds[i] = "?"
		} else {
			binds[i] = fmt.Sprintf(":%d", i+1)
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(spec.TableName), strings.Join(quoted, ", "), strings.Join(binds, ", "))
}
