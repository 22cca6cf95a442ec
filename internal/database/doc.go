// Package database persists the accumulated Pokémon table to a relational
// store.
//
// The sink speaks to the destination through database/sql with one of two
// registered drivers:
//   - oracle (github.com/sijms/go-ora): the production destination; the
//     connection string is built from the ConnectionSpec's host, port, and
//     service fields
//   - sqlite (modernc.org/sqlite): a file-backed destination for local runs
//     and tests, with no external dependencies and no CGO
//
// Writes are destructive replaces: the destination table is dropped and
// recreated on every save, never appended to. All destination columns are
// text-typed; the schema is whatever column union the run produced.
package database
