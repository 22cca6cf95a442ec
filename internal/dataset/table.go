package dataset

// Table accumulates one row per scraped Pokémon.
//
// Columns are the union of every attribute key seen across appended rows.
// When a row introduces a new column, all earlier rows implicitly hold an
// empty value for it; when a row lacks an existing column, it holds an empty
// value for that column. The table only grows during a run and lives in
// memory until handed to the persistence sink.
//
// Design decision: Rows are stored as maps and materialized against the
// column set on read. This makes Append O(len(row)) regardless of how many
// columns earlier rows are missing, and keeps the column-union rule in one
// place instead of backfilling every stored row on each append.
type Table struct {
	columns []string
	colSet  map[string]bool
	rows    []map[string]string
}

// NewTable returns an empty Table with no columns.
func NewTable() *Table {
	return &Table{
		colSet: make(map[string]bool),
	}
}

// Append adds row as a new table row. Columns the table has not seen before
// are added in the row's own key order, after all existing columns.
func (t *Table) Append(row *AttributeMap) {
	stored := make(map[string]string, row.Len())
	for _, key := range row.Keys() {
		if !t.colSet[key] {
			t.colSet[key] = true
			t.columns = append(t.columns, key)
		}
		stored[key], _ = row.Get(key)
	}
	t.rows = append(t.rows, stored)
}

// Columns returns the column names in union order (first-seen order).
func (t *Table) Columns() []string {
	columns := make([]string, len(t.columns))
	copy(columns, t.columns)
	return columns
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns row i materialized against the full column set, in column
// order. Columns the row never had are returned as empty strings.
func (t *Table) Row(i int) []string {
	values := make([]string, len(t.columns))
	for c, col := range t.columns {
		values[c] = t.rows[i][col]
	}
	return values
}

// Value returns the value of column col in row i, or the empty string if the
// row does not carry that column.
func (t *Table) Value(i int, col string) string {
	return t.rows[i][col]
}
