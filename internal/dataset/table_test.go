package dataset

import (
	"reflect"
	"testing"
)

func rowFromPairs(pairs ...string) *AttributeMap {
	m := NewAttributeMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// TestTableAppend tests the column-union accumulation rule.
func TestTableAppend(t *testing.T) {
	t.Parallel()

	t.Run("first append seeds columns", func(t *testing.T) {
		t.Parallel()

		tbl := NewTable()
		tbl.Append(rowFromPairs(NameColumn, "Bulbasaur", "Type", "Grass / Poison"))

		if tbl.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", tbl.Len())
		}
		wantCols := []string{NameColumn, "Type"}
		if got := tbl.Columns(); !reflect.DeepEqual(got, wantCols) {
			t.Errorf("Columns() = %v, want %v", got, wantCols)
		}
		wantRow := []string{"Bulbasaur", "Grass / Poison"}
		if got := tbl.Row(0); !reflect.DeepEqual(got, wantRow) {
			t.Errorf("Row(0) = %v, want %v", got, wantRow)
		}
	})

	t.Run("later row missing a column yields empty value", func(t *testing.T) {
		t.Parallel()

		tbl := NewTable()
		tbl.Append(rowFromPairs(NameColumn, "Bulbasaur", "Type", "Grass / Poison"))
		tbl.Append(rowFromPairs(NameColumn, "Ivysaur"))

		wantRow := []string{"Ivysaur", ""}
		if got := tbl.Row(1); !reflect.DeepEqual(got, wantRow) {
			t.Errorf("Row(1) = %v, want %v", got, wantRow)
		}
	})

	t.Run("new column backfills empty for earlier rows", func(t *testing.T) {
		t.Parallel()

		tbl := NewTable()
		tbl.Append(rowFromPairs(NameColumn, "Bulbasaur"))
		tbl.Append(rowFromPairs(NameColumn, "Charmander", "Ability", "Blaze"))

		wantCols := []string{NameColumn, "Ability"}
		if got := tbl.Columns(); !reflect.DeepEqual(got, wantCols) {
			t.Errorf("Columns() = %v, want %v", got, wantCols)
		}
		if got := tbl.Value(0, "Ability"); got != "" {
			t.Errorf("Value(0, Ability) = %q, want empty", got)
		}
		if got := tbl.Value(1, "Ability"); got != "Blaze" {
			t.Errorf("Value(1, Ability) = %q, want %q", got, "Blaze")
		}
	})

	t.Run("column order is first-seen order across rows", func(t *testing.T) {
		t.Parallel()

		tbl := NewTable()
		tbl.Append(rowFromPairs(NameColumn, "a", "Type", "t"))
		tbl.Append(rowFromPairs(NameColumn, "b", "Species", "s", "Type", "t"))
		tbl.Append(rowFromPairs(NameColumn, "c", "Height", "h"))

		wantCols := []string{NameColumn, "Type", "Species", "Height"}
		if got := tbl.Columns(); !reflect.DeepEqual(got, wantCols) {
			t.Errorf("Columns() = %v, want %v", got, wantCols)
		}
	})

	t.Run("appended rows are detached from the source map", func(t *testing.T) {
		t.Parallel()

		m := rowFromPairs(NameColumn, "Bulbasaur", "Type", "Grass")
		tbl := NewTable()
		tbl.Append(m)
		m.Set("Type", "Grass / Poison")

		if got := tbl.Value(0, "Type"); got != "Grass" {
			t.Errorf("Value(0, Type) = %q after source mutation, want %q", got, "Grass")
		}
	})

	t.Run("Columns returns a copy", func(t *testing.T) {
		t.Parallel()

		tbl := NewTable()
		tbl.Append(rowFromPairs(NameColumn, "Bulbasaur"))
		cols := tbl.Columns()
		cols[0] = "mutated"

		if got := tbl.Columns()[0]; got != NameColumn {
			t.Errorf("Columns()[0] = %q after caller mutation, want %q", got, NameColumn)
		}
	})

	t.Run("empty table has no columns or rows", func(t *testing.T) {
		t.Parallel()

		tbl := NewTable()
		if tbl.Len() != 0 {
			t.Errorf("Len() = %d, want 0", tbl.Len())
		}
		if cols := tbl.Columns(); len(cols) != 0 {
			t.Errorf("Columns() = %v, want empty", cols)
		}
	})
}
