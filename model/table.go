package model

// Table is an ordered-column table of string cells. Rows always have exactly
// len(Columns) values; missing cells are empty strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
	}
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// IsEmpty reports whether the table has no data rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// AppendRowMap appends a row built by looking up each column name in values.
// Columns absent from the map become empty cells.
func (t *Table) AppendRowMap(values map[string]string) {
	row := make([]string, len(t.Columns))
	for i, name := range t.Columns {
		row[i] = values[name]
	}
	t.Rows = append(t.Rows, row)
}

// Rename replaces the column names without touching cell values. It is a
// no-op unless len(names) matches the current column count.
func (t *Table) Rename(names []string) bool {
	if len(names) != len(t.Columns) {
		return false
	}
	t.Columns = append([]string(nil), names...)
	return true
}

// InsertColumn inserts a column at index idx with the same value in every
// existing row. Used to tag per-page tables with their page number before
// merging multi-page documents.
func (t *Table) InsertColumn(idx int, name, value string) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.Columns) {
		idx = len(t.Columns)
	}
	t.Columns = append(t.Columns[:idx], append([]string{name}, t.Columns[idx:]...)...)
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:idx], append([]string{value}, row[idx:]...)...)
	}
}

// AppendRows appends the other table's rows to this one. Rows are padded or
// truncated to this table's column count if the shapes differ.
func (t *Table) AppendRows(other *Table) {
	for _, row := range other.Rows {
		copied := make([]string, len(t.Columns))
		copy(copied, row)
		t.Rows = append(t.Rows, copied)
	}
}
