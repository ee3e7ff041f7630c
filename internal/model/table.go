package model

// Table holds one instrument master table in column order.
//
// Rows are kept as raw strings so that columns we do not interpret pass
// through to exports byte for byte. A row may be shorter than the header when
// the source file is ragged; Get returns "" for the missing cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Get returns the cell at (row, col), or "" when the row is too short.
func (t *Table) Get(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
