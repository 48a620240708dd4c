package sheet

// Sheet is an in-memory worksheet table: named columns in source order plus
// row-major cells. Cell values are string, float64, time.Time, or nil.
type Sheet struct {
	Columns []string
	Rows    [][]any
}

// New creates an empty sheet with the given columns.
func New(columns []string) *Sheet {
	return &Sheet{Columns: columns}
}

// ColumnIndex returns the position of a column by name, or -1 if absent.
func (s *Sheet) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with the given name exists.
func (s *Sheet) HasColumn(name string) bool {
	return s.ColumnIndex(name) >= 0
}

// Cell returns the value at (row, col), or nil when out of range. Rows may be
// ragged when the source sheet has trailing empty cells.
func (s *Sheet) Cell(row, col int) any {
	if row < 0 || row >= len(s.Rows) {
		return nil
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Column returns all values of a named column, one per row, nil-padded for
// short rows. Returns nil if the column does not exist.
func (s *Sheet) Column(name string) []any {
	idx := s.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]any, len(s.Rows))
	for i := range s.Rows {
		out[i] = s.Cell(i, idx)
	}
	return out
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	return len(s.Rows)
}

// Records converts the sheet to one map per row keyed by column name.
// Used when serializing pass-through tables to JSON row objects.
func (s *Sheet) Records() []map[string]any {
	records := make([]map[string]any, len(s.Rows))
	for i := range s.Rows {
		rec := make(map[string]any, len(s.Columns))
		for j, col := range s.Columns {
			rec[col] = s.Cell(i, j)
		}
		records[i] = rec
	}
	return records
}

// MapColumn applies fn to every cell of the named column in place.
// No-op if the column does not exist.
func (s *Sheet) MapColumn(name string, fn func(any) any) {
	idx := s.ColumnIndex(name)
	if idx < 0 {
		return
	}
	for i, row := range s.Rows {
		if idx < len(row) {
			s.Rows[i][idx] = fn(row[idx])
		}
	}
}
