package models

// Row is one spreadsheet row after parsing: trimmed header -> formatted cell value.
// Blank cells are empty strings.
type Row map[string]string

// rowReader pulls named columns out of a Row and remembers which ones were taken,
// so the leftovers can be kept as passthrough columns.
type rowReader struct {
	row  Row
	used map[string]bool
}

func newRowReader(row Row) *rowReader {
	return &rowReader{row: row, used: make(map[string]bool)}
}

func (r *rowReader) get(key string) string {
	r.used[key] = true
	return r.row[key]
}

// rest returns the columns not claimed by get, or nil if every column was claimed.
func (r *rowReader) rest() map[string]string {
	var extra map[string]string
	for k, v := range r.row {
		if r.used[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[k] = v
	}
	return extra
}
