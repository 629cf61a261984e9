package report

import (
	"maps"
	"slices"
)

// Report maps column identifiers to their summary rows. A column added
// twice keeps its latest row.
type Report struct {
	rows map[string]Row
}

// New returns an empty report.
func New() *Report {
	return &Report{rows: make(map[string]Row)}
}

// Add stores row, replacing any previous row for the same column.
func (r *Report) Add(row Row) {
	r.rows[row.Column] = row
}

// Get returns the row of column.
func (r *Report) Get(column string) (Row, bool) {
	row, ok := r.rows[column]
	return row, ok
}

// Status reports whether column has a row and whether it was forced.
func (r *Report) Status(column string) (saved, forced bool) {
	row, ok := r.rows[column]
	return ok, ok && row.Forced
}

// Len returns the number of rows.
func (r *Report) Len() int { return len(r.rows) }

// Rows returns all rows sorted by column.
func (r *Report) Rows() []Row {
	keys := slices.Sorted(maps.Keys(r.rows))
	out := make([]Row, len(keys))
	for i, k := range keys {
		out[i] = r.rows[k]
	}
	return out
}

// MaxPairs returns the widest pair list across all rows.
func (r *Report) MaxPairs() int {
	n := 0
	for _, row := range r.rows {
		n = max(n, len(row.Pairs))
	}
	return n
}
