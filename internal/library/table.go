package library

import (
	"fmt"
	"strconv"
	"time"
)

// Table is a parsed CSV file with a date index. Dates holds the parsed
// values of the date column, one entry per row, in the order the rows
// appear in the source file. Columns holds the remaining header names in
// file order and Rows the corresponding cell values.
type Table struct {
	DateColumn string      `json:"date_column"`
	Columns    []string    `json:"columns"`
	Dates      []time.Time `json:"dates"`
	Rows       [][]string  `json:"rows"`
}

// Len returns the number of data rows in the table
func (t *Table) Len() int {
	return len(t.Dates)
}

// Column returns the values of the named column in row order.
// The second return value reports whether the column exists.
func (t *Table) Column(name string) ([]string, bool) {
	idx := -1
	for i, col := range t.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, true
}

// Floats returns the values of the named column parsed as float64.
// Cell contents are not validated at load time, so parsing happens here
// on demand and fails on the first non-numeric cell.
func (t *Table) Floats(name string) ([]float64, error) {
	values, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}

	floats := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse column %q row %d: %w", name, i, err)
		}
		floats[i] = f
	}
	return floats, nil
}

// DateRange returns the earliest and latest dates present in the index.
// The zero time is returned for an empty table.
func (t *Table) DateRange() (time.Time, time.Time) {
	if len(t.Dates) == 0 {
		return time.Time{}, time.Time{}
	}

	earliest, latest := t.Dates[0], t.Dates[0]
	for _, d := range t.Dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}
	return earliest, latest
}

// Equal reports whether two tables are structurally equal: same date
// column, same columns, same dates and same cell values in the same order.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.DateColumn != o.DateColumn || len(t.Columns) != len(o.Columns) ||
		len(t.Dates) != len(o.Dates) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i, col := range t.Columns {
		if col != o.Columns[i] {
			return false
		}
	}
	for i, d := range t.Dates {
		if !d.Equal(o.Dates[i]) {
			return false
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(o.Rows[i]) {
			return false
		}
		for j, cell := range row {
			if cell != o.Rows[i][j] {
				return false
			}
		}
	}
	return true
}
