// Package models defines data structures for discharge-invoice extraction.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Cell is a single normalized spreadsheet cell. The underlying value is a
// string, a number, or absent; zero Cell means absent.
type Cell struct {
	value any
}

// NewCell wraps a raw cell value. Accepted kinds are nil, string, float64,
// int and int64; anything else is treated as absent.
func NewCell(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Cell{}
	case string:
		return Cell{value: x}
	case float64:
		return Cell{value: x}
	case int:
		return Cell{value: int64(x)}
	case int64:
		return Cell{value: x}
	default:
		return Cell{}
	}
}

// Present reports whether the cell holds a usable value. Nil, NaN and
// strings that are empty after trimming count as absent.
func (c Cell) Present() bool {
	switch x := c.value.(type) {
	case string:
		return strings.TrimSpace(x) != ""
	case float64:
		return !math.IsNaN(x)
	case int64:
		return true
	default:
		return false
	}
}

// Text returns the trimmed string form of the cell, or "" when absent.
func (c Cell) Text() string {
	switch x := c.value.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}

// Float returns the numeric form of the cell. String values parse after
// thousands separators are removed. Parse failure reports ok=false; callers
// substitute the contextual zero value rather than raising an error.
func (c Cell) Float() (float64, bool) {
	switch x := c.value.(type) {
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return x, true
	case int64:
		return float64(x), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether the cell carries a native numeric value, as
// opposed to text that may or may not parse as a number.
func (c Cell) IsNumeric() bool {
	switch c.value.(type) {
	case float64, int64:
		return c.Present()
	default:
		return false
	}
}

// Sheet is an immutable ordered 2D grid of cells, one per invoice-bearing
// worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Rows holds the cell grid in sheet order.
	Rows [][]Cell
}

// Cell returns the cell at (row, col). Out-of-range coordinates return an
// absent cell, never panic.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || col < 0 || row >= len(s.Rows) {
		return Cell{}
	}
	r := s.Rows[row]
	if col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// RowCount returns the number of rows in the sheet.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}
