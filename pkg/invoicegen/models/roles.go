package models

// NoColumn marks a semantic role with no assigned spreadsheet column.
// Readers of an unassigned role render blank or zero, never error.
const NoColumn = -1

// ColumnRoleMap assigns spreadsheet column indices to semantic roles. It is
// built once per sheet from the header row; assignment is deterministic
// given the header text (first-match-wins per cell scan order).
type ColumnRoleMap struct {
	// Description is the line-item description column.
	Description int
	// Qty is the quantity column.
	Qty int
	// Unit is the unit column.
	Unit int
	// Date is the service-date column (headers containing "admission" are
	// metadata labels, not this role).
	Date int
	// Total is the line-total column (headers containing "grand" are the
	// terminator row, not this role).
	Total int
	// Discount is the discount column.
	Discount int
	// Debits holds debit columns in header order, positionally interpreted
	// as (Patient, Insurer). At most two entries.
	Debits []int
	// Credits holds credit columns in header order, positionally
	// interpreted as (Patient, Insurer). At most two entries.
	Credits []int
}

// NewColumnRoleMap returns a map with every role unassigned.
func NewColumnRoleMap() ColumnRoleMap {
	return ColumnRoleMap{
		Description: NoColumn,
		Qty:         NoColumn,
		Unit:        NoColumn,
		Date:        NoColumn,
		Total:       NoColumn,
		Discount:    NoColumn,
	}
}

func nth(cols []int, i int) int {
	if i < len(cols) {
		return cols[i]
	}
	return NoColumn
}

// PatientDebit returns the first debit column, or NoColumn.
func (m ColumnRoleMap) PatientDebit() int { return nth(m.Debits, 0) }

// PatientCredit returns the first credit column, or NoColumn.
func (m ColumnRoleMap) PatientCredit() int { return nth(m.Credits, 0) }

// InsurerDebit returns the second debit column, or NoColumn.
func (m ColumnRoleMap) InsurerDebit() int { return nth(m.Debits, 1) }

// InsurerCredit returns the second credit column, or NoColumn.
func (m ColumnRoleMap) InsurerCredit() int { return nth(m.Credits, 1) }
