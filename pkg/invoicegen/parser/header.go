package parser

import (
	"strings"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

// FindHeaderRow scans rows top-down for the row that defines the item
// table: the first row whose present cell values (lower-cased, trimmed)
// contain "description" together with "qty" or "unit". The returned index
// is the pivot separating the metadata region from the item region.
func FindHeaderRow(s *models.Sheet) (int, bool) {
	for i, row := range s.Rows {
		var hasDescription, hasQty, hasUnit bool
		for _, c := range row {
			if !c.Present() {
				continue
			}
			switch strings.ToLower(c.Text()) {
			case "description":
				hasDescription = true
			case "qty":
				hasQty = true
			case "unit":
				hasUnit = true
			}
		}
		if hasDescription && (hasQty || hasUnit) {
			return i, true
		}
	}
	return 0, false
}

// MapColumnRoles assigns semantic roles to the columns of the header row.
// Each present cell is matched against substring rules in a fixed
// precedence order; the first matching rule claims the cell and a scalar
// role is only ever assigned once. Debit and credit columns accumulate in
// header order and are read positionally as (Patient, Insurer).
func MapColumnRoles(s *models.Sheet, headerRow int) models.ColumnRoleMap {
	m := models.NewColumnRoleMap()
	if headerRow < 0 || headerRow >= len(s.Rows) {
		return m
	}
	for col, c := range s.Rows[headerRow] {
		if !c.Present() {
			continue
		}
		text := strings.ToLower(c.Text())
		switch {
		case strings.Contains(text, "description"):
			setIfUnassigned(&m.Description, col)
		case strings.Contains(text, "qty"):
			setIfUnassigned(&m.Qty, col)
		case strings.Contains(text, "unit"):
			setIfUnassigned(&m.Unit, col)
		case strings.Contains(text, "date") && !strings.Contains(text, "admission"):
			setIfUnassigned(&m.Date, col)
		case strings.Contains(text, "total") && !strings.Contains(text, "grand"):
			setIfUnassigned(&m.Total, col)
		case strings.Contains(text, "discount"):
			setIfUnassigned(&m.Discount, col)
		case strings.Contains(text, "debit"):
			if len(m.Debits) < 2 {
				m.Debits = append(m.Debits, col)
			}
		case strings.Contains(text, "credit"):
			if len(m.Credits) < 2 {
				m.Credits = append(m.Credits, col)
			}
		}
	}
	return m
}

func setIfUnassigned(role *int, col int) {
	if *role == models.NoColumn {
		*role = col
	}
}
