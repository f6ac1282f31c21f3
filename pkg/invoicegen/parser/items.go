package parser

import (
	"fmt"
	"strings"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

// grandTotalPhrase terminates the item region. The first row carrying it in
// the description or date column absorbs the scan: rows beneath it are
// never read, even if they look like items.
const grandTotalPhrase = "Grand Total"

// BuildLineItems walks the rows below the pivot, classifies each surviving
// row as item, category header or subtotal, and stops at the grand-total
// terminator. It returns the ordered line items and the terminator's
// patient/insurer amounts. maxRows caps the scan against pathological
// inputs; zero means the whole sheet.
func BuildLineItems(s *models.Sheet, pivot int, roles models.ColumnRoleMap, maxRows int) ([]models.LineItem, models.GrandTotal) {
	var items []models.LineItem
	var total models.GrandTotal

	end := s.RowCount()
	if maxRows > 0 && pivot+1+maxRows < end {
		end = pivot + 1 + maxRows
	}

	for i := pivot + 1; i < end; i++ {
		desc := s.Cell(i, roles.Description).Text()
		dateText := s.Cell(i, roles.Date).Text()

		if strings.Contains(desc, grandTotalPhrase) || strings.Contains(dateText, grandTotalPhrase) {
			total = readGrandTotal(s, i, roles)
			break
		}

		qty := s.Cell(i, roles.Qty)
		if desc == "" && !qty.Present() && debitBlank(s, i, roles.PatientDebit()) && debitBlank(s, i, roles.InsurerDebit()) {
			// Blank spacer row.
			continue
		}

		switch {
		case strings.Contains(strings.ToLower(desc), "total"):
			items = append(items, models.LineItem{
				Kind:         models.KindSubtotal,
				Description:  desc,
				Total:        formatCell(s.Cell(i, roles.Total)),
				PatientDebit: formatCell(s.Cell(i, roles.PatientDebit())),
			})
		case desc != "" && !qty.Present():
			items = append(items, models.LineItem{
				Kind:        models.KindCategoryHeader,
				Description: desc,
			})
		default:
			items = append(items, models.LineItem{
				Kind:          models.KindItem,
				Description:   desc,
				Qty:           formatCell(qty),
				Unit:          formatCell(s.Cell(i, roles.Unit)),
				Date:          dateText,
				Total:         formatCell(s.Cell(i, roles.Total)),
				Discount:      formatCell(s.Cell(i, roles.Discount)),
				PatientDebit:  formatCell(s.Cell(i, roles.PatientDebit())),
				PatientCredit: formatCell(s.Cell(i, roles.PatientCredit())),
				InsurerDebit:  formatCell(s.Cell(i, roles.InsurerDebit())),
				InsurerCredit: formatCell(s.Cell(i, roles.InsurerCredit())),
			})
		}
	}
	return items, total
}

// readGrandTotal resolves the terminator row's amounts. The patient portion
// reads the patient-debit column, falling back to the total column when
// that cell is empty or unparsable; the insurer portion is always the
// insurer-debit value.
func readGrandTotal(s *models.Sheet, row int, roles models.ColumnRoleMap) models.GrandTotal {
	patient := numericAt(s, row, roles.PatientDebit())
	if patient == 0 {
		patient = numericAt(s, row, roles.Total)
	}
	return models.GrandTotal{
		Patient: patient,
		Insurer: numericAt(s, row, roles.InsurerDebit()),
	}
}

// debitBlank reports whether a debit cell is absent or holds a parsed zero.
func debitBlank(s *models.Sheet, row, col int) bool {
	if col == models.NoColumn {
		return true
	}
	c := s.Cell(row, col)
	if !c.Present() {
		return true
	}
	v, ok := c.Float()
	return ok && v == 0
}

// numericAt reads a cell as a float, degrading to zero for absent columns
// and parse failures.
func numericAt(s *models.Sheet, row, col int) float64 {
	if col == models.NoColumn {
		return 0
	}
	v, ok := s.Cell(row, col).Float()
	if !ok {
		return 0
	}
	return v
}

// formatCell renders a cell for the item table: numeric values get exactly
// three decimal places, text passes through trimmed, absent cells are
// blank.
func formatCell(c models.Cell) string {
	if !c.Present() {
		return ""
	}
	if c.IsNumeric() {
		v, _ := c.Float()
		return fmt.Sprintf("%.3f", v)
	}
	return c.Text()
}
