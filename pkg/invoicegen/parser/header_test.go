package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

// sheetOf builds a Sheet from raw row values for test setup.
func sheetOf(name string, rows ...[]any) *models.Sheet {
	grid := make([][]models.Cell, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, v := range row {
			cells[j] = models.NewCell(v)
		}
		grid[i] = cells
	}
	return &models.Sheet{Name: name, Rows: grid}
}

func TestFindHeaderRow(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Hospital", nil, "Something"},
		[]any{"Patient Name", "", "Ali"},
		[]any{"  DESCRIPTION ", "Qty", "Unit"},
		[]any{"Description", "Qty"}, // later duplicate must lose
	)

	pivot, ok := FindHeaderRow(s)
	assert.True(t, ok)
	assert.Equal(t, 2, pivot)
}

func TestFindHeaderRowUnitOnly(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Description", "Unit", "Total"},
	)

	pivot, ok := FindHeaderRow(s)
	assert.True(t, ok)
	assert.Equal(t, 0, pivot)
}

func TestFindHeaderRowRequiresCompanion(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Description", "Total"}, // no qty/unit
		[]any{"Qty", "Unit"},          // no description
	)

	_, ok := FindHeaderRow(s)
	assert.False(t, ok)
}

func TestMapColumnRolesFullHeader(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Description", "Qty", "Unit", "Date", "Total", "Discount", "Debit", "Credit", "Debit", "Credit"},
	)

	m := MapColumnRoles(s, 0)

	assert.Equal(t, 0, m.Description)
	assert.Equal(t, 1, m.Qty)
	assert.Equal(t, 2, m.Unit)
	assert.Equal(t, 3, m.Date)
	assert.Equal(t, 4, m.Total)
	assert.Equal(t, 5, m.Discount)
	assert.Equal(t, 6, m.PatientDebit())
	assert.Equal(t, 7, m.PatientCredit())
	assert.Equal(t, 8, m.InsurerDebit())
	assert.Equal(t, 9, m.InsurerCredit())
}

func TestMapColumnRolesSingleDebitPair(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Description", "Qty", "Debit", "Credit"},
	)

	m := MapColumnRoles(s, 0)

	assert.Equal(t, 2, m.PatientDebit())
	assert.Equal(t, 3, m.PatientCredit())
	assert.Equal(t, models.NoColumn, m.InsurerDebit())
	assert.Equal(t, models.NoColumn, m.InsurerCredit())
	assert.Equal(t, models.NoColumn, m.Total)
}

func TestMapColumnRolesExclusions(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Admission Date", "Grand Total", "Date", "Total"},
	)

	m := MapColumnRoles(s, 0)

	// "Admission Date" is a metadata label, "Grand Total" the terminator
	// label; neither claims a role.
	assert.Equal(t, 2, m.Date)
	assert.Equal(t, 3, m.Total)
}

func TestMapColumnRolesPrecedence(t *testing.T) {
	// "Total Discount" carries two trigger words; the observed precedence
	// assigns Total, not Discount.
	s := sheetOf("Sheet1",
		[]any{"Description", "Qty", "Total Discount"},
	)

	m := MapColumnRoles(s, 0)

	assert.Equal(t, 2, m.Total)
	assert.Equal(t, models.NoColumn, m.Discount)
}

func TestMapColumnRolesFirstMatchWins(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Description", "Description (Arabic)", "Qty"},
	)

	m := MapColumnRoles(s, 0)
	assert.Equal(t, 0, m.Description)
}
