package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetadataOffsetValue(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Invoice No", "", "", "12345"},
		[]any{"Description", "Qty"},
	)

	m := ExtractMetadata(s, 1, DefaultLookahead, DefaultBoilerplate())
	assert.Equal(t, "12345", m.InvoiceNo)
}

func TestExtractMetadataLabelAsValueGuard(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Invoice", "Invoice"},
		[]any{"Description", "Qty"},
	)

	m := ExtractMetadata(s, 1, DefaultLookahead, DefaultBoilerplate())
	assert.Empty(t, m.InvoiceNo)
}

func TestExtractMetadataSkipsJunkValues(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Patient Name", "nan", "-", "", "Ali Hassan"},
		[]any{"Description", "Qty"},
	)

	m := ExtractMetadata(s, 1, DefaultLookahead, DefaultBoilerplate())
	assert.Equal(t, "Ali Hassan", m.PatientName)
}

func TestExtractMetadataArabicKey(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"اسم المريض", "سارة محمد"},
		[]any{"تاريخ الدخول", "2024-01-01"},
		[]any{"Description", "Qty"},
	)

	m := ExtractMetadata(s, 2, DefaultLookahead, DefaultBoilerplate())
	assert.Equal(t, "سارة محمد", m.PatientName)
	assert.Equal(t, "2024-01-01", m.AdmissionDate)
}

func TestExtractMetadataFirstMatchWins(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Visit No", "V-1"},
		[]any{"Visit No", "V-2"},
		[]any{"Description", "Qty"},
	)

	m := ExtractMetadata(s, 2, DefaultLookahead, DefaultBoilerplate())
	assert.Equal(t, "V-1", m.VisitNo)
}

func TestExtractMetadataVATOverwritesDefault(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"VAT No", "999888777"},
		[]any{"Description", "Qty"},
	)

	seed := DefaultBoilerplate()
	m := ExtractMetadata(s, 1, DefaultLookahead, seed)
	assert.Equal(t, "999888777", m.VATNo)

	// Other seeded fields stay boilerplate.
	assert.Equal(t, seed.HospitalName, m.HospitalName)
	assert.Equal(t, seed.Address, m.Address)
}

func TestExtractMetadataDefaultsSurviveEmptySheet(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{nil, nil},
		[]any{"Description", "Qty"},
	)

	seed := DefaultBoilerplate()
	m := ExtractMetadata(s, 1, DefaultLookahead, seed)
	assert.Equal(t, seed.VATNo, m.VATNo)
	assert.Empty(t, m.PatientName)
	assert.Empty(t, m.InvoiceNo)
}

func TestExtractMetadataInsurerSelfPayGuard(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Insurer", "Patient"},
		[]any{"Insurer", "Allianz"},
		[]any{"Description", "Qty"},
	)

	m := ExtractMetadata(s, 2, DefaultLookahead, DefaultBoilerplate())
	assert.Equal(t, "Allianz", m.Insurer)
}

func TestExtractMetadataLookaheadBounded(t *testing.T) {
	row := make([]any, 25)
	row[0] = "File No"
	row[24] = "F-77" // beyond the window
	s := sheetOf("Sheet1",
		row,
		[]any{"Description", "Qty"},
	)

	m := ExtractMetadata(s, 1, DefaultLookahead, DefaultBoilerplate())
	assert.Empty(t, m.FileNo)
}

func TestExtractMetadataStopsAtPivot(t *testing.T) {
	s := sheetOf("Sheet1",
		[]any{"Description", "Qty"},
		[]any{"Patient Name", "Below Header"},
	)

	m := ExtractMetadata(s, 0, DefaultLookahead, DefaultBoilerplate())
	assert.Empty(t, m.PatientName)
}
