package parser

import (
	"strings"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

// DefaultLookahead is the number of cells scanned to the right of a matched
// key phrase when searching for its value. Wide merged-cell layouts can put
// the value far from the label, so the window is generous but bounded.
const DefaultLookahead = 19

// Boilerplate seeds the metadata fields an invoice must always render,
// even when the sheet never states them.
type Boilerplate struct {
	HospitalName string
	Address      string
	VATNo        string
}

// DefaultBoilerplate returns the issuing hospital's letterhead values.
func DefaultBoilerplate() Boilerplate {
	return Boilerplate{
		HospitalName: "Andalusia Hospitals Smouha",
		Address:      "35 Bahaa El Din Ghatoury St, Smouha, Alexandria",
		VATNo:        "202471187",
	}
}

// metadataKey binds one metadata field to its bilingual key phrases. accept
// may veto a candidate value (label-echo guards); nil accepts everything.
// reseedable marks the one field whose seeded boilerplate value may still
// be replaced by a value found on the sheet.
type metadataKey struct {
	field      func(*models.Metadata) *string
	phrases    []string
	accept     func(string) bool
	reseedable bool
}

var metadataKeys = []metadataKey{
	{
		field:   func(m *models.Metadata) *string { return &m.PatientName },
		phrases: []string{"patient name", "اسم المريض"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.InvoiceNo },
		phrases: []string{"invoice", "رقم الفاتورة"},
		// The label row often repeats "Invoice"; a value echoing the label
		// is not an invoice number.
		accept: func(v string) bool { return !strings.Contains(strings.ToLower(v), "invoice") },
	},
	{
		field:   func(m *models.Metadata) *string { return &m.VisitNo },
		phrases: []string{"visit", "رقم الزيارة"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.FileNo },
		phrases: []string{"file no", "رقم الملف", "file number"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.Physician },
		phrases: []string{"physician", "doctor", "الطبيب"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.AdmissionDate },
		phrases: []string{"date of admission", "admission date", "تاريخ الدخول"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.DischargeDate },
		phrases: []string{"date of discharge", "discharge date", "تاريخ الخروج"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.Insurer },
		phrases: []string{"insurer", "المؤمن"},
		// "Patient" in the insurer slot means self-pay, not an insurer.
		accept: func(v string) bool { return !strings.EqualFold(v, "patient") },
	},
	{
		field:   func(m *models.Metadata) *string { return &m.Nationality },
		phrases: []string{"nationality", "الجنسية"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.Contract },
		phrases: []string{"contract", "العقد"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.Department },
		phrases: []string{"department", "القسم"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.InsurerCard },
		phrases: []string{"insurance card", "insurer card", "بطاقة التأمين"},
	},
	{
		field:   func(m *models.Metadata) *string { return &m.RoomNo },
		phrases: []string{"room no", "رقم الغرفة"},
	},
	{
		field:      func(m *models.Metadata) *string { return &m.VATNo },
		phrases:    []string{"vat no", "tax id", "registration no", "التسجيل الضريبي"},
		reseedable: true,
	},
}

// ExtractMetadata scans the rows above the pivot for bilingual key phrases
// and records the nearest plausible value within the lookahead window.
// Every field is write-once except VAT No, which may replace the seeded
// boilerplate value if the sheet states its own. Malformed rows cannot fail
// extraction; absence is the only outcome.
func ExtractMetadata(s *models.Sheet, pivot, lookahead int, seed Boilerplate) models.Metadata {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	m := models.Metadata{
		HospitalName: seed.HospitalName,
		Address:      seed.Address,
		VATNo:        seed.VATNo,
	}
	if pivot > s.RowCount() {
		pivot = s.RowCount()
	}

	for i := 0; i < pivot; i++ {
		row := rowText(s, i)
		for _, key := range metadataKeys {
			cur := key.field(&m)
			resolved := *cur != ""
			if key.reseedable && *cur == seed.VATNo {
				resolved = false
			}
			if resolved {
				continue
			}
			v, ok := findValue(row, key.phrases, lookahead)
			if !ok {
				continue
			}
			if key.accept != nil && !key.accept(v) {
				continue
			}
			*cur = v
		}
	}
	return m
}

// findValue locates the first cell containing any key phrase and returns
// the first usable value within the lookahead window after it.
func findValue(row []string, phrases []string, lookahead int) (string, bool) {
	for k, cell := range row {
		lower := strings.ToLower(cell)
		for _, phrase := range phrases {
			if !strings.Contains(lower, strings.ToLower(phrase)) {
				continue
			}
			for off := 1; off <= lookahead && k+off < len(row); off++ {
				if v := row[k+off]; usableValue(v) {
					return v, true
				}
			}
		}
	}
	return "", false
}

// usableValue rejects blanks, the literal "nan" a float-typed empty cell
// degrades to, and the lone "-" placeholder.
func usableValue(v string) bool {
	if v == "" || v == models.Placeholder {
		return false
	}
	return !strings.EqualFold(v, "nan")
}

func rowText(s *models.Sheet, row int) []string {
	cells := s.Rows[row]
	out := make([]string, len(cells))
	for j, c := range cells {
		out[j] = c.Text()
	}
	return out
}
