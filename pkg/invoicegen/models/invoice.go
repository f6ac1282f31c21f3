package models

import "strings"

// LineKind tags the structural role of a table row.
type LineKind int

const (
	// KindItem is a standard billable line with the full numeric field set.
	KindItem LineKind = iota
	// KindCategoryHeader is a section label row (description, no quantity);
	// rendered with a shaded background.
	KindCategoryHeader
	// KindSubtotal is a per-section total row; carries description plus the
	// section's total and patient-debit amounts.
	KindSubtotal
)

// LineItem is one classified row of the item table. Field values are
// display-ready: numeric cells are formatted to three decimal places,
// text cells pass through trimmed.
type LineItem struct {
	Kind          LineKind `json:"kind"`
	Description   string   `json:"description"`
	Qty           string   `json:"qty,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	Date          string   `json:"date,omitempty"`
	Total         string   `json:"total,omitempty"`
	Discount      string   `json:"discount,omitempty"`
	PatientDebit  string   `json:"patient_debit,omitempty"`
	PatientCredit string   `json:"patient_credit,omitempty"`
	InsurerDebit  string   `json:"insurer_debit,omitempty"`
	InsurerCredit string   `json:"insurer_credit,omitempty"`
}

// GrandTotal carries the final amounts read from the terminator row.
type GrandTotal struct {
	// Patient is the patient's portion.
	Patient float64 `json:"patient"`
	// Insurer is the insurer's portion.
	Insurer float64 `json:"insurer"`
}

// InvoiceRecord is the assembled extraction output for one sheet: metadata,
// the ordered line-item sequence, and the grand total. It is the unit
// consumed by rendering and storage.
type InvoiceRecord struct {
	// SheetName identifies the source worksheet.
	SheetName string `json:"sheet_name"`
	// Metadata holds the labeled fields from the pre-header region.
	Metadata Metadata `json:"metadata"`
	// Items is the classified line-item sequence in sheet order, ending at
	// the first grand-total terminator.
	Items []LineItem `json:"items"`
	// GrandTotal is the final patient/insurer amounts.
	GrandTotal GrandTotal `json:"grand_total"`
}

// ID derives the storage identifier: "<sheet name>_<invoice no>".
func (r *InvoiceRecord) ID() string {
	return r.SheetName + "_" + r.Metadata.InvoiceNo
}

// FileBase derives the output file base name. Visit No is preferred, then
// Invoice No, then the sheet name; path separators become dashes so the
// result is always a single path element.
func (r *InvoiceRecord) FileBase() string {
	var base string
	switch {
	case r.Metadata.VisitNo != "" && r.Metadata.VisitNo != Placeholder:
		base = "Visit_" + r.Metadata.VisitNo
	case r.Metadata.InvoiceNo != "" && r.Metadata.InvoiceNo != Placeholder:
		base = "Invoice_" + r.Metadata.InvoiceNo
	default:
		base = "Unknown_Sheet_" + r.SheetName
	}
	base = strings.ReplaceAll(base, "/", "-")
	base = strings.ReplaceAll(base, "\\", "-")
	return base
}
