package models

// Placeholder is rendered for metadata fields that were never resolved.
const Placeholder = "-"

// Metadata is the fixed-schema set of labeled fields scraped from the rows
// above the item-table header. Fields are write-once during extraction
// (VAT No excepted, see parser.ExtractMetadata); unset fields stay "" and
// display as the "-" placeholder.
type Metadata struct {
	HospitalName  string `json:"hospital_name"`
	Address       string `json:"address"`
	VATNo         string `json:"vat_no"`
	PatientName   string `json:"patient_name"`
	InvoiceNo     string `json:"invoice_no"`
	VisitNo       string `json:"visit_no"`
	FileNo        string `json:"file_no"`
	Physician     string `json:"physician"`
	AdmissionDate string `json:"admission_date"`
	DischargeDate string `json:"discharge_date"`
	Insurer       string `json:"insurer"`
	Nationality   string `json:"nationality"`
	Contract      string `json:"contract"`
	Department    string `json:"department"`
	InsurerCard   string `json:"insurer_card"`
	RoomNo        string `json:"room_no"`
}

// Display returns v, or the "-" placeholder when v is empty.
func Display(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
