package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

// Brand palette.
var (
	colorRed      = [3]int{0xA6, 0x19, 0x2E}
	colorGrayBG   = [3]int{0xE0, 0xE0, 0xE0}
	colorDarkGray = [3]int{0xB0, 0xB0, 0xB0}
	colorBorder   = [3]int{0, 0, 0}
	colorText     = [3]int{51, 51, 51}
)

// Column widths of the item table in mm, left to right: Description, Qty,
// Unit, Date, Total, Discount, Patient Debit/Credit, Insurer Debit/Credit.
var itemColWidths = [10]float64{55, 12, 12, 22, 20, 15, 15, 15, 15, 15}

const (
	pageWidth  = 200.0 // A4 width minus margins
	rowHeight  = 5.0
	arabicTitle  = "فاتورة خروج مريض"
	refundNotice = "الاسترداد النقدى خلال 48 ساعة من أداء الخدمة من 9ص الى 3م عدا الجمعة والعطلات"
)

// Renderer draws invoice records as A4 PDF documents. The font handle is
// resolved once and shared; Renderer itself is safe for concurrent use.
type Renderer struct {
	Font      Font
	LogoPath  string
	UserLabel string
	Log       zerolog.Logger
}

// NewRenderer creates a renderer with the given font configuration.
func NewRenderer(font Font, logoPath string, log zerolog.Logger) *Renderer {
	return &Renderer{
		Font:      font,
		LogoPath:  logoPath,
		UserLabel: "User: Ahmed Essam",
		Log:       log,
	}
}

// Render writes the PDF document for rec to w.
func (r *Renderer) Render(rec *models.InvoiceRecord, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+rec.SheetName, true)
	pdf.SetMargins(5, 5, 5)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")

	family := r.Font.Family
	text := func(s string) string { return s }
	if r.Font.Unicode {
		pdf.AddUTF8Font(family, "", r.Font.Path)
		// The same file backs the bold face so Arabic survives bold runs.
		pdf.AddUTF8Font(family, "B", r.Font.Path)
		text = shapeText
	} else {
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		text = func(s string) string { return tr(s) }
		r.Log.Warn().Msg("unicode font not found, arabic text will not render correctly")
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-16)
		r.fillRect(pdf, pageWidth, 0.7, colorRed)
		pdf.Ln(1.5)
		pdf.SetFont(family, "", 8)
		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
		pdf.CellFormat(50, 4, r.UserLabel, "", 0, "L", false, 0, "")
		pdf.CellFormat(100, 4, text(refundNotice), "", 0, "C", false, 0, "")
		pdf.CellFormat(40, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	r.drawHeaderBand(pdf, family, text, &rec.Metadata)
	r.drawMetadataGrid(pdf, family, text, &rec.Metadata)
	r.drawItemTable(pdf, family, text, rec)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render invoice %s: %w", rec.ID(), err)
	}
	return nil
}

// RenderFile renders to path, creating the file.
func (r *Renderer) RenderFile(rec *models.InvoiceRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Render(rec, f)
}

func (r *Renderer) fillRect(pdf *fpdf.Fpdf, w, h float64, rgb [3]int) {
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	pdf.Rect(pdf.GetX(), pdf.GetY(), w, h, "F")
}

// drawHeaderBand lays out hospital name, centered logo and VAT/address,
// then the red divider and the bilingual title bar.
func (r *Renderer) drawHeaderBand(pdf *fpdf.Fpdf, family string, text func(string) string, meta *models.Metadata) {
	top := pdf.GetY()
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont(family, "B", 10)
	pdf.CellFormat(60, 6, meta.HospitalName, "", 0, "L", false, 0, "")

	if r.LogoPath != "" {
		if _, err := os.Stat(r.LogoPath); err == nil {
			pdf.ImageOptions(r.LogoPath, 85, top, 40, 0, false, fpdf.ImageOptions{}, 0, "")
		}
	}

	pdf.SetX(135)
	pdf.SetFont(family, "", 9)
	pdf.CellFormat(70, 5, "VAT No: "+meta.VATNo, "", 2, "R", false, 0, "")
	pdf.CellFormat(70, 5, text(meta.Address), "", 0, "R", false, 0, "")
	pdf.SetY(top + 22)

	r.fillRect(pdf, pageWidth, 1, colorRed)
	pdf.Ln(3)

	pdf.SetFont(family, "", 12)
	pdf.CellFormat(pageWidth, 7, "DISCHARGE INVOICE       "+text(arabicTitle), "", 1, "C", false, 0, "")
	pdf.Ln(1)
}

// metadata grid layout: [eng label, value, arabic label] twice per row with
// a spacer column, all inside one outer box.
func (r *Renderer) drawMetadataGrid(pdf *fpdf.Fpdf, family string, text func(string) string, meta *models.Metadata) {
	type cell struct{ eng, val, arb string }
	rows := [][2]cell{
		{{"Invoice", meta.InvoiceNo, "رقم الفاتورة"}, {"Visit", meta.VisitNo, "رقم الزيارة"}},
		{{"Date of Admission", meta.AdmissionDate, "تاريخ الدخول"}, {"Date of Discharge", meta.DischargeDate, "تاريخ الخروج"}},
		{{"Patient Name", meta.PatientName, "اسم المريض"}, {"File No", meta.FileNo, "رقم ملف المريض"}},
		{{"Insurance Card", meta.InsurerCard, ""}, {"Nationality", meta.Nationality, "الجنسية"}},
		{{"Insurer", meta.Insurer, "المؤمن"}, {"Contract", meta.Contract, "العقد"}},
		{{"Physician", meta.Physician, "الطبيب المعالج"}, {"Department", meta.Department, "القسم"}},
		{{"Room No.", meta.RoomNo, "رقم الغرفة"}, {"", "", ""}},
	}
	widths := []float64{25, 50, 20, 5, 25, 50, 20}

	boxTop := pdf.GetY()
	for _, row := range rows {
		for side, c := range row {
			pdf.SetFont(family, "B", 8)
			pdf.CellFormat(widths[0], rowHeight, c.eng, "", 0, "L", false, 0, "")
			pdf.SetFont(family, "", 8)
			pdf.CellFormat(widths[1], rowHeight, text(models.Display(c.val)), "", 0, "L", false, 0, "")
			pdf.CellFormat(widths[2], rowHeight, text(c.arb), "", 0, "R", false, 0, "")
			if side == 0 {
				pdf.CellFormat(widths[3], rowHeight, "", "", 0, "L", false, 0, "")
			}
		}
		pdf.Ln(rowHeight)
	}
	pdf.SetDrawColor(colorBorder[0], colorBorder[1], colorBorder[2])
	pdf.SetLineWidth(0.3)
	pdf.Rect(5, boxTop, pageWidth-5, pdf.GetY()-boxTop, "D")
	pdf.Ln(4)
}

func (r *Renderer) drawItemTable(pdf *fpdf.Fpdf, family string, text func(string) string, rec *models.InvoiceRecord) {
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)

	// Super header: patient and insurer each span their debit/credit pair.
	pdf.SetFont(family, "B", 8)
	pdf.SetFillColor(colorGrayBG[0], colorGrayBG[1], colorGrayBG[2])
	var lead float64
	for i := 0; i < 6; i++ {
		lead += itemColWidths[i]
	}
	pdf.CellFormat(lead, rowHeight, "", "1", 0, "C", true, 0, "")
	pdf.CellFormat(itemColWidths[6]+itemColWidths[7], rowHeight, "Patient", "1", 0, "C", true, 0, "")
	pdf.CellFormat(itemColWidths[8]+itemColWidths[9], rowHeight, "Insurer", "1", 1, "C", true, 0, "")

	headers := [10]string{"Description", "Qty", "Unit", "Date", "Total", "Discount", "Debit", "Credit", "Debit", "Credit"}
	for i, h := range headers {
		last := 0
		if i == len(headers)-1 {
			last = 1
		}
		pdf.CellFormat(itemColWidths[i], rowHeight, h, "1", last, "C", true, 0, "")
	}

	for _, item := range rec.Items {
		switch item.Kind {
		case models.KindSubtotal:
			pdf.SetFont(family, "B", 8)
			r.rowCells(pdf, text, [10]string{item.Description, "", "", "", item.Total, "", item.PatientDebit, "", "", ""}, true)
		case models.KindCategoryHeader:
			pdf.SetFont(family, "B", 8)
			r.rowCells(pdf, text, [10]string{item.Description}, true)
		default:
			pdf.SetFont(family, "", 8)
			r.rowCells(pdf, text, [10]string{
				item.Description, item.Qty, item.Unit, item.Date, item.Total,
				item.Discount, item.PatientDebit, item.PatientCredit,
				item.InsurerDebit, item.InsurerCredit,
			}, false)
		}
	}

	// Grand total row: label spans the first five columns, the amount lands
	// in the discount and patient-debit positions.
	amount := GrandTotalAmount(rec.GrandTotal.Patient)
	pdf.SetFont(family, "B", 9)
	pdf.SetFillColor(colorDarkGray[0], colorDarkGray[1], colorDarkGray[2])
	var span float64
	for i := 0; i < 5; i++ {
		span += itemColWidths[i]
	}
	pdf.CellFormat(span, rowHeight+1, "Grand Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(itemColWidths[5], rowHeight+1, amount, "1", 0, "C", true, 0, "")
	pdf.CellFormat(itemColWidths[6], rowHeight+1, amount, "1", 0, "C", true, 0, "")
	pdf.CellFormat(itemColWidths[7], rowHeight+1, "", "1", 0, "C", true, 0, "")
	pdf.CellFormat(itemColWidths[8], rowHeight+1, GrandTotalAmount(rec.GrandTotal.Insurer), "1", 0, "C", true, 0, "")
	pdf.CellFormat(itemColWidths[9], rowHeight+1, "", "1", 1, "C", true, 0, "")
}

// rowCells draws one 10-column body row; shaded rows get the gray fill
// used for category headers and subtotals.
func (r *Renderer) rowCells(pdf *fpdf.Fpdf, text func(string) string, cells [10]string, shaded bool) {
	if shaded {
		pdf.SetFillColor(colorGrayBG[0], colorGrayBG[1], colorGrayBG[2])
	}
	for i, v := range cells {
		align := "C"
		if i == 0 {
			align = "L"
		}
		last := 0
		if i == len(cells)-1 {
			last = 1
		}
		pdf.CellFormat(itemColWidths[i], rowHeight, text(v), "1", last, align, shaded, 0, "")
	}
}
