package invoicegen

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/parser"
)

// WorkbookResult holds the per-sheet outcomes of one workbook extraction.
type WorkbookResult struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Records are the invoice records of every sheet that had an item table.
	Records []*models.InvoiceRecord
	// Skipped names the sheets with no locatable item table.
	Skipped []string
}

// ExtractWorkbook loads every sheet of the workbook at path and extracts an
// invoice record from each. Sheets without an item-table header are skipped
// and reported in the result; only workbook-level failures return an error.
func ExtractWorkbook(path string, opts Options, log zerolog.Logger) (*WorkbookResult, error) {
	sheets, err := parser.LoadSheets(path)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	result := &WorkbookResult{BookName: filepath.Base(path)}
	for _, sheet := range sheets {
		rec, err := ExtractSheet(sheet, opts)
		if err != nil {
			log.Warn().Str("sheet", sheet.Name).Msg("skipping sheet: could not find item table")
			result.Skipped = append(result.Skipped, sheet.Name)
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

// ExtractSheet runs the single-pass extraction over one sheet: locate the
// header pivot, map column roles, scrape the pre-header metadata region and
// build the classified line-item table. Returns ErrHeaderNotFound (wrapped)
// when the sheet has no item table.
func ExtractSheet(sheet *models.Sheet, opts Options) (*models.InvoiceRecord, error) {
	pivot, ok := parser.FindHeaderRow(sheet)
	if !ok {
		return nil, NewExtractionError(sheet.Name, "header", ErrHeaderNotFound)
	}

	roles := parser.MapColumnRoles(sheet, pivot)
	meta := parser.ExtractMetadata(sheet, pivot, opts.LookaheadWindow, opts.Boilerplate)
	items, total := parser.BuildLineItems(sheet, pivot, roles, opts.MaxItemRows)

	return &models.InvoiceRecord{
		SheetName:  sheet.Name,
		Metadata:   meta,
		Items:      items,
		GrandTotal: total,
	}, nil
}
