package invoicegen

import (
	"errors"
	"fmt"
)

// ErrHeaderNotFound indicates a sheet has no item-table header row. It is
// the only per-sheet fatal condition: the sheet is skipped and the batch
// continues.
var ErrHeaderNotFound = errors.New("item table header not found")

// ErrNoSheets indicates the workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ExtractionError represents an error during extraction of one sheet.
type ExtractionError struct {
	SheetName string
	Stage     string // "load", "header", "render"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, stage string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
