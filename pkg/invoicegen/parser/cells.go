// Package parser implements the spreadsheet-to-invoice extraction engine:
// workbook loading, header location, column role mapping, metadata
// extraction and row classification.
package parser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

// LoadSheets reads every worksheet of the workbook at path into normalized
// Sheet grids. The reader is chosen by extension: .xls uses the legacy BIFF
// reader, everything else is treated as OOXML.
func LoadSheets(path string) ([]*models.Sheet, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return loadLegacySheets(path)
	}
	return loadSheets(path)
}

func loadSheets(path string) ([]*models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	var sheets []*models.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			// Unreadable sheet: keep an empty grid so the caller can report
			// it as skipped rather than failing the workbook.
			rows = nil
		}
		sheets = append(sheets, buildSheet(name, rows))
	}
	return sheets, nil
}

func loadLegacySheets(path string) ([]*models.Sheet, error) {
	wb, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open legacy workbook %s: %w", path, err)
	}

	var sheets []*models.Sheet
	for i := 0; i < wb.GetNumberSheets(); i++ {
		sheet, err := wb.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(sheet.GetNumberRows()); r++ {
			row, err := sheet.GetRow(r)
			if err != nil || row == nil {
				rows = append(rows, nil)
				continue
			}
			var cells []string
			for _, col := range row.GetCols() {
				if col != nil {
					cells = append(cells, col.GetString())
				} else {
					cells = append(cells, "")
				}
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, buildSheet(sheet.GetName(), rows))
	}
	return sheets, nil
}

func buildSheet(name string, rows [][]string) *models.Sheet {
	grid := make([][]models.Cell, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, v := range row {
			cells[j] = parseCellValue(v)
		}
		grid[i] = cells
	}
	return &models.Sheet{Name: name, Rows: grid}
}

// parseCellValue normalizes a formatted cell string into a typed Cell.
// Integers come back as int64, decimals as float64, everything else stays
// text.
func parseCellValue(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.NewCell(nil)
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return models.NewCell(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.NewCell(f)
	}
	return models.NewCell(s)
}
