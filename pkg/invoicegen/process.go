package invoicegen

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/render"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/store"
)

// Processor runs the full pipeline for a workbook: extract each sheet,
// render its document into OutputDir, and persist the record. Failures are
// isolated per sheet; one bad sheet never aborts the batch.
type Processor struct {
	Opts      Options
	Renderer  *render.Renderer
	Store     *store.Store
	OutputDir string
	Log       zerolog.Logger
}

// Summary reports the outcome of one workbook run.
type Summary struct {
	// Processed counts sheets stored with a generated document.
	Processed int `json:"processed"`
	// Skipped names sheets with no locatable item table.
	Skipped []string `json:"skipped,omitempty"`
	// Failed names sheets whose document could not be rendered.
	Failed []string `json:"failed,omitempty"`
}

// ProcessWorkbook extracts, renders and stores every sheet of the workbook
// at path. Re-processing a sheet replaces its prior record.
func (p *Processor) ProcessWorkbook(path string) (*Summary, error) {
	result, err := ExtractWorkbook(path, p.Opts, p.Log)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return nil, err
	}

	summary := &Summary{Skipped: result.Skipped}
	for _, rec := range result.Records {
		pdfPath := filepath.Join(p.OutputDir, rec.FileBase()+".pdf")
		if err := p.Renderer.RenderFile(rec, pdfPath); err != nil {
			p.Log.Error().Err(err).Str("sheet", rec.SheetName).Msg("rendering failed, output omitted")
			summary.Failed = append(summary.Failed, rec.SheetName)
			continue
		}
		if err := p.Store.Put(store.Record{
			ID:         rec.ID(),
			SheetName:  rec.SheetName,
			Metadata:   rec.Metadata,
			GrandTotal: rec.GrandTotal,
			PDFPath:    pdfPath,
		}); err != nil {
			return summary, err
		}
		summary.Processed++
		p.Log.Info().Str("sheet", rec.SheetName).Str("pdf", pdfPath).Msg("generated invoice")
	}
	return summary, nil
}
