package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/render"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/store"
)

// dashboardRow is the summary view of one stored invoice.
type dashboardRow struct {
	ID          string `json:"id"`
	InvoiceNo   string `json:"invoice_no"`
	PatientName string `json:"patient_name"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Sheet       string `json:"sheet"`
}

// handleUpload accepts a multipart workbook, processes every sheet and
// reports per-sheet outcomes. Re-uploading a sheet replaces its record.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if file.Size > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .xlsx and .xls files are supported"})
		return
	}

	tmp := filepath.Join(os.TempDir(), "upload-"+uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save upload"})
		return
	}
	defer os.Remove(tmp)

	summary, err := s.proc.ProcessWorkbook(tmp)
	if err != nil {
		s.log.Error().Err(err).Str("file", file.Filename).Msg("workbook processing failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleList(c *gin.Context) {
	records, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rows := make([]dashboardRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, dashboardRow{
			ID:          rec.ID,
			InvoiceNo:   models.Display(rec.Metadata.InvoiceNo),
			PatientName: models.Display(rec.Metadata.PatientName),
			Amount:      render.SummaryAmount(rec.GrandTotal.Patient),
			Date:        models.Display(rec.Metadata.AdmissionDate),
			Sheet:       rec.SheetName,
		})
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) handleGet(c *gin.Context) {
	rec, ok, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleDownloadPDF(c *gin.Context) {
	rec, ok, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	if _, err := os.Stat(rec.PDFPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pdf not found, re-upload to regenerate"})
		return
	}
	c.FileAttachment(rec.PDFPath, filepath.Base(rec.PDFPath))
}

// handleArchive streams a ZIP of every stored invoice document.
func (s *Server) handleArchive(c *gin.Context) {
	records, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", `attachment; filename="all_invoices.zip"`)
	if err := store.BundlePDFs(records, c.Writer); err != nil {
		s.log.Error().Err(err).Msg("zip bundling failed")
	}
}

func (s *Server) handleClear(c *gin.Context) {
	if err := s.store.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
