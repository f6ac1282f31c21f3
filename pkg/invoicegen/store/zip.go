package store

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BundlePDFs writes a ZIP archive of every record's generated document to
// w. Records whose file is missing on disk are skipped, matching the
// dashboard's best-effort bulk download.
func BundlePDFs(records []Record, w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, rec := range records {
		if rec.PDFPath == "" {
			continue
		}
		f, err := os.Open(rec.PDFPath)
		if err != nil {
			continue
		}
		entry, err := zw.Create(filepath.Base(rec.PDFPath))
		if err != nil {
			f.Close()
			return fmt.Errorf("create zip entry for %s: %w", rec.ID, err)
		}
		if _, err := io.Copy(entry, f); err != nil {
			f.Close()
			return fmt.Errorf("write zip entry for %s: %w", rec.ID, err)
		}
		f.Close()
	}
	return zw.Close()
}
