// Package store persists invoice records in a flat JSON file and bundles
// their generated documents for bulk download.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

// Record is one stored invoice: the extraction output tagged with its
// derived identifier and the generated document path.
type Record struct {
	ID         string            `json:"id"`
	SheetName  string            `json:"sheet_name"`
	Metadata   models.Metadata   `json:"metadata"`
	GrandTotal models.GrandTotal `json:"grand_total"`
	PDFPath    string            `json:"pdf_path"`
}

// Store is a whole-file read-modify-write JSON store. Writes serialize on
// an internal mutex so re-processing a sheet replaces its record atomically
// (at most one writer per identifier).
type Store struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// Open returns a store backed by the JSON file at path. The file is
// created on first save; a missing or corrupt file reads as empty.
func Open(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// List returns every stored record in file order.
func (s *Store) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get looks up a record by id.
func (s *Store) Get(id string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return Record{}, false, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return Record{}, false, nil
}

// Put inserts rec, replacing any existing record with the same id.
func (s *Store) Put(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return err
	}
	out := records[:0]
	for _, r := range records {
		if r.ID != rec.ID {
			out = append(out, r)
		}
	}
	out = append(out, rec)
	return s.save(out)
}

// Clear removes every record. Generated documents on disk are left alone.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save([]Record{})
}

func (s *Store) load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Matches the original behavior: an unreadable store loads empty
		// rather than blocking all processing.
		s.log.Warn().Err(err).Str("path", s.path).Msg("store file corrupt, starting empty")
		return nil, nil
	}
	return records, nil
}

// save writes the whole store through a temp file and rename so readers
// never observe a partial file.
func (s *Store) save(records []Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".invoices-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
