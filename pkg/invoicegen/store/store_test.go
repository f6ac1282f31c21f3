package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "invoices_db.json"), zerolog.Nop())
}

func record(id, sheet string) Record {
	return Record{
		ID:         id,
		SheetName:  sheet,
		Metadata:   models.Metadata{InvoiceNo: "12345", PatientName: "Ali"},
		GrandTotal: models.GrandTotal{Patient: 80, Insurer: 20},
		PDFPath:    "invoices/Invoice_12345.pdf",
	}
}

func TestStoreEmptyOnMissingFile(t *testing.T) {
	s := testStore(t)

	records, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStorePutAndGet(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Put(record("Sheet1_12345", "Sheet1")))

	rec, ok, err := s.Get("Sheet1_12345")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Sheet1", rec.SheetName)
	assert.Equal(t, 80.0, rec.GrandTotal.Patient)

	_, ok, err = s.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorePutReplacesSameID(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Put(record("Sheet1_12345", "Sheet1")))

	updated := record("Sheet1_12345", "Sheet1")
	updated.GrandTotal.Patient = 999
	require.NoError(t, s.Put(updated))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 999.0, records[0].GrandTotal.Patient)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices_db.json")
	s := Open(path, zerolog.Nop())
	require.NoError(t, s.Put(record("Sheet1_12345", "Sheet1")))

	reopened := Open(path, zerolog.Nop())
	records, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Sheet1_12345", records[0].ID)
}

func TestStoreClear(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Put(record("a", "A")))
	require.NoError(t, s.Put(record("b", "B")))

	require.NoError(t, s.Clear())

	records, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStoreCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices_db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path, zerolog.Nop())
	records, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	// The store recovers: subsequent writes succeed.
	require.NoError(t, s.Put(record("a", "A")))
	records, err = s.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
