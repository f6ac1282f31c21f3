package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceRecordID(t *testing.T) {
	rec := &InvoiceRecord{
		SheetName: "Sheet7",
		Metadata:  Metadata{InvoiceNo: "12345"},
	}
	assert.Equal(t, "Sheet7_12345", rec.ID())
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
		want string
	}{
		{"visit preferred", Metadata{VisitNo: "V-9", InvoiceNo: "12345"}, "Visit_V-9"},
		{"invoice fallback", Metadata{InvoiceNo: "12345"}, "Invoice_12345"},
		{"placeholder visit ignored", Metadata{VisitNo: "-", InvoiceNo: "12345"}, "Invoice_12345"},
		{"unknown", Metadata{}, "Unknown_Sheet_Sheet7"},
		{"path separators cleaned", Metadata{VisitNo: "2024/01\\A"}, "Visit_2024-01-A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &InvoiceRecord{SheetName: "Sheet7", Metadata: tt.meta}
			assert.Equal(t, tt.want, rec.FileBase())
		})
	}
}
