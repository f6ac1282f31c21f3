package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellPresent(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		present bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"whitespace only", "   ", false},
		{"text", "Room Fee", true},
		{"zero number", 0.0, true},
		{"NaN", math.NaN(), false},
		{"integer", 42, true},
		{"unsupported kind", []string{"x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.present, NewCell(tt.value).Present())
		})
	}
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "Room Fee", NewCell("  Room Fee  ").Text())
	assert.Equal(t, "100.5", NewCell(100.5).Text())
	assert.Equal(t, "100", NewCell(int64(100)).Text())
	assert.Equal(t, "", NewCell(math.NaN()).Text())
	assert.Equal(t, "", NewCell(nil).Text())
}

func TestCellFloat(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"float", 80.5, 80.5, true},
		{"int", 7, 7, true},
		{"numeric string", "123.45", 123.45, true},
		{"thousands separators", "1,234,567.89", 1234567.89, true},
		{"padded numeric string", " 100 ", 100, true},
		{"text", "Medical Services", 0, false},
		{"empty", "", 0, false},
		{"NaN", math.NaN(), 0, false},
		{"absent", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewCell(tt.value).Float()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSheetCellOutOfRange(t *testing.T) {
	s := &Sheet{Name: "Sheet1", Rows: [][]Cell{{NewCell("a")}}}

	assert.Equal(t, "a", s.Cell(0, 0).Text())
	assert.False(t, s.Cell(0, 5).Present())
	assert.False(t, s.Cell(3, 0).Present())
	assert.False(t, s.Cell(-1, -1).Present())
}
