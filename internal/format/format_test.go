package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashgrid/go-exporter/internal/format"
)

func TestNumberFormat(t *testing.T) {
	f, ok := format.NumberFormat(format.Currency)
	assert.True(t, ok)
	assert.Equal(t, `"$"#,##0.00`, f)

	f, ok = format.NumberFormat(format.Number2)
	assert.True(t, ok)
	assert.Equal(t, `#,##0.00`, f)

	f, ok = format.NumberFormat(format.Date)
	assert.True(t, ok)
	assert.Equal(t, `mm/dd/yyyy`, f)

	_, ok = format.NumberFormat("upper")
	assert.False(t, ok)
}

func TestPaperSize(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"letter", 1},
		{"Letter", 1},
		{"legal", 5},
		{"a4", 9},
		{"A3", 8},
		{"", 1},
		{"tabloid", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, format.PaperSize(tt.name), tt.name)
	}
}
