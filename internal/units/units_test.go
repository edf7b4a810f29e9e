package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashgrid/go-exporter/internal/units"
)

func TestPxToInches(t *testing.T) {
	assert.Equal(t, 1.0, units.PxToInches(96))
	assert.Equal(t, 0.5, units.PxToInches(48))
	assert.Equal(t, 0.0, units.PxToInches(0))
}

func TestPxToColWidth(t *testing.T) {
	tests := []struct {
		px       int
		expected float64
	}{
		{100, 13.9},
		{80, 11.1},
		{0, 3},
		{10, 3},
		{72, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, units.PxToColWidth(tt.px))
	}
}
