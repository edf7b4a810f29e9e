// Package units converts dashboard pixel units to spreadsheet units.
package units

import (
	"math"
)

// PixelsPerInch is the canvas DPI assumed by dashboard layouts.
const PixelsPerInch = 96

// pixels per one column-width unit, rough baseline for default fonts
const pixelsPerColWidth = 7.2

// PxToInches converts pixel units to inches at 96 DPI.
func PxToInches(px int) float64 {
	return float64(px) / PixelsPerInch
}

// PxToColWidth converts a pixel width to a column width, rounded to
// one decimal and clamped to a minimum of 3.
func PxToColWidth(px int) float64 {
	w := math.Round(float64(px)/pixelsPerColWidth*10) / 10
	if w < 3 {
		return 3
	}
	return w
}
