package compiler

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dashgrid/go-exporter/internal/format"
	"github.com/dashgrid/go-exporter/internal/layout"
	"github.com/dashgrid/go-exporter/internal/units"
)

const (
	orientationPortrait  = "portrait"
	orientationLandscape = "landscape"

	defaultMarginPx = 40
)

func pageSetup(f *excelize.File, sheet string, page layout.Page) error {
	size := format.PaperSize(page.Size)
	orientation := orientationPortrait
	if strings.ToLower(page.Orientation) == orientationLandscape {
		orientation = orientationLandscape
	}
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return err
	}

	top := units.PxToInches(marginPx(page.Margin.Top))
	bottom := units.PxToInches(marginPx(page.Margin.Bottom))
	left := units.PxToInches(marginPx(page.Margin.Left))
	right := units.PxToInches(marginPx(page.Margin.Right))
	return f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Top:    &top,
		Bottom: &bottom,
		Left:   &left,
		Right:  &right,
	})
}

func marginPx(px *int) int {
	if px == nil {
		return defaultMarginPx
	}
	return *px
}
