package compiler

import (
	"github.com/xuri/excelize/v2"
)

const (
	borderColor = "D1D5DB"
	headerFill  = "F8FAFC"
	subColor    = "64748B"

	chartValueFormat = `#,##0`
)

// styles holds the per-file style ids shared by widget handlers.
type styles struct {
	title  int
	header int
	cell   int

	kpiTitle  int
	kpiValue  int
	kpiBorder int
	kpiSub    int

	chartValue int
	label      int
}

func newStyles(f *excelize.File) (st *styles, err error) {
	st = &styles{}

	if st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Vertical: "center"},
	}); err != nil {
		return
	}
	if st.cell, err = f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Vertical: "top"},
	}); err != nil {
		return
	}

	if st.kpiTitle, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12},
		Border: thinBorder(),
	}); err != nil {
		return
	}
	if st.kpiValue, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 18},
		Border: thinBorder(),
	}); err != nil {
		return
	}
	if st.kpiBorder, err = f.NewStyle(&excelize.Style{
		Border: thinBorder(),
	}); err != nil {
		return
	}
	if st.kpiSub, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Color: subColor},
	}); err != nil {
		return
	}

	chartFmt := chartValueFormat
	if st.chartValue, err = f.NewStyle(&excelize.Style{
		Border:       thinBorder(),
		CustomNumFmt: &chartFmt,
	}); err != nil {
		return
	}
	st.label = st.kpiBorder
	return
}

func thinBorder() []excelize.Border {
	types := []string{"left", "right", "top", "bottom"}
	border := make([]excelize.Border, 0, len(types))
	for _, t := range types {
		border = append(border, excelize.Border{Type: t, Color: borderColor, Style: 1})
	}
	return border
}
