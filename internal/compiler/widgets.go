package compiler

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dashgrid/go-exporter/internal/format"
	"github.com/dashgrid/go-exporter/internal/layout"
	"github.com/dashgrid/go-exporter/internal/units"
)

const (
	defaultColWidthPx = 100
	narrowColWidthPx  = 80

	qrcodePixels = 64
)

// columns holding money-like values get the narrower default width
var narrowColumn = map[string]struct{}{
	"amount": {},
	"total":  {},
	"value":  {},
	"price":  {},
	"cost":   {},
}

func (c *Facade) tableHandler(f *excelize.File, st *styles, sheet string, w layout.Widget) (err error) {
	row, col := origin(w)

	title := w.Title
	if title == "" {
		title = "Table"
	}
	titleCell, err := excelize.CoordinatesToCellName(col, row-1)
	if err != nil {
		return
	}
	f.SetCellValue(sheet, titleCell, title)
	f.SetCellStyle(sheet, titleCell, titleCell, st.title)

	for j, name := range w.Columns {
		var cell string
		if cell, err = excelize.CoordinatesToCellName(col+j, row); err != nil {
			return
		}
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, cell, st.header)

		widthPx := defaultColWidthPx
		if _, isNarrow := narrowColumn[strings.ToLower(name)]; isNarrow {
			widthPx = narrowColWidthPx
		}
		var colName string
		if colName, err = excelize.ColumnNumberToName(col + j); err != nil {
			return
		}
		if err = f.SetColWidth(sheet, colName, colName, units.PxToColWidth(widthPx)); err != nil {
			return
		}
	}

	r := row + 1
	for _, dataRow := range w.Data {
		for j := range w.Columns {
			var value interface{} = ""
			if j < len(dataRow) {
				value = dataRow[j]
			}
			var cell string
			if cell, err = excelize.CoordinatesToCellName(col+j, r); err != nil {
				return
			}
			f.SetCellValue(sheet, cell, value)
			f.SetCellStyle(sheet, cell, cell, st.cell)
		}
		r++
	}

	// column-level formats cover data rows only
	for name, code := range w.Formats {
		idx := columnIndex(w.Columns, name)
		if idx < 0 {
			continue
		}
		numFmt, isExist := format.NumberFormat(code)
		if !isExist {
			// text transforms are export-time content changes, no
			// number format exists for them
			continue
		}
		for rr := row + 1; rr < r; rr++ {
			if err = setNumberFormat(f, sheet, col+idx, rr, numFmt); err != nil {
				return
			}
		}
	}

	// Per-cell override keys "r,c" mix conventions: the row offset is
	// added to the origin row as-is while the column offset is 1-based
	// from the origin column. Kept as-is for compatibility with
	// existing layout payloads.
	for key, code := range w.CellFmt {
		rr, cc, keyErr := c.parser.CellKey(key)
		if keyErr != nil {
			continue
		}
		numFmt, isExist := format.NumberFormat(code)
		if !isExist {
			continue
		}
		if err = setNumberFormat(f, sheet, col+cc-1, row+rr, numFmt); err != nil {
			return
		}
	}
	return
}

func (c *Facade) kpiHandler(f *excelize.File, st *styles, sheet string, w layout.Widget) (err error) {
	row, col := origin(w)

	title := w.Title
	if title == "" {
		title = "KPI"
	}
	value := w.Value
	if value == nil {
		value = 0
	}

	// thin border around the 4x3 block
	for rr := row; rr < row+3; rr++ {
		for cc := col; cc < col+4; cc++ {
			var cell string
			if cell, err = excelize.CoordinatesToCellName(cc, rr); err != nil {
				return
			}
			f.SetCellStyle(sheet, cell, cell, st.kpiBorder)
		}
	}

	titleCell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	titleEnd, err := excelize.CoordinatesToCellName(col+3, row)
	if err != nil {
		return
	}
	f.SetCellValue(sheet, titleCell, title)
	f.SetCellStyle(sheet, titleCell, titleCell, st.kpiTitle)
	if err = f.MergeCell(sheet, titleCell, titleEnd); err != nil {
		return
	}

	valueCell, err := excelize.CoordinatesToCellName(col, row+1)
	if err != nil {
		return
	}
	valueEnd, err := excelize.CoordinatesToCellName(col+3, row+2)
	if err != nil {
		return
	}
	f.SetCellValue(sheet, valueCell, value)
	f.SetCellStyle(sheet, valueCell, valueCell, st.kpiValue)
	if err = f.MergeCell(sheet, valueCell, valueEnd); err != nil {
		return
	}

	subCell, err := excelize.CoordinatesToCellName(col, row+3)
	if err != nil {
		return
	}
	f.SetCellValue(sheet, subCell, w.Sub)
	f.SetCellStyle(sheet, subCell, subCell, st.kpiSub)
	return
}

// fixed preview series, chart widgets do not consume payload data
var (
	chartLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	chartValues = []int{10, 22, 18, 30, 26, 35}
)

func (c *Facade) chartHandler(f *excelize.File, st *styles, sheet string, w layout.Widget) (err error) {
	row, col := origin(w)

	title := w.Title
	if title == "" {
		title = "Chart"
	}
	titleCell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	f.SetCellValue(sheet, titleCell, title)
	f.SetCellStyle(sheet, titleCell, titleCell, st.title)

	for i, label := range chartLabels {
		var labelCell, valueCell string
		if labelCell, err = excelize.CoordinatesToCellName(col, row+1+i); err != nil {
			return
		}
		if valueCell, err = excelize.CoordinatesToCellName(col+1, row+1+i); err != nil {
			return
		}
		f.SetCellValue(sheet, labelCell, label)
		f.SetCellStyle(sheet, labelCell, labelCell, st.label)
		f.SetCellValue(sheet, valueCell, chartValues[i])
		f.SetCellStyle(sheet, valueCell, valueCell, st.chartValue)
	}

	seriesName, err := rangeRef(sheet, col+1, row, col+1, row)
	if err != nil {
		return
	}
	categories, err := rangeRef(sheet, col, row+1, col, row+len(chartLabels))
	if err != nil {
		return
	}
	values, err := rangeRef(sheet, col+1, row+1, col+1, row+len(chartLabels))
	if err != nil {
		return
	}

	anchor, err := excelize.CoordinatesToCellName(col+3, row)
	if err != nil {
		return
	}
	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       seriesName,
				Categories: categories,
				Values:     values,
			},
		},
		Title: []excelize.RichTextRun{
			{Text: title},
		},
	})
}

// labelHandler renders button and unknown widgets as a bordered label.
func (c *Facade) labelHandler(f *excelize.File, st *styles, sheet string, w layout.Widget) (err error) {
	row, col := origin(w)

	title := w.Title
	if title == "" {
		title = "Button"
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	f.SetCellValue(sheet, cell, title)
	f.SetCellStyle(sheet, cell, cell, st.label)

	if w.Link == "" {
		return
	}
	data, err := c.qrcode.Create(w.Link, qrcodePixels)
	if err != nil {
		return fmt.Errorf("qrcode generate: %s", err)
	}
	pictureCell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return
	}
	return f.AddPictureFromBytes(sheet, pictureCell, &excelize.Picture{
		Extension: ".png",
		File:      data,
	})
}

// setNumberFormat changes the number format of a cell keeping its
// other style attributes.
func setNumberFormat(f *excelize.File, sheet string, col, row int, numFmt string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return err
	}
	style.CustomNumFmt = &numFmt
	if styleID, err = f.NewStyle(style); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, styleID)
}

func columnIndex(columns []string, name string) int {
	for i, column := range columns {
		if column == name {
			return i
		}
	}
	return -1
}

func rangeRef(sheet string, startCol, startRow, endCol, endRow int) (string, error) {
	start, err := excelize.CoordinatesToCellName(startCol, startRow, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(endCol, endRow, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s:%s", sheet, start, end), nil
}
