package compiler

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dashgrid/go-exporter/internal/layout"
)

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31
)

type parser interface {
	CellKey(key string) (row, col int, err error)
}

type qrcode interface {
	Create(link string, size int) ([]byte, error)
}

type widgetHandler func(f *excelize.File, st *styles, sheet string, w layout.Widget) (err error)

// Facade compiles dashboard layouts into workbooks.
type Facade struct {
	typeHandler map[string]widgetHandler

	parser parser
	qrcode qrcode
}

func NewFacade(
	parser parser,
	qrcode qrcode,
) *Facade {
	c := &Facade{
		parser: parser,
		qrcode: qrcode,
	}
	c.typeHandler = map[string]widgetHandler{
		layout.TableType: c.tableHandler,
		layout.KPIType:   c.kpiHandler,
		layout.ChartType: c.chartHandler,
	}
	return c
}

// Compile renders one worksheet per layout sheet and returns the
// serialized workbook. Output is deterministic for the same layout up
// to the library's internal timestamp metadata.
func (c *Facade) Compile(ctx context.Context, l layout.Layout) (r io.Reader, err error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		err = fmt.Errorf("styles: %s", err)
		return
	}

	for idx, sheet := range l.Sheets {
		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", idx+1)
		}
		if title := []rune(name); len(title) > maxSheetName {
			name = string(title[:maxSheetName])
		}

		// the file starts with one default sheet, reuse it for the
		// first layout sheet
		if idx == 0 {
			err = f.SetSheetName(defaultSheet, name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			err = fmt.Errorf("sheet %s: %s", name, err)
			return
		}

		if err = pageSetup(f, name, l.Settings.Page); err != nil {
			err = fmt.Errorf("sheet %s page setup: %s", name, err)
			return
		}

		for _, w := range sheet.Widgets {
			handler, isExist := c.typeHandler[w.Type]
			if !isExist {
				handler = c.labelHandler
			}
			if err = handler(f, st, name, w); err != nil {
				err = fmt.Errorf("widget %s at %d,%d: %s", w.Type, w.X, w.Y, err)
				return
			}
		}
	}

	result, err := f.WriteToBuffer()
	if err != nil {
		err = fmt.Errorf("serialize workbook: %s", err)
		return
	}
	r = bytes.NewReader(result.Bytes())
	return
}

// origin returns the 1-based grid position of a widget, missing
// coordinates default to 1.
func origin(w layout.Widget) (row, col int) {
	row, col = w.Y, w.X
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	return
}
