// Package format maps dashboard format codes to spreadsheet codes.
package format

import (
	"strings"
)

// Dashboard column format codes.
const (
	Currency = "currency"
	Number2  = "number2"
	Date     = "date"
)

var numberFormat = map[string]string{
	Currency: `"$"#,##0.00`,
	Number2:  `#,##0.00`,
	Date:     `mm/dd/yyyy`,
}

// NumberFormat returns the spreadsheet number format for a dashboard
// format code. Text transforms (upper, proper) have no spreadsheet
// format and are not resolved here.
func NumberFormat(code string) (string, bool) {
	f, ok := numberFormat[code]
	return f, ok
}

// Excel paper size ids.
var paperSize = map[string]int{
	"letter": 1,
	"legal":  5,
	"a4":     9,
	"a3":     8,
}

// PaperSize returns the Excel paper size id for a page size name,
// defaulting to letter.
func PaperSize(name string) int {
	if id, ok := paperSize[strings.ToLower(name)]; ok {
		return id
	}
	return paperSize["letter"]
}
