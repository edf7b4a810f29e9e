package layout

// Widget types.
const (
	TableType = "table"
	KPIType   = "kpi"
	ChartType = "chart"
)

// Layout is a dashboard description to compile into a workbook.
type Layout struct {
	Project  string   `json:"project"`
	Sheets   []Sheet  `json:"sheets"`
	Settings Settings `json:"settings"`
}

// Sheet of a dashboard.
type Sheet struct {
	Name    string   `json:"name"`
	Widgets []Widget `json:"widgets"`
}

// Widget is a positioned element of a sheet. X and Y are 1-based
// grid coordinates. Fields beyond Type, X, Y, Title are read only by
// the handler of the matching widget type.
type Widget struct {
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Title string `json:"title,omitempty"`

	// table
	Columns []string          `json:"columns,omitempty"`
	Data    [][]interface{}   `json:"data,omitempty"`
	Formats map[string]string `json:"formats,omitempty"`
	CellFmt map[string]string `json:"cellFmt,omitempty"`

	// kpi
	Sub   string      `json:"sub,omitempty"`
	Value interface{} `json:"value,omitempty"`

	// chart
	ChartType string `json:"chartType,omitempty"`

	// button
	Link string `json:"link,omitempty"`
}

// Settings of the workbook.
type Settings struct {
	Page Page `json:"page"`

	// SmartSave holds caller naming/versioning preferences. They are
	// echoed back to the caller and never read by the compiler.
	SmartSave interface{} `json:"smartSave,omitempty"`
}

// Page setup settings. Margin values are pixel units at 96 DPI.
type Page struct {
	Size        string `json:"size"`
	Orientation string `json:"orientation"`
	Margin      Margin `json:"margin"`
}

// Margin in pixel units.
type Margin struct {
	Top    *int `json:"top,omitempty"`
	Bottom *int `json:"bottom,omitempty"`
	Left   *int `json:"left,omitempty"`
	Right  *int `json:"right,omitempty"`
}
