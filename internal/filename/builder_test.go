package filename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashgrid/go-exporter/internal/filename"
)

func TestAttachment(t *testing.T) {
	b := filename.NewBuilder(func() string { return "uuid" })

	assert.Equal(t, "Q3_Sales_Report.xlsx", b.Attachment("Q3 Sales Report"))
	assert.Equal(t, "report.xlsx", b.Attachment("report"))
	assert.Equal(t, "workbook-uuid.xlsx", b.Attachment(""))
}
