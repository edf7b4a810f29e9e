package exporter

import (
	"context"

	"github.com/dashgrid/go-exporter/internal/layout"
)

// Service compiles dashboard layouts into workbooks.
type Service interface {
	Compile(ctx context.Context, req Request) (Response, error)
}

// Request to compile a layout.
type Request struct {
	UUID   string
	UserID int
	Layout layout.Layout
}

// Response with the compiled workbook. SmartSave carries the caller's
// naming/versioning preferences back unchanged.
type Response struct {
	UUID      string
	UserID    int
	Filename  string
	Document  []byte
	SmartSave interface{}
}
