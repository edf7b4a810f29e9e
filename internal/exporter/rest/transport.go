package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dashgrid/go-exporter/internal/exporter"
	"github.com/dashgrid/go-exporter/internal/layout"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CompileTransport decodes layout payloads and encodes workbook
// attachments.
type CompileTransport struct {
	uuidFunc func() string
}

func NewCompileTransport(
	uuidFunc func() string,
) *CompileTransport {
	return &CompileTransport{
		uuidFunc: uuidFunc,
	}
}

// DecodeRequest ...
func (t *CompileTransport) DecodeRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var l layout.Layout
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		return nil, badRequestError{err}
	}
	return exporter.Request{
		UUID:   t.uuidFunc(),
		Layout: l,
	}, nil
}

// EncodeResponse writes the workbook as a file download.
func (t *CompileTransport) EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	res, ok := response.(exporter.Response)
	if !ok {
		return errUnknownResponse
	}
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	_, err := w.Write(res.Document)
	return err
}
