package mq

import (
	"encoding/json"

	"github.com/dashgrid/go-exporter/internal/exporter"
)

type builder func(payload interface{}, err error) ([]byte, error)

// CompileTransport en/decodes compile messages.
type CompileTransport struct {
	builder builder
}

func NewCompileTransport(
	builder builder,
) *CompileTransport {
	return &CompileTransport{
		builder: builder,
	}
}

// DecodeRequest ...
func (t *CompileTransport) DecodeRequest(message []byte) (exporter.Request, error) {
	var req request
	err := json.Unmarshal(message, &req)
	return exporter.Request{
		UUID:   req.UUID,
		UserID: req.UserID,
		Layout: req.Layout,
	}, err
}

// EncodeResponse ...
func (t *CompileTransport) EncodeResponse(res exporter.Response, err error) (message []byte) {
	payload := response{
		UUID:      res.UUID,
		UserID:    res.UserID,
		Filename:  res.Filename,
		Document:  res.Document,
		SmartSave: res.SmartSave,
	}
	if err != nil {
		payload.Message = err.Error()
	}
	message, _ = t.builder(payload, err)
	return
}
