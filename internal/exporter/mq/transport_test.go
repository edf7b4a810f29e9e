package mq_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashgrid/go-exporter/internal/exporter"
	"github.com/dashgrid/go-exporter/internal/exporter/mq"
	"github.com/dashgrid/go-exporter/internal/response"
)

func TestDecodeRequest(t *testing.T) {
	transport := mq.NewCompileTransport(response.Build)

	message := []byte(`{
		"uuid": "req-1",
		"user_id": 7,
		"layout": {
			"project": "Board",
			"sheets": [{"name": "Report", "widgets": [{"type": "kpi", "x": 1, "y": 1}]}]
		}
	}`)
	req, err := transport.DecodeRequest(message)
	assert.NoError(t, err)
	assert.Equal(t, "req-1", req.UUID)
	assert.Equal(t, 7, req.UserID)
	assert.Equal(t, "Board", req.Layout.Project)
	assert.Len(t, req.Layout.Sheets, 1)
}

func TestEncodeResponse(t *testing.T) {
	transport := mq.NewCompileTransport(response.Build)

	message := transport.EncodeResponse(exporter.Response{
		UUID:     "req-1",
		Filename: "Board.xlsx",
		Document: []byte("workbook"),
	}, nil)

	var envelope struct {
		IsOk    bool `json:"isOk"`
		Payload struct {
			UUID     string `json:"uuid"`
			Filename string `json:"filename"`
			Document []byte `json:"document"`
		} `json:"payload"`
	}
	assert.NoError(t, json.Unmarshal(message, &envelope))
	assert.True(t, envelope.IsOk)
	assert.Equal(t, "req-1", envelope.Payload.UUID)
	assert.Equal(t, "Board.xlsx", envelope.Payload.Filename)
	assert.Equal(t, []byte("workbook"), envelope.Payload.Document)
}

func TestEncodeResponseError(t *testing.T) {
	transport := mq.NewCompileTransport(response.Build)

	message := transport.EncodeResponse(exporter.Response{}, errors.New("boom"))

	var envelope struct {
		IsOk    bool        `json:"isOk"`
		Payload interface{} `json:"payload"`
	}
	assert.NoError(t, json.Unmarshal(message, &envelope))
	assert.False(t, envelope.IsOk)
	assert.Equal(t, "boom", envelope.Payload)
}
