package mq

import (
	"github.com/dashgrid/go-exporter/internal/layout"
)

type request struct {
	UUID   string        `json:"uuid"`
	UserID int           `json:"user_id"`
	Layout layout.Layout `json:"layout"`
}

type response struct {
	UUID      string      `json:"uuid"`
	UserID    int         `json:"user_id"`
	Filename  string      `json:"filename,omitempty"`
	Document  []byte      `json:"document,omitempty"`
	SmartSave interface{} `json:"smart_save,omitempty"`
	Message   string      `json:"message,omitempty"`
}
