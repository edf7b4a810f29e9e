package qrcode

import (
	qrcode "github.com/skip2/go-qrcode"
)

// Creator qr codes.
type Creator struct {
}

// NewCreator ...
func NewCreator() *Creator {
	return &Creator{}
}

// Create returns png bytes of a qr code for link.
func (c *Creator) Create(link string, size int) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, size)
}
