package mq

import (
	"context"

	"github.com/dashgrid/go-exporter/internal/exporter"
	"github.com/dashgrid/go-exporter/internal/kafka"
)

type compileServe struct {
	svc       exporter.Service
	transport *CompileTransport
	publish   kafka.Publish
}

func (s *compileServe) handle(ctx context.Context, message []byte) {
	request, err := s.transport.DecodeRequest(message)

	var res exporter.Response
	if err == nil {
		res, err = s.svc.Compile(ctx, request)
	}

	s.publish(s.transport.EncodeResponse(res, err))
}

// NewCompileHandler returns a handler that serves compile requests
// from a message queue, publishing results to publish.
func NewCompileHandler(
	svc exporter.Service,
	transport *CompileTransport,
	publish kafka.Publish,
) kafka.Handler {
	s := &compileServe{
		svc:       svc,
		transport: transport,
		publish:   publish,
	}

	return s.handle
}
