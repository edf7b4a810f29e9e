package exporter

import (
	"context"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/dashgrid/go-exporter/internal/layout"
)

type compileFunc func(ctx context.Context, l layout.Layout) (io.Reader, error)

type filename interface {
	Attachment(project string) string
}

type service struct {
	compile  compileFunc
	filename filename

	logger log.Logger
}

func NewService(
	filename filename,

	compile compileFunc,

	logger log.Logger,
) Service {
	return &service{
		compile:  compile,
		filename: filename,
		logger:   logger,
	}
}

// Compile builds workbook bytes from the layout in req.
func (s *service) Compile(ctx context.Context, req Request) (res Response, err error) {
	logger := log.WithPrefix(s.logger, "method", "Compile", "uuid", req.UUID)

	result, err := s.compile(ctx, req.Layout)
	if err != nil {
		level.Error(logger).Log("msg", "compile layout", "project", req.Layout.Project, "err", err)
		return
	}

	res = Response{
		UUID:      req.UUID,
		UserID:    req.UserID,
		Filename:  s.filename.Attachment(req.Layout.Project),
		SmartSave: req.Layout.Settings.SmartSave,
	}
	if res.Document, err = io.ReadAll(result); err != nil {
		level.Error(logger).Log("msg", "read result", "err", err)
	}
	return
}
