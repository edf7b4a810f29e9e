package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/dashgrid/go-exporter/internal/exporter"
)

// CompilePath of the layout compile endpoint.
const CompilePath = "/api/compile"

type builder func(payload interface{}, err error) ([]byte, error)

// NewHandler returns the http handler of the exporter service.
func NewHandler(
	svc exporter.Service,
	transport *CompileTransport,
	builder builder,
	corsOrigin string,
) http.Handler {
	compile := kithttp.NewServer(
		makeCompileEndpoint(svc),
		transport.DecodeRequest,
		transport.EncodeResponse,
		kithttp.ServerErrorEncoder(newErrorEncoder(builder)),
	)

	mux := http.NewServeMux()
	mux.Handle(CompilePath, compile)
	return cors(corsOrigin, mux)
}

func makeCompileEndpoint(svc exporter.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req, ok := request.(exporter.Request)
		if !ok {
			return nil, errUnknownResponse
		}
		return svc.Compile(ctx, req)
	}
}

func newErrorEncoder(builder builder) kithttp.ErrorEncoder {
	return func(_ context.Context, err error, w http.ResponseWriter) {
		status := http.StatusInternalServerError
		var badRequest badRequestError
		if errors.As(err, &badRequest) {
			status = http.StatusBadRequest
		}

		body, buildErr := builder(nil, err)
		if buildErr != nil {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		w.Write(body)
	}
}

func cors(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
