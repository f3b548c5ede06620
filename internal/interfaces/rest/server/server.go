// Package server assembles the HTTP handler: routes, OpenAPI validation and
// the middleware chain.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest/middleware"
)

const maxRequestBytes = 64 << 10

type Deps struct {
	Service        handlers.PaymentService
	Pinger         handlers.Pinger
	Gatherer       prometheus.Gatherer
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

func NewHandler(ctx context.Context, deps Deps) (http.Handler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	router, err := api.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	badRequest := func(w http.ResponseWriter, r *http.Request, err error) {
		rest.WriteValidationError(w, err.Error())
	}

	h := handlers.NewHandlers(deps.Service, deps.Pinger, logger)
	strictHandler := api.NewStrictHandlerWithOptions(h, []api.StrictMiddlewareFunc{handlers.ClientIP}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: badRequest,
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.ErrorContext(r.Context(), "failed to write response", "path", r.URL.Path, "error", err)
			rest.WriteError(w, err)
		},
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	if deps.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: badRequest,
	})

	handler := middleware.ValidateRequests(router, logger)(mux)
	handler = middleware.MaxBytes(maxRequestBytes)(handler)
	handler = middleware.Timeout(deps.RequestTimeout)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler, nil
}
