package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/account-service/internal/api"
	"github.com/benx421/account-service/internal/config"
	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/middleware"
	"github.com/benx421/account-service/internal/repository"
	"github.com/benx421/account-service/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	accountService := service.NewAccountService(database)
	handler := NewHandler(accountService, database, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(database.DB, "accounts"),
	)

	idempotencyRepo := repository.NewIdempotencyRepository(database)

	return newRouter(handler, idempotencyRepo, &cfg.App, registry, logger)
}

func newRouter(
	handler *Handler,
	idempotencyRepo repository.IdempotencyRepository,
	app *config.AppConfig,
	registry *prometheus.Registry,
	logger *slog.Logger,
) http.Handler {
	strictHandler := api.NewStrictHandlerWithOptions(handler, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler,
		ResponseErrorHandlerFunc: responseErrorHandler(logger),
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", indexHandler(app, logger))
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: paramErrorHandler,
	})

	var finalHandler http.Handler = mux

	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)
	finalHandler = middleware.RequireJSON(accountsPath)(finalHandler)
	finalHandler = middleware.NewMetrics(registry, mux).Middleware(finalHandler)
	finalHandler = middleware.AccessLog(finalHandler)
	finalHandler = middleware.RequestID(logger)(finalHandler)

	return finalHandler
}
