// Package server assembles the HTTP router.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sandeepmed2/property-registration/pkg/handlers"
	"github.com/sandeepmed2/property-registration/pkg/handlers/accounts"
	"github.com/sandeepmed2/property-registration/pkg/handlers/properties"
	"github.com/sandeepmed2/property-registration/pkg/metrics"
	"github.com/sandeepmed2/property-registration/pkg/middleware"
	"github.com/sandeepmed2/property-registration/pkg/registry"
)

// NewRouter mounts every registry route plus /health and /metrics.
func NewRouter(reg registry.Registry, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	// The role claim must be in the context before the logger reads it.
	router.Use(middleware.RoleClaim)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Get("/health", handlers.Health)
	router.Handle("/metrics", metrics.Handler(gatherer))

	accounts.NewAccountsHandler(reg).Register(router)
	properties.NewPropertiesHandler(reg).Register(router)

	return router
}
