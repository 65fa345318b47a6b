// Package httptransport assembles the public HTTP surface: the middleware
// chain, health and metrics endpoints, and the versioned API.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pratyaksh/internal/audit"
	"pratyaksh/internal/platform/metrics"
	"pratyaksh/internal/platform/middleware"
)

// APIPrefix is where every calculator and registry route is mounted.
const APIPrefix = "/api/v1"

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// AuditReader reads the audit trail of one subject.
type AuditReader interface {
	List(ctx context.Context, subject string, limit int) ([]audit.Event, error)
}

// RouterConfig carries everything the router wires together. RateLimit and
// Audit are optional.
type RouterConfig struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Validator middleware.TokenValidator
	RateLimit func(http.Handler) http.Handler
	Audit     AuditReader
	Checks    map[string]HealthCheck
	Handlers  []Registrar
}

// NewRouter builds the root handler.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientIP)
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.AccessLog(cfg.Logger, cfg.Metrics))

	health := &healthHandler{checks: cfg.Checks, logger: cfg.Logger}
	r.Get("/health", health.live)
	r.Get("/health/ready", health.ready)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route(APIPrefix, func(api chi.Router) {
		if cfg.RateLimit != nil {
			api.Use(cfg.RateLimit)
		}
		for _, h := range cfg.Handlers {
			h.Register(api)
		}
		if cfg.Audit != nil {
			a := &auditHandler{reader: cfg.Audit, logger: cfg.Logger}
			api.With(middleware.RequireAuth(cfg.Validator, cfg.Logger)).Get("/audit/events", a.list)
		}
	})

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)
	return r
}
