package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SandiaExe/LogicaDifusa/internal/events"
	"github.com/SandiaExe/LogicaDifusa/internal/store"
	"github.com/SandiaExe/LogicaDifusa/internal/venture"
)

func NewRouter(s store.Store, ec events.Client, p *venture.Projector, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	projections := NewProjectionsHandler(s, ec, p, logger)
	explain := NewExplainHandler(s)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/projections", projections.Create)
		r.Get("/projections", projections.List)
		r.Get("/projections/{id}", projections.Get)
		r.Get("/projections/{id}/explain", explain.Explain)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
