package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Ranker/internal/config"
	"github.com/MikeSquared-Agency/Ranker/internal/hermes"
	"github.com/MikeSquared-Agency/Ranker/internal/store"
)

func NewRouter(s store.Store, h hermes.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimit))

	rank := NewRankHandler(s, h, cfg.Scoring.Weights.WeightSet(), cfg.Scoring.ParetoEnabled, logger)
	catalog := NewCatalogHandler(cfg.Scoring.Weights.WeightSet(), cfg.Venues)
	calculations := NewCalculationsHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/criteria", catalog.Criteria)
		r.Get("/venues", catalog.Venues)

		r.Post("/weights/normalize", rank.NormalizeWeights)
		r.Post("/readiness", rank.Readiness)
		r.Post("/rank", rank.Rank)

		r.Get("/calculations", calculations.List)
		r.Get("/calculations/{id}", calculations.Get)
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
