package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/metrics"
)

// NewRouter registers the HTTP routes.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder, corsOrigins []string) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "PUT", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return LoggingMiddleware(logger, recorder, next)
	})

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/weeks", handler.Weeks)
	r.Get("/weeks/current", handler.CurrentWeek)
	r.Get("/weeks/{number}", handler.WeekByNumber)
	r.Put("/weeks/{number}/predictions/{gameID}", handler.Predict)
	r.Post("/refresh", handler.Refresh)

	return r
}
