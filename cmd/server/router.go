package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/keshavkumar4699/cloro-questions/internal/api"
	apiMiddleware "github.com/keshavkumar4699/cloro-questions/internal/api/middleware"
	"github.com/keshavkumar4699/cloro-questions/internal/api/shared"
)

const healthTimeout = 2 * time.Second

// setupRouter creates the router with middleware and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	limiter := apiMiddleware.NewRateLimiter(
		app.config.RateLimit.RequestsPerSecond,
		app.config.RateLimit.Burst,
	)

	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	statsHandler := api.NewStatsHandler(app.statsService, app.logger)

	r.Route("/api/spaced-repetition/{userID}", func(r chi.Router) {
		r.Use(limiter.Handler)

		r.Post("/review", reviewHandler.SubmitReview)
		r.Post("/activity", reviewHandler.RecordActivity)
		r.Get("/stats", statsHandler.GetStats)
		r.Get("/queue", reviewHandler.GetQueue)
	})

	r.Get("/health", app.handleHealth)

	return r
}

func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := app.health.PingContext(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
