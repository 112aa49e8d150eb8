package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/keshavkumar4699/cloro-questions/internal/config"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/srs"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/postgres"
	"github.com/keshavkumar4699/cloro-questions/internal/service/review"
	"github.com/keshavkumar4699/cloro-questions/internal/service/stats"
)

// pinger reports database health.
type pinger interface {
	PingContext(ctx context.Context) error
}

// application holds the wired dependencies of a running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	health pinger

	reviewService review.Service
	statsService  stats.Service
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	loc := progress.ParseTimezone(cfg.SRS.Timezone)

	questionStore := postgres.NewPostgresQuestionStore(db, logger)
	userStatsStore := postgres.NewPostgresUserStatsStore(db, logger)

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		health: db,
		reviewService: review.NewService(
			db,
			questionStore,
			userStatsStore,
			srs.NewDefaultService(),
			logger,
			review.WithLocation(loc),
		),
		statsService: stats.NewService(
			questionStore,
			userStatsStore,
			logger,
			stats.WithLocation(loc),
			stats.WithRetentionWindow(cfg.SRS.RetentionWindowDays),
			stats.WithTrendDays(cfg.SRS.TrendDays),
		),
	}

	logger.Info("application initialized", slog.String("timezone", loc.String()))
	return app
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
