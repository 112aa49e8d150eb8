package api

import (
	"log/slog"
	"net/http"

	"github.com/keshavkumar4699/cloro-questions/internal/api/shared"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/keshavkumar4699/cloro-questions/internal/service/stats"
)

// StatsHandler serves the learning statistics dashboard.
type StatsHandler struct {
	statsService stats.Service
	logger       *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService stats.Service, logger *slog.Logger) *StatsHandler {
	if statsService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("statsService cannot be nil for StatsHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StatsHandler{
		statsService: statsService,
		logger:       logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /api/spaced-repetition/{userID}/stats.
//
// Query parameters: subjectId and topicId narrow the scope (topic wins when
// both are given); period requests period statistics over that many days.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathUUID(r, "userID")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	scope, err := parseScope(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	resp, err := h.statsService.GetStats(r.Context(), userID, stats.Request{
		Scope:      scope,
		PeriodDays: parsePeriod(r),
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err)
		if status == http.StatusInternalServerError {
			message = "Internal server error"
		}
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}

	log.Debug("statistics served",
		slog.String("user_id", userID.String()),
		slog.Bool("global", resp.Context.IsGlobal))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
