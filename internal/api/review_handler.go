package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/api/shared"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/keshavkumar4699/cloro-questions/internal/service/review"
)

// ReviewHandler handles review submission, activity retries and the review queue.
type ReviewHandler struct {
	reviewService review.Service
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService review.Service, logger *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviewService cannot be nil for ReviewHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "review_handler")),
	}
}

// SubmitReview handles POST /api/spaced-repetition/{userID}/review.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathUUID(r, "userID")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("review request failed validation", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Question ID and difficulty are required", err)
		return
	}

	// validated as a UUID above
	questionID := uuid.MustParse(req.QuestionID)

	result, err := h.reviewService.SubmitReview(r.Context(), userID, questionID, req.Difficulty)
	if err != nil {
		if errors.Is(err, review.ErrStatsUpdateFailure) && result != nil {
			h.respondStatsUpdateFailure(w, r, result, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review submitted",
		slog.String("user_id", userID.String()),
		slog.String("question_id", questionID.String()),
		slog.String("difficulty", req.Difficulty))

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{
		Success:      true,
		Question:     questionToResponse(result.Question),
		StatsUpdated: result.StatsUpdated,
		Stats:        userStatsToResponse(result.Stats),
		Message:      "Question reviewed successfully",
	})
}

// respondStatsUpdateFailure reports a review whose question update committed
// while the statistics update did not. The client must not resubmit the
// review; it may retry the statistics step through the activity endpoint.
func (h *ReviewHandler) respondStatsUpdateFailure(
	w http.ResponseWriter,
	r *http.Request,
	result *review.Result,
	err error,
) {
	logger.FromContextOrDefault(r.Context(), h.logger).Error("statistics update failed after review",
		slog.String("error", err.Error()),
		slog.String("trace_id", shared.GetTraceID(r.Context())))

	shared.RespondWithJSON(w, r, http.StatusInternalServerError, ReviewResponse{
		Success:      false,
		Question:     questionToResponse(result.Question),
		StatsUpdated: false,
		Message:      "Question reviewed, but statistics were not updated",
		Error:        GetSafeErrorMessage(err),
		TraceID:      shared.GetTraceID(r.Context()),
	})
}

// RecordActivity handles POST /api/spaced-repetition/{userID}/activity.
// It applies one review's worth of streak and activity bookkeeping and is
// meant for retrying after a statistics failure on the review endpoint.
func (h *ReviewHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "userID")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	stats, err := h.reviewService.RecordActivity(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to record activity", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ActivityResponse{
		Success: true,
		Stats:   userStatsToResponse(stats),
	})
}

// GetQueue handles GET /api/spaced-repetition/{userID}/queue.
func (h *ReviewHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
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

	questions, err := h.reviewService.GetQueue(r.Context(), userID, scope)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to load review queue", err)
		return
	}

	resp := QueueResponse{
		Success:   true,
		Questions: make([]QuestionResponse, 0, len(questions)),
		Count:     len(questions),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, *questionToResponse(q))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
