package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/config"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/mocks"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/keshavkumar4699/cloro-questions/internal/service/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func newTestApplication(health pinger, rateLimit config.RateLimitConfig) (*application, *mocks.MockReviewService) {
	log, _ := logger.NewTestLogger()
	reviews := &mocks.MockReviewService{}
	return &application{
		config: &config.Config{
			RateLimit: rateLimit,
		},
		logger:        log,
		health:        health,
		reviewService: reviews,
		statsService: &mocks.MockStatsService{
			Response: &stats.Response{},
		},
	}, reviews
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app, _ := newTestApplication(fakePinger{}, config.RateLimitConfig{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		app.setupRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		app, _ := newTestApplication(fakePinger{err: errors.New("connection refused")}, config.RateLimitConfig{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		app.setupRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Database unavailable")
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestRouter_RoutesReachHandlers(t *testing.T) {
	app, reviews := newTestApplication(nil, config.RateLimitConfig{})
	userID := uuid.New()
	reviews.Stats = &domain.UserStats{UserID: userID, TotalQuestionsAnswered: 1, CurrentStreak: 1, LongestStreak: 1}

	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/spaced-repetition/"+userID.String()+"/activity", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, reviews.RecordActivityCalls.Count)

	req = httptest.NewRequest(http.MethodGet, "/api/spaced-repetition/"+userID.String()+"/stats", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/spaced-repetition/"+userID.String()+"/unknown", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RateLimitsReviewRoutes(t *testing.T) {
	app, _ := newTestApplication(fakePinger{}, config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	router := app.setupRouter()
	path := "/api/spaced-repetition/" + uuid.New().String() + "/queue"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// health checks are not limited
	for i := 0; i < 3; i++ {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
