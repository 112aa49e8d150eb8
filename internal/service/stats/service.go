// Package stats assembles a user's learning dashboard. It loads the user's
// questions and statistics record and combines them with the pure
// aggregations in the progress package.
package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
)

// Request selects what GetStats computes.
type Request struct {
	Scope progress.Scope

	// PeriodDays, when positive, adds period statistics over the last
	// PeriodDays calendar days.
	PeriodDays int
}

// Response is the assembled dashboard for one user and scope.
type Response struct {
	progress.Summary

	// DueToday mirrors DueQuestions.
	DueToday int `json:"dueToday"`

	TotalQuestionsAnswered int                    `json:"totalQuestionsAnswered"`
	CurrentStreak          int                    `json:"currentStreak"`
	LongestStreak          int                    `json:"longestStreak"`
	DailyAttempted         int                    `json:"dailyAttempted"`
	DailyActivity          []domain.DailyActivity `json:"dailyActivity"`
	Trend                  []progress.TrendPoint  `json:"trend"`
	PeriodStats            *progress.PeriodStats  `json:"periodStats,omitempty"`
	Context                progress.Flags         `json:"context"`
}

// Service computes learning statistics.
type Service interface {
	// GetStats returns the dashboard for userID. Streak fields come from the
	// user's statistics record; the remaining counters are computed from the
	// questions in scope.
	//
	// Returns store.ErrUserStatsNotFound when the user has neither a
	// statistics record nor any questions.
	GetStats(ctx context.Context, userID uuid.UUID, req Request) (*Response, error)
}

// ServiceError wraps errors from the stats service with context.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stats service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("stats service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewGetStatsError creates a ServiceError for GetStats.
func NewGetStatsError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "get_stats",
		Message:   message,
		Err:       err,
	}
}

// ErrInvalidPeriod is returned for a negative period length.
var ErrInvalidPeriod = fmt.Errorf("%w: period must not be negative", domain.ErrValidation)
