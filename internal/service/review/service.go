// Package review records review outcomes: it reschedules the reviewed
// question and then advances the owner's streak and daily activity.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
)

// Result is the outcome of a review submission.
type Result struct {
	// Question is the rescheduled question. It is set whenever the question
	// update committed, including when the statistics step failed.
	Question *domain.Question

	// Stats is the owner's statistics record after the review, or nil if the
	// statistics step failed.
	Stats *domain.UserStats

	// StatsUpdated reports whether the statistics step committed.
	StatsUpdated bool
}

// Service processes reviews and serves the review queue.
type Service interface {
	// SubmitReview applies a review with the given raw difficulty to a
	// question owned by userID.
	//
	// The question update commits before the statistics update starts. If
	// the statistics step fails, the returned Result still carries the
	// committed question and the error is a *StatsUpdateError matching
	// ErrStatsUpdateFailure. An unrecognised difficulty returns
	// domain.ErrInvalidDifficulty and nothing is written. A question that
	// does not exist or belongs to someone else returns
	// store.ErrQuestionNotFound.
	SubmitReview(
		ctx context.Context,
		userID uuid.UUID,
		questionID uuid.UUID,
		difficulty string,
	) (*Result, error)

	// RecordActivity runs only the statistics step for one review. Clients
	// use it to retry after a StatsUpdateFailure.
	RecordActivity(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)

	// GetQueue lists the user's questions that are New or Due within scope,
	// new questions first, then by next review time.
	GetQueue(ctx context.Context, userID uuid.UUID, scope progress.Scope) ([]*domain.Question, error)
}

// ErrStatsUpdateFailure indicates the question was rescheduled but the
// owner's statistics were not updated. The client may retry the statistics
// step; the question must not be reviewed again for it.
var ErrStatsUpdateFailure = errors.New("question updated but statistics update failed")

// StatsUpdateError carries the cause of a failed statistics step.
type StatsUpdateError struct {
	UserID uuid.UUID
	Err    error
}

// Error implements the error interface for StatsUpdateError.
func (e *StatsUpdateError) Error() string {
	return fmt.Sprintf("%s for user %s: %v", ErrStatsUpdateFailure, e.UserID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StatsUpdateError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStatsUpdateFailure.
func (e *StatsUpdateError) Is(target error) bool {
	return target == ErrStatsUpdateFailure
}

// ServiceError wraps errors from the review service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit_review", "get_queue")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewSubmitReviewError returns a new ServiceError for the submit_review operation.
func NewSubmitReviewError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "submit_review", Message: message, Err: err}
}

// NewRecordActivityError returns a new ServiceError for the record_activity operation.
func NewRecordActivityError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "record_activity", Message: message, Err: err}
}

// NewGetQueueError returns a new ServiceError for the get_queue operation.
func NewGetQueueError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "get_queue", Message: message, Err: err}
}
