package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
	"github.com/keshavkumar4699/cloro-questions/internal/service/review"
)

// MockReviewService implements review.Service for testing
type MockReviewService struct {
	// Custom behavior functions
	SubmitReviewFn   func(ctx context.Context, userID, questionID uuid.UUID, difficulty string) (*review.Result, error)
	RecordActivityFn func(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	GetQueueFn       func(ctx context.Context, userID uuid.UUID, scope progress.Scope) ([]*domain.Question, error)

	// Default response values
	Result *review.Result
	Stats  *domain.UserStats
	Queue  []*domain.Question
	Err    error

	// Call tracking for verification
	SubmitReviewCalls struct {
		mu           sync.Mutex
		Count        int
		UserIDs      []uuid.UUID
		QuestionIDs  []uuid.UUID
		Difficulties []string
	}

	RecordActivityCalls struct {
		mu      sync.Mutex
		Count   int
		UserIDs []uuid.UUID
	}

	GetQueueCalls struct {
		mu      sync.Mutex
		Count   int
		UserIDs []uuid.UUID
		Scopes  []progress.Scope
	}
}

var _ review.Service = (*MockReviewService)(nil)

// SubmitReview implements the review.Service interface
func (m *MockReviewService) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	questionID uuid.UUID,
	difficulty string,
) (*review.Result, error) {
	m.SubmitReviewCalls.mu.Lock()
	m.SubmitReviewCalls.Count++
	m.SubmitReviewCalls.UserIDs = append(m.SubmitReviewCalls.UserIDs, userID)
	m.SubmitReviewCalls.QuestionIDs = append(m.SubmitReviewCalls.QuestionIDs, questionID)
	m.SubmitReviewCalls.Difficulties = append(m.SubmitReviewCalls.Difficulties, difficulty)
	m.SubmitReviewCalls.mu.Unlock()

	if m.SubmitReviewFn != nil {
		return m.SubmitReviewFn(ctx, userID, questionID, difficulty)
	}
	return m.Result, m.Err
}

// RecordActivity implements the review.Service interface
func (m *MockReviewService) RecordActivity(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	m.RecordActivityCalls.mu.Lock()
	m.RecordActivityCalls.Count++
	m.RecordActivityCalls.UserIDs = append(m.RecordActivityCalls.UserIDs, userID)
	m.RecordActivityCalls.mu.Unlock()

	if m.RecordActivityFn != nil {
		return m.RecordActivityFn(ctx, userID)
	}
	return m.Stats, m.Err
}

// GetQueue implements the review.Service interface
func (m *MockReviewService) GetQueue(
	ctx context.Context,
	userID uuid.UUID,
	scope progress.Scope,
) ([]*domain.Question, error) {
	m.GetQueueCalls.mu.Lock()
	m.GetQueueCalls.Count++
	m.GetQueueCalls.UserIDs = append(m.GetQueueCalls.UserIDs, userID)
	m.GetQueueCalls.Scopes = append(m.GetQueueCalls.Scopes, scope)
	m.GetQueueCalls.mu.Unlock()

	if m.GetQueueFn != nil {
		return m.GetQueueFn(ctx, userID, scope)
	}
	return m.Queue, m.Err
}

// SubmitReviewCount returns the number of SubmitReview calls.
func (m *MockReviewService) SubmitReviewCount() int {
	m.SubmitReviewCalls.mu.Lock()
	defer m.SubmitReviewCalls.mu.Unlock()
	return m.SubmitReviewCalls.Count
}
