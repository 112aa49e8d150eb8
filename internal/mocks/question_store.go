package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockQuestionStore is a mock of store.QuestionStore for use with testify/mock.
//
// WithTx returns the mock itself unless an expectation for WithTx is set, so
// that tests exercising transactional code only need expectations for the
// calls they care about.
type MockQuestionStore struct {
	mock.Mock
}

var _ store.QuestionStore = (*MockQuestionStore)(nil)

// Create is a mock implementation of store.QuestionStore.Create
func (m *MockQuestionStore) Create(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

// GetOwned is a mock implementation of store.QuestionStore.GetOwned
func (m *MockQuestionStore) GetOwned(ctx context.Context, ownerID, questionID uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, ownerID, questionID)
	if q, ok := args.Get(0).(*domain.Question); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetOwnedForUpdate is a mock implementation of store.QuestionStore.GetOwnedForUpdate
func (m *MockQuestionStore) GetOwnedForUpdate(
	ctx context.Context,
	ownerID, questionID uuid.UUID,
) (*domain.Question, error) {
	args := m.Called(ctx, ownerID, questionID)
	if q, ok := args.Get(0).(*domain.Question); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateSchedule is a mock implementation of store.QuestionStore.UpdateSchedule
func (m *MockQuestionStore) UpdateSchedule(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

// Query is a mock implementation of store.QuestionStore.Query
func (m *MockQuestionStore) Query(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.QuestionFilter,
) ([]*domain.Question, error) {
	args := m.Called(ctx, ownerID, filter)
	if qs, ok := args.Get(0).([]*domain.Question); ok {
		return qs, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx is a mock implementation of store.QuestionStore.WithTx
func (m *MockQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	if !hasExpectation(&m.Mock, "WithTx") {
		return m
	}
	args := m.Called(tx)
	return args.Get(0).(store.QuestionStore)
}

// hasExpectation reports whether an expectation has been registered for method.
func hasExpectation(m *mock.Mock, method string) bool {
	for _, call := range m.ExpectedCalls {
		if call.Method == method {
			return true
		}
	}
	return false
}
