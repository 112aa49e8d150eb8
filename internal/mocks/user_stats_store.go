package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStatsStore is a mock of store.UserStatsStore for use with testify/mock.
// Like MockQuestionStore, WithTx returns the mock itself by default.
type MockUserStatsStore struct {
	mock.Mock
}

var _ store.UserStatsStore = (*MockUserStatsStore)(nil)

// Get is a mock implementation of store.UserStatsStore.Get
func (m *MockUserStatsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if s, ok := args.Get(0).(*domain.UserStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// EnsureExists is a mock implementation of store.UserStatsStore.EnsureExists
func (m *MockUserStatsStore) EnsureExists(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// GetForUpdate is a mock implementation of store.UserStatsStore.GetForUpdate
func (m *MockUserStatsStore) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if s, ok := args.Get(0).(*domain.UserStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.UserStatsStore.Update
func (m *MockUserStatsStore) Update(ctx context.Context, stats *domain.UserStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// WithTx is a mock implementation of store.UserStatsStore.WithTx
func (m *MockUserStatsStore) WithTx(tx *sql.Tx) store.UserStatsStore {
	if !hasExpectation(&m.Mock, "WithTx") {
		return m
	}
	args := m.Called(tx)
	return args.Get(0).(store.UserStatsStore)
}
