package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// UserStatsStore defines the interface for per-user learning statistics.
type UserStatsStore interface {
	// Get retrieves the statistics record for a user without locking.
	// Returns ErrUserStatsNotFound if the user has no record.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)

	// EnsureExists creates an empty record for the user if none exists.
	// It is a no-op for users that already have one.
	EnsureExists(ctx context.Context, userID uuid.UUID) error

	// GetForUpdate retrieves the record with a row-level lock using SELECT FOR UPDATE.
	// Concurrent updaters for the same user block until the holding
	// transaction finishes. Must be called inside a transaction.
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)

	// Update overwrites the record identified by stats.UserID.
	// Returns ErrUserStatsNotFound if the record does not exist.
	Update(ctx context.Context, stats *domain.UserStats) error

	// WithTx returns a UserStatsStore that runs against the given transaction.
	WithTx(tx *sql.Tx) UserStatsStore
}
