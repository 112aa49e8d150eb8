package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
)

const userStatsTable = "user_learning_stats"

var userStatsColumns = []string{
	"user_id",
	"total_questions_answered",
	"current_streak",
	"longest_streak",
	"last_activity_date",
	"daily_activity",
	"updated_at",
}

// PostgresUserStatsStore implements the store.UserStatsStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStatsStore creates a new PostgreSQL implementation of the UserStatsStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresUserStatsStore(db store.DBTX, logger *slog.Logger) *PostgresUserStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_stats_store")),
	}
}

// Ensure PostgresUserStatsStore implements store.UserStatsStore interface
var _ store.UserStatsStore = (*PostgresUserStatsStore)(nil)

// WithTx implements store.UserStatsStore.WithTx
func (s *PostgresUserStatsStore) WithTx(tx *sql.Tx) store.UserStatsStore {
	return &PostgresUserStatsStore{
		db:     tx,
		logger: s.logger,
	}
}

// Get implements store.UserStatsStore.Get
func (s *PostgresUserStatsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	return s.get(ctx, userID, false)
}

// GetForUpdate implements store.UserStatsStore.GetForUpdate
func (s *PostgresUserStatsStore) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	return s.get(ctx, userID, true)
}

func (s *PostgresUserStatsStore) get(
	ctx context.Context,
	userID uuid.UUID,
	forUpdate bool,
) (*domain.UserStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := psql.Select(userStatsColumns...).
		From(userStatsTable).
		Where(squirrel.Eq{"user_id": userID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var (
		stats        domain.UserStats
		lastActivity sql.NullTime
		activity     []byte
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.UserID,
		&stats.TotalQuestionsAnswered,
		&stats.CurrentStreak,
		&stats.LongestStreak,
		&lastActivity,
		&activity,
		&stats.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user stats not found", slog.String("user_id", userID.String()))
			return nil, store.ErrUserStatsNotFound
		}
		log.Error("failed to get user stats",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	if lastActivity.Valid {
		t := lastActivity.Time.UTC()
		stats.LastActivityDate = &t
	}

	if len(activity) > 0 {
		if err := json.Unmarshal(activity, &stats.DailyActivity); err != nil {
			log.Error("stored daily activity is malformed",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, store.NewStoreError("user_stats", "get", "malformed daily activity", err)
		}
	}

	return &stats, nil
}

// EnsureExists implements store.UserStatsStore.EnsureExists
func (s *PostgresUserStatsStore) EnsureExists(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == uuid.Nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyStatsUserID)
	}

	// created_at and updated_at take their column defaults; Update stamps
	// updated_at from the caller's clock.
	query, args, err := psql.Insert(userStatsTable).
		Columns("user_id", "daily_activity").
		Values(userID, "[]").
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to ensure user stats row",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return MapError(err)
	}
	return nil
}

// Update implements store.UserStatsStore.Update
func (s *PostgresUserStatsStore) Update(ctx context.Context, stats *domain.UserStats) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := stats.Validate(); err != nil {
		log.Warn("user stats validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", stats.UserID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	activity, err := json.Marshal(stats.DailyActivity)
	if err != nil {
		return fmt.Errorf("failed to encode daily activity: %w", err)
	}

	var lastActivity sql.NullTime
	if stats.LastActivityDate != nil {
		lastActivity = sql.NullTime{Time: stats.LastActivityDate.UTC(), Valid: true}
	}

	query, args, err := psql.Update(userStatsTable).
		Set("total_questions_answered", stats.TotalQuestionsAnswered).
		Set("current_streak", stats.CurrentStreak).
		Set("longest_streak", stats.LongestStreak).
		Set("last_activity_date", lastActivity).
		Set("daily_activity", string(activity)).
		Set("updated_at", stats.UpdatedAt.UTC()).
		Where(squirrel.Eq{"user_id": stats.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update user stats",
			slog.String("error", err.Error()),
			slog.String("user_id", stats.UserID.String()))
		return MapError(err)
	}

	if err := checkRowsAffected(result, store.ErrUserStatsNotFound); err != nil {
		return err
	}

	log.Debug("user stats updated",
		slog.String("user_id", stats.UserID.String()),
		slog.Int("current_streak", stats.CurrentStreak),
		slog.Int("total_questions_answered", stats.TotalQuestionsAnswered))
	return nil
}
