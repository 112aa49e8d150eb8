package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/srs"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// Option customises a review service.
type Option func(*serviceImpl)

// WithLocation sets the timezone whose calendar days streaks are counted in.
func WithLocation(loc *time.Location) Option {
	return func(s *serviceImpl) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

type serviceImpl struct {
	db         *sql.DB
	questions  store.QuestionStore
	stats      store.UserStatsStore
	srsService srs.Service
	loc        *time.Location
	now        func() time.Time
	logger     *slog.Logger
}

// NewService creates a review Service backed by db and the given stores.
func NewService(
	db *sql.DB,
	questions store.QuestionStore,
	stats store.UserStatsStore,
	srsService srs.Service,
	logger *slog.Logger,
	opts ...Option,
) Service {
	if db == nil {
		panic("db cannot be nil")
	}
	if questions == nil {
		panic("questions cannot be nil")
	}
	if stats == nil {
		panic("stats cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &serviceImpl{
		db:         db,
		questions:  questions,
		stats:      stats,
		srsService: srsService,
		loc:        time.UTC,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger.With(slog.String("component", "review_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitReview implements Service.SubmitReview.
func (s *serviceImpl) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	questionID uuid.UUID,
	rawDifficulty string,
) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("user_id", userID.String()),
		slog.String("question_id", questionID.String()))

	difficulty, err := domain.ParseDifficulty(rawDifficulty)
	if err != nil {
		log.Warn("rejected review with invalid difficulty", slog.String("difficulty", rawDifficulty))
		return nil, err
	}

	now := s.now()

	var updated *domain.Question
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		questions := s.questions.WithTx(tx)

		q, err := questions.GetOwnedForUpdate(ctx, userID, questionID)
		if err != nil {
			return err
		}

		next, err := s.srsService.ProcessReview(q, difficulty, now)
		if err != nil {
			return fmt.Errorf("failed to process review: %w", err)
		}

		if err := questions.UpdateSchedule(ctx, next); err != nil {
			return fmt.Errorf("failed to save schedule: %w", err)
		}

		updated = next
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("question not found for review")
			return nil, store.ErrQuestionNotFound
		}
		if errors.Is(err, domain.ErrInvalidDifficulty) {
			return nil, err
		}
		log.Error("failed to submit review", slog.String("error", err.Error()))
		return nil, NewSubmitReviewError("failed to update question", err)
	}

	log.Debug("question rescheduled",
		slog.String("difficulty", difficulty.String()),
		slog.Float64("ease_factor", updated.EaseFactor),
		slog.Int("interval", updated.Interval),
		slog.Time("next_review_at", updated.NextReviewAt))

	result := &Result{Question: updated}

	stats, err := s.recordActivity(ctx, userID, now)
	if err != nil {
		log.Error("question updated but statistics update failed", slog.String("error", err.Error()))
		return result, &StatsUpdateError{UserID: userID, Err: err}
	}

	result.Stats = stats
	result.StatsUpdated = true
	return result, nil
}

// RecordActivity implements Service.RecordActivity.
func (s *serviceImpl) RecordActivity(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	stats, err := s.recordActivity(ctx, userID, s.now())
	if err != nil {
		log.Error("failed to record activity",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewRecordActivityError("failed to update statistics", err)
	}
	return stats, nil
}

// recordActivity applies one review to the owner's statistics record in its
// own transaction. The row lock serialises concurrent reviews by the same user.
func (s *serviceImpl) recordActivity(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*domain.UserStats, error) {
	var updated *domain.UserStats
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		statsStore := s.stats.WithTx(tx)

		if err := statsStore.EnsureExists(ctx, userID); err != nil {
			return fmt.Errorf("failed to create statistics record: %w", err)
		}

		stats, err := statsStore.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock statistics record: %w", err)
		}

		progress.RecordReview(stats, now, s.loc)

		if err := statsStore.Update(ctx, stats); err != nil {
			return fmt.Errorf("failed to save statistics: %w", err)
		}

		updated = stats
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetQueue implements Service.GetQueue.
func (s *serviceImpl) GetQueue(
	ctx context.Context,
	userID uuid.UUID,
	scope progress.Scope,
) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := s.now()
	scope = scope.Effective()

	questions, err := s.questions.Query(ctx, userID, store.QuestionFilter{
		SubjectID:     scope.SubjectID,
		TopicID:       scope.TopicID,
		DisplayableAt: now,
	})
	if err != nil {
		log.Error("failed to load review queue",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewGetQueueError("failed to load questions", err)
	}

	return srs.FilterDisplayable(questions, now), nil
}
