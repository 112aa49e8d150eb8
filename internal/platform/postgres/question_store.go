package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
)

const questionsTable = "questions"

var questionColumns = []string{
	"id",
	"owner_id",
	"subject_id",
	"topic_id",
	"content",
	"important",
	"ease_factor",
	"interval_days",
	"review_count",
	"last_difficulty",
	"next_review_at",
	"last_reviewed_at",
	"is_new",
	"created_at",
	"updated_at",
}

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// WithTx implements store.QuestionStore.WithTx
func (s *PostgresQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return &PostgresQuestionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.QuestionStore.Create
func (s *PostgresQuestionStore) Create(ctx context.Context, q *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := q.Validate(); err != nil {
		log.Warn("question validation failed during create",
			slog.String("error", err.Error()),
			slog.String("question_id", q.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query, args, err := psql.Insert(questionsTable).
		Columns(questionColumns...).
		Values(
			q.ID,
			q.OwnerID,
			q.SubjectID,
			q.TopicID,
			q.Content,
			q.Important,
			q.EaseFactor,
			q.Interval,
			q.ReviewCount,
			nullDifficulty(q.LastDifficulty),
			q.NextReviewAt.UTC(),
			nullTime(q.LastReviewedAt),
			q.IsNew,
			q.CreatedAt.UTC(),
			q.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.String("question_id", q.ID.String()),
			slog.String("owner_id", q.OwnerID.String()))
		return MapError(err)
	}

	log.Debug("question created", slog.String("question_id", q.ID.String()))
	return nil
}

// GetOwned implements store.QuestionStore.GetOwned
func (s *PostgresQuestionStore) GetOwned(
	ctx context.Context,
	ownerID, questionID uuid.UUID,
) (*domain.Question, error) {
	return s.getOwned(ctx, ownerID, questionID, false)
}

// GetOwnedForUpdate implements store.QuestionStore.GetOwnedForUpdate
func (s *PostgresQuestionStore) GetOwnedForUpdate(
	ctx context.Context,
	ownerID, questionID uuid.UUID,
) (*domain.Question, error) {
	return s.getOwned(ctx, ownerID, questionID, true)
}

func (s *PostgresQuestionStore) getOwned(
	ctx context.Context,
	ownerID, questionID uuid.UUID,
	forUpdate bool,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := psql.Select(questionColumns...).
		From(questionsTable).
		Where(squirrel.Eq{"id": questionID}).
		Where(squirrel.Eq{"owner_id": ownerID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	q, err := scanQuestion(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found",
				slog.String("question_id", questionID.String()),
				slog.String("owner_id", ownerID.String()))
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question",
			slog.String("error", err.Error()),
			slog.String("question_id", questionID.String()))
		return nil, MapError(err)
	}

	return q, nil
}

// UpdateSchedule implements store.QuestionStore.UpdateSchedule
func (s *PostgresQuestionStore) UpdateSchedule(ctx context.Context, q *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := q.Validate(); err != nil {
		log.Warn("question validation failed during schedule update",
			slog.String("error", err.Error()),
			slog.String("question_id", q.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query, args, err := psql.Update(questionsTable).
		Set("ease_factor", q.EaseFactor).
		Set("interval_days", q.Interval).
		Set("review_count", q.ReviewCount).
		Set("last_difficulty", nullDifficulty(q.LastDifficulty)).
		Set("next_review_at", q.NextReviewAt.UTC()).
		Set("last_reviewed_at", nullTime(q.LastReviewedAt)).
		Set("is_new", q.IsNew).
		Set("updated_at", q.UpdatedAt.UTC()).
		Where(squirrel.Eq{"id": q.ID}).
		Where(squirrel.Eq{"owner_id": q.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update question schedule",
			slog.String("error", err.Error()),
			slog.String("question_id", q.ID.String()))
		return MapError(err)
	}

	if err := checkRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		return err
	}

	log.Debug("question schedule updated",
		slog.String("question_id", q.ID.String()),
		slog.Int("interval", q.Interval),
		slog.Time("next_review_at", q.NextReviewAt))
	return nil
}

// Query implements store.QuestionStore.Query
func (s *PostgresQuestionStore) Query(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.QuestionFilter,
) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := psql.Select(questionColumns...).
		From(questionsTable).
		Where(squirrel.Eq{"owner_id": ownerID})

	switch {
	case filter.TopicID != uuid.Nil:
		builder = builder.Where(squirrel.Eq{"topic_id": filter.TopicID})
	case filter.SubjectID != uuid.Nil:
		builder = builder.Where(squirrel.Eq{"subject_id": filter.SubjectID})
	}

	if !filter.DisplayableAt.IsZero() {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"is_new": true},
			squirrel.Eq{"review_count": 0},
			squirrel.LtOrEq{"next_review_at": filter.DisplayableAt.UTC()},
		})
	}

	query, args, err := builder.
		OrderBy("is_new DESC", "next_review_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query questions",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var questions []*domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, MapError(err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("questions queried",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(questions)))
	return questions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var (
		q              domain.Question
		lastDifficulty sql.NullString
		lastReviewedAt sql.NullTime
	)

	err := row.Scan(
		&q.ID,
		&q.OwnerID,
		&q.SubjectID,
		&q.TopicID,
		&q.Content,
		&q.Important,
		&q.EaseFactor,
		&q.Interval,
		&q.ReviewCount,
		&lastDifficulty,
		&q.NextReviewAt,
		&lastReviewedAt,
		&q.IsNew,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastDifficulty.Valid {
		d := domain.Difficulty(lastDifficulty.String)
		q.LastDifficulty = &d
	}
	if lastReviewedAt.Valid {
		t := lastReviewedAt.Time
		q.LastReviewedAt = &t
	}

	return &q, nil
}

func nullDifficulty(d *domain.Difficulty) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*d), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
