package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockQuestionStore(t *testing.T) (*PostgresQuestionStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresQuestionStore(db, nil), mock
}

func questionRow(q *domain.Question) []driver.Value {
	var lastDifficulty, lastReviewed driver.Value
	if q.LastDifficulty != nil {
		lastDifficulty = string(*q.LastDifficulty)
	}
	if q.LastReviewedAt != nil {
		lastReviewed = *q.LastReviewedAt
	}
	return []driver.Value{
		q.ID.String(),
		q.OwnerID.String(),
		q.SubjectID.String(),
		q.TopicID.String(),
		q.Content,
		q.Important,
		q.EaseFactor,
		int64(q.Interval),
		int64(q.ReviewCount),
		lastDifficulty,
		q.NextReviewAt,
		lastReviewed,
		q.IsNew,
		q.CreatedAt,
		q.UpdatedAt,
	}
}

func sampleQuestion(t *testing.T) *domain.Question {
	t.Helper()
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	q, err := domain.NewQuestion(uuid.New(), uuid.New(), uuid.New(), "What is CAP?", true, now)
	require.NoError(t, err)
	return q
}

func TestNewPostgresQuestionStore_NilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresQuestionStore(nil, nil) })
}

func TestQuestionStore_GetOwned(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)

	mock.ExpectQuery(`SELECT (.+) FROM questions WHERE id = \$1 AND owner_id = \$2$`).
		WithArgs(q.ID, q.OwnerID).
		WillReturnRows(sqlmock.NewRows(questionColumns).AddRow(questionRow(q)...))

	got, err := s.GetOwned(context.Background(), q.OwnerID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, got.ID)
	assert.Equal(t, q.TopicID, got.TopicID)
	assert.True(t, got.IsNew)
	assert.Nil(t, got.LastDifficulty)
	assert.Nil(t, got.LastReviewedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionStore_GetOwnedForUpdate_ScansReviewState(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)
	d := domain.DifficultyHard
	reviewed := q.CreatedAt.Add(time.Hour)
	q.LastDifficulty = &d
	q.LastReviewedAt = &reviewed
	q.IsNew = false
	q.ReviewCount = 1

	mock.ExpectQuery(`SELECT (.+) FROM questions WHERE id = \$1 AND owner_id = \$2 FOR UPDATE`).
		WithArgs(q.ID, q.OwnerID).
		WillReturnRows(sqlmock.NewRows(questionColumns).AddRow(questionRow(q)...))

	got, err := s.GetOwnedForUpdate(context.Background(), q.OwnerID, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastDifficulty)
	assert.Equal(t, domain.DifficultyHard, *got.LastDifficulty)
	require.NotNil(t, got.LastReviewedAt)
	assert.True(t, reviewed.Equal(*got.LastReviewedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionStore_GetOwned_NotFoundOrNotOwned(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	owner, id := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM questions`).
		WithArgs(id, owner).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	_, err := s.GetOwned(context.Background(), owner, id)
	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionStore_GetOwned_DatabaseError(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(`SELECT (.+) FROM questions`).WillReturnError(dbErr)

	_, err := s.GetOwned(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, store.IsNotFoundError(err))
}

func TestQuestionStore_UpdateSchedule(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)
	d := domain.DifficultyEasy
	reviewed := q.CreatedAt.Add(time.Hour)
	q.LastDifficulty = &d
	q.LastReviewedAt = &reviewed
	q.IsNew = false
	q.ReviewCount = 1
	q.Interval = 10
	q.EaseFactor = 2.65

	mock.ExpectExec(`UPDATE questions SET ease_factor = \$1, interval_days = \$2, review_count = \$3, last_difficulty = \$4, next_review_at = \$5, last_reviewed_at = \$6, is_new = \$7, updated_at = \$8 WHERE id = \$9 AND owner_id = \$10`).
		WithArgs(2.65, 10, 1, "easy", sqlmock.AnyArg(), sqlmock.AnyArg(), false, sqlmock.AnyArg(), q.ID, q.OwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateSchedule(context.Background(), q))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionStore_UpdateSchedule_Missing(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)

	mock.ExpectExec(`UPDATE questions`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateSchedule(context.Background(), q)
	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionStore_UpdateSchedule_InvalidState(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)
	q.EaseFactor = 0.9

	err := s.UpdateSchedule(context.Background(), q)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrInvalidEaseFactor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionStore_Create(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)

	mock.ExpectExec(`INSERT INTO questions \(id,owner_id,subject_id,topic_id,content,important,ease_factor,interval_days,review_count,last_difficulty,next_review_at,last_reviewed_at,is_new,created_at,updated_at\) VALUES`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), q))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionStore_Create_Duplicate(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)

	mock.ExpectExec(`INSERT INTO questions`).WillReturnError(newPgError(uniqueViolationCode))

	err := s.Create(context.Background(), q)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestQuestionStore_Query(t *testing.T) {
	owner, subject, topic := uuid.New(), uuid.New(), uuid.New()
	now := time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filter  store.QuestionFilter
		pattern string
		args    []driver.Value
	}{
		{
			name:    "global",
			filter:  store.QuestionFilter{},
			pattern: `FROM questions WHERE owner_id = \$1 ORDER BY is_new DESC, next_review_at ASC, id ASC`,
			args:    []driver.Value{owner},
		},
		{
			name:    "subject",
			filter:  store.QuestionFilter{SubjectID: subject},
			pattern: `FROM questions WHERE owner_id = \$1 AND subject_id = \$2 ORDER BY`,
			args:    []driver.Value{owner, subject},
		},
		{
			name:    "topic wins over subject",
			filter:  store.QuestionFilter{SubjectID: subject, TopicID: topic},
			pattern: `FROM questions WHERE owner_id = \$1 AND topic_id = \$2 ORDER BY`,
			args:    []driver.Value{owner, topic},
		},
		{
			name:    "displayable only",
			filter:  store.QuestionFilter{TopicID: topic, DisplayableAt: now},
			pattern: `FROM questions WHERE owner_id = \$1 AND topic_id = \$2 AND \(is_new = \$3 OR review_count = \$4 OR next_review_at <= \$5\) ORDER BY`,
			args:    []driver.Value{owner, topic, true, 0, now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockQuestionStore(t)

			first := sampleQuestion(t)
			second := sampleQuestion(t)
			second.IsNew = false

			mock.ExpectQuery(tt.pattern).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(questionColumns).
					AddRow(questionRow(first)...).
					AddRow(questionRow(second)...))

			got, err := s.Query(context.Background(), owner, tt.filter)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, first.ID, got[0].ID)
			assert.Equal(t, second.ID, got[1].ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionStore_Query_RowError(t *testing.T) {
	s, mock := newMockQuestionStore(t)
	q := sampleQuestion(t)
	rowErr := errors.New("network blip")

	mock.ExpectQuery(`FROM questions`).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(questionRow(q)...).
			RowError(0, rowErr))

	_, err := s.Query(context.Background(), q.OwnerID, store.QuestionFilter{})
	assert.ErrorIs(t, err, rowErr)
}

func TestQuestionStore_WithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	s := NewPostgresQuestionStore(db, nil)
	q := sampleQuestion(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE questions`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, s.WithTx(tx).UpdateSchedule(context.Background(), q))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
