package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/keshavkumar4699/cloro-questions/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "questions",
		ColumnName:     "content",
		ConstraintName: "questions_ease_factor_range",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), store.ErrNotFound},
		{"unique violation", newPgError(uniqueViolationCode), store.ErrDuplicate},
		{"foreign key violation", newPgError(foreignKeyViolationCode), store.ErrInvalidEntity},
		{"check violation", newPgError(checkViolationCode), store.ErrInvalidEntity},
		{"not null violation", newPgError(notNullViolationCode), store.ErrInvalidEntity},
		{"unmapped pg error", newPgError("40001"), nil},
		{"plain error", plain, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tt.err)
			if tt.target == nil {
				assert.Equal(t, tt.err, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.target)
		})
	}

	assert.NoError(t, MapError(nil))
}

func TestMapError_IncludesConstraintName(t *testing.T) {
	t.Parallel()
	err := MapError(newPgError(checkViolationCode))
	assert.Contains(t, err.Error(), "questions_ease_factor_range")
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()
	assert.NoError(t, checkRowsAffected(sqlmock.NewResult(0, 1), store.ErrQuestionNotFound))
	assert.ErrorIs(t, checkRowsAffected(sqlmock.NewResult(0, 0), store.ErrQuestionNotFound), store.ErrQuestionNotFound)

	failing := sqlmock.NewErrorResult(errors.New("driver does not support RowsAffected"))
	err := checkRowsAffected(failing, store.ErrQuestionNotFound)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
