package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// QuestionFilter narrows a question query. Zero-valued fields are ignored.
// When both SubjectID and TopicID are set, only TopicID is applied.
type QuestionFilter struct {
	SubjectID uuid.UUID
	TopicID   uuid.UUID

	// DisplayableAt, when non-zero, restricts results to questions that are
	// new or whose next review time is at or before this instant.
	DisplayableAt time.Time
}

// QuestionStore defines the interface for question persistence.
type QuestionStore interface {
	// Create saves a new question.
	// Returns validation errors from the domain Question if data is invalid.
	Create(ctx context.Context, q *domain.Question) error

	// GetOwned retrieves a question by ID, but only if it belongs to ownerID.
	// Returns ErrQuestionNotFound when the question does not exist or is owned
	// by someone else.
	GetOwned(ctx context.Context, ownerID, questionID uuid.UUID) (*domain.Question, error)

	// GetOwnedForUpdate is GetOwned with a row-level lock (SELECT ... FOR UPDATE).
	// It must be called inside a transaction.
	GetOwnedForUpdate(ctx context.Context, ownerID, questionID uuid.UUID) (*domain.Question, error)

	// UpdateSchedule persists the scheduling fields of a question.
	// Returns ErrQuestionNotFound if the row does not exist.
	UpdateSchedule(ctx context.Context, q *domain.Question) error

	// Query lists the owner's questions matching filter. Results are ordered
	// new questions first, then by next review time ascending.
	Query(ctx context.Context, ownerID uuid.UUID, filter QuestionFilter) ([]*domain.Question, error)

	// WithTx returns a QuestionStore that runs against the given transaction.
	WithTx(tx *sql.Tx) QuestionStore
}
