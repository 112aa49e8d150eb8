package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scheduling defaults applied to newly created questions.
const (
	DefaultEaseFactor = 2.5
	DefaultInterval   = 1
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 3.0
)

// Common validation errors for Question
var (
	ErrEmptyQuestionID   = errors.New("question ID cannot be empty")
	ErrEmptyOwnerID      = errors.New("question owner ID cannot be empty")
	ErrEmptySubjectID    = errors.New("question subject ID cannot be empty")
	ErrEmptyTopicID      = errors.New("question topic ID cannot be empty")
	ErrInvalidInterval   = errors.New("interval must be greater than or equal to 1")
	ErrInvalidEaseFactor = errors.New("ease factor must be between 1.3 and 3.0")
	ErrInvalidReviews    = errors.New("review count cannot be negative")
)

// Question is a reviewable item owned by a single user, together with its
// spaced-repetition scheduling state.
type Question struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	TopicID   uuid.UUID `json:"topic_id"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`

	EaseFactor     float64     `json:"ease_factor"`
	Interval       int         `json:"interval"` // days
	ReviewCount    int         `json:"review_count"`
	LastDifficulty *Difficulty `json:"last_difficulty,omitempty"`
	NextReviewAt   time.Time   `json:"next_review_at"`
	LastReviewedAt *time.Time  `json:"last_reviewed_at,omitempty"`
	IsNew          bool        `json:"is_new"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuestion creates a question with default scheduling state. The question
// is immediately eligible for review.
func NewQuestion(
	ownerID, subjectID, topicID uuid.UUID,
	content string,
	important bool,
	now time.Time,
) (*Question, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	q := &Question{
		ID:           id,
		OwnerID:      ownerID,
		SubjectID:    subjectID,
		TopicID:      topicID,
		Content:      content,
		Important:    important,
		EaseFactor:   DefaultEaseFactor,
		Interval:     DefaultInterval,
		ReviewCount:  0,
		NextReviewAt: now,
		IsNew:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
// Returns an error if any field fails validation.
func (q *Question) Validate() error {
	if q.ID == uuid.Nil {
		return ErrEmptyQuestionID
	}
	if q.OwnerID == uuid.Nil {
		return ErrEmptyOwnerID
	}
	if q.SubjectID == uuid.Nil {
		return ErrEmptySubjectID
	}
	if q.TopicID == uuid.Nil {
		return ErrEmptyTopicID
	}
	if strings.TrimSpace(q.Content) == "" {
		return ErrEmptyContent
	}
	if q.Interval < 1 {
		return ErrInvalidInterval
	}
	if q.EaseFactor < MinEaseFactor || q.EaseFactor > MaxEaseFactor {
		return ErrInvalidEaseFactor
	}
	if q.ReviewCount < 0 {
		return ErrInvalidReviews
	}
	return nil
}

// Clone returns a deep copy of the question, so that callers can derive new
// scheduling state without mutating the original.
func (q *Question) Clone() *Question {
	c := *q
	if q.LastDifficulty != nil {
		d := *q.LastDifficulty
		c.LastDifficulty = &d
	}
	if q.LastReviewedAt != nil {
		t := *q.LastReviewedAt
		c.LastReviewedAt = &t
	}
	return &c
}
