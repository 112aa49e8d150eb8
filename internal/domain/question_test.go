package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewQuestion(t *testing.T) {
	owner, subject, topic := uuid.New(), uuid.New(), uuid.New()
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	q, err := NewQuestion(owner, subject, topic, "What is a monad?", true, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if q.ID == uuid.Nil {
		t.Error("Expected non-nil ID")
	}
	if q.OwnerID != owner || q.SubjectID != subject || q.TopicID != topic {
		t.Error("Expected ownership and classification IDs to be copied")
	}
	if !q.IsNew {
		t.Error("Expected new question to be marked new")
	}
	if q.ReviewCount != 0 {
		t.Errorf("Expected review count 0, got %d", q.ReviewCount)
	}
	if q.Interval != 1 {
		t.Errorf("Expected interval 1, got %d", q.Interval)
	}
	if q.EaseFactor != 2.5 {
		t.Errorf("Expected ease factor 2.5, got %f", q.EaseFactor)
	}
	if !q.NextReviewAt.Equal(now) {
		t.Errorf("Expected NextReviewAt %v, got %v", now, q.NextReviewAt)
	}
	if q.LastReviewedAt != nil || q.LastDifficulty != nil {
		t.Error("Expected no review history")
	}
}

func TestNewQuestion_Invalid(t *testing.T) {
	now := time.Now().UTC()
	tests := []struct {
		name    string
		owner   uuid.UUID
		subject uuid.UUID
		topic   uuid.UUID
		content string
		want    error
	}{
		{"missing owner", uuid.Nil, uuid.New(), uuid.New(), "q", ErrEmptyOwnerID},
		{"missing subject", uuid.New(), uuid.Nil, uuid.New(), "q", ErrEmptySubjectID},
		{"missing topic", uuid.New(), uuid.New(), uuid.Nil, "q", ErrEmptyTopicID},
		{"blank content", uuid.New(), uuid.New(), uuid.New(), "   ", ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuestion(tt.owner, tt.subject, tt.topic, tt.content, false, now)
			if err != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestQuestionValidate_Ranges(t *testing.T) {
	base, err := NewQuestion(uuid.New(), uuid.New(), uuid.New(), "q", false, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	q := base.Clone()
	q.Interval = 0
	if err := q.Validate(); err != ErrInvalidInterval {
		t.Errorf("Expected ErrInvalidInterval, got %v", err)
	}

	q = base.Clone()
	q.EaseFactor = 1.29
	if err := q.Validate(); err != ErrInvalidEaseFactor {
		t.Errorf("Expected ErrInvalidEaseFactor, got %v", err)
	}

	q = base.Clone()
	q.EaseFactor = 3.01
	if err := q.Validate(); err != ErrInvalidEaseFactor {
		t.Errorf("Expected ErrInvalidEaseFactor, got %v", err)
	}

	q = base.Clone()
	q.ReviewCount = -1
	if err := q.Validate(); err != ErrInvalidReviews {
		t.Errorf("Expected ErrInvalidReviews, got %v", err)
	}
}

func TestQuestionClone_IsDeep(t *testing.T) {
	d := DifficultyHard
	reviewed := time.Now()
	q := &Question{LastDifficulty: &d, LastReviewedAt: &reviewed}

	c := q.Clone()
	*c.LastDifficulty = DifficultyEasy
	*c.LastReviewedAt = reviewed.Add(time.Hour)

	if *q.LastDifficulty != DifficultyHard {
		t.Error("Expected original difficulty to be unchanged")
	}
	if !q.LastReviewedAt.Equal(reviewed) {
		t.Error("Expected original review time to be unchanged")
	}
}
