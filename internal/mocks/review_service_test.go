package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
	"github.com/keshavkumar4699/cloro-questions/internal/service/review"
	"github.com/stretchr/testify/assert"
)

func TestMockReviewService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	questionID := uuid.New()

	t.Run("default values", func(t *testing.T) {
		result := &review.Result{StatsUpdated: true}
		m := &MockReviewService{Result: result}

		got, err := m.SubmitReview(ctx, userID, questionID, "easy")

		assert.NoError(t, err)
		assert.Same(t, result, got)
		assert.Equal(t, 1, m.SubmitReviewCount())
		assert.Equal(t, []string{"easy"}, m.SubmitReviewCalls.Difficulties)
		assert.Equal(t, []uuid.UUID{questionID}, m.SubmitReviewCalls.QuestionIDs)
	})

	t.Run("custom function takes precedence", func(t *testing.T) {
		wantErr := errors.New("boom")
		m := &MockReviewService{
			Stats: &domain.UserStats{UserID: userID},
			RecordActivityFn: func(ctx context.Context, id uuid.UUID) (*domain.UserStats, error) {
				return nil, wantErr
			},
		}

		got, err := m.RecordActivity(ctx, userID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 1, m.RecordActivityCalls.Count)
	})

	t.Run("queue records scope", func(t *testing.T) {
		scope := progress.Scope{TopicID: uuid.New()}
		m := &MockReviewService{}

		_, err := m.GetQueue(ctx, userID, scope)

		assert.NoError(t, err)
		assert.Equal(t, []progress.Scope{scope}, m.GetQueueCalls.Scopes)
	})
}
