package api

import (
	"time"

	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// SubmitReviewRequest defines the payload for the review endpoint.
// Difficulty is checked by the review service so that an unknown value
// yields the list of accepted ones.
type SubmitReviewRequest struct {
	QuestionID string `json:"questionId" validate:"required,uuid"`
	Difficulty string `json:"difficulty" validate:"required"`
}

// QuestionResponse is the client view of a question and its schedule.
type QuestionResponse struct {
	ID             string     `json:"id"`
	SubjectID      string     `json:"subjectId"`
	TopicID        string     `json:"topicId"`
	Content        string     `json:"content"`
	Important      bool       `json:"important"`
	EaseFactor     float64    `json:"easeFactor"`
	Interval       int        `json:"interval"`
	ReviewCount    int        `json:"reviewCount"`
	LastDifficulty *string    `json:"lastDifficulty"`
	NextReviewAt   time.Time  `json:"nextReviewAt"`
	LastReviewedAt *time.Time `json:"lastReviewedAt"`
	IsNew          bool       `json:"isNew"`
}

// UserStatsResponse is the client view of a user's streak record.
type UserStatsResponse struct {
	TotalQuestionsAnswered int                    `json:"totalQuestionsAnswered"`
	CurrentStreak          int                    `json:"currentStreak"`
	LongestStreak          int                    `json:"longestStreak"`
	LastActivityDate       *time.Time             `json:"lastActivityDate"`
	DailyActivity          []domain.DailyActivity `json:"dailyActivity"`
}

// ReviewResponse is returned by the review endpoint. On a statistics failure
// it is sent with a 500 status, Success false and the committed question.
type ReviewResponse struct {
	Success      bool               `json:"success"`
	Question     *QuestionResponse  `json:"question"`
	StatsUpdated bool               `json:"statsUpdated"`
	Stats        *UserStatsResponse `json:"stats,omitempty"`
	Message      string             `json:"message"`
	Error        string             `json:"error,omitempty"`
	TraceID      string             `json:"trace_id,omitempty"`
}

// ActivityResponse is returned by the activity endpoint.
type ActivityResponse struct {
	Success bool               `json:"success"`
	Stats   *UserStatsResponse `json:"stats"`
}

// QueueResponse lists the questions ready for review.
type QueueResponse struct {
	Success   bool               `json:"success"`
	Questions []QuestionResponse `json:"questions"`
	Count     int                `json:"count"`
}

func questionToResponse(q *domain.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	resp := &QuestionResponse{
		ID:             q.ID.String(),
		SubjectID:      q.SubjectID.String(),
		TopicID:        q.TopicID.String(),
		Content:        q.Content,
		Important:      q.Important,
		EaseFactor:     q.EaseFactor,
		Interval:       q.Interval,
		ReviewCount:    q.ReviewCount,
		NextReviewAt:   q.NextReviewAt,
		LastReviewedAt: q.LastReviewedAt,
		IsNew:          q.IsNew,
	}
	if q.LastDifficulty != nil {
		d := q.LastDifficulty.String()
		resp.LastDifficulty = &d
	}
	return resp
}

func userStatsToResponse(s *domain.UserStats) *UserStatsResponse {
	if s == nil {
		return nil
	}
	return &UserStatsResponse{
		TotalQuestionsAnswered: s.TotalQuestionsAnswered,
		CurrentStreak:          s.CurrentStreak,
		LongestStreak:          s.LongestStreak,
		LastActivityDate:       s.LastActivityDate,
		DailyActivity:          s.DailyActivity.Entries(),
	}
}
