package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// DefaultRetentionWindowDays is the look-back window for the retention rate.
const DefaultRetentionWindowDays = 30

// Scope narrows statistics to a subject or a topic. The zero value is the
// global scope. When both IDs are set the topic takes precedence.
type Scope struct {
	SubjectID uuid.UUID
	TopicID   uuid.UUID
}

// Effective returns the scope actually applied, with the subject dropped when
// a topic is present.
func (s Scope) Effective() Scope {
	if s.TopicID != uuid.Nil {
		return Scope{TopicID: s.TopicID}
	}
	return s
}

// Flags describes which kind of scope a result was computed for.
type Flags struct {
	IsGlobal          bool `json:"isGlobal"`
	IsSubjectSpecific bool `json:"isSubjectSpecific"`
	IsTopicSpecific   bool `json:"isTopicSpecific"`
}

// Flags reports the scope kind.
func (s Scope) Flags() Flags {
	e := s.Effective()
	return Flags{
		IsGlobal:          e.SubjectID == uuid.Nil && e.TopicID == uuid.Nil,
		IsSubjectSpecific: e.SubjectID != uuid.Nil,
		IsTopicSpecific:   e.TopicID != uuid.Nil,
	}
}

// Summary holds the item-derived dashboard counters.
type Summary struct {
	TotalQuestions  int `json:"totalQuestions"`
	DueQuestions    int `json:"dueQuestions"`
	NewQuestions    int `json:"newQuestions"`
	ReviewQuestions int `json:"reviewQuestions"`
	RetentionRate   int `json:"retentionRate"`
}

// Summarize computes counts and the retention rate over items at now.
//
// An item is due when its next review time is at or before now. Retention is
// the rounded percentage of items reviewed within the last windowDays days
// whose most recent difficulty was "medium" or "easy"; it is 0 when no items
// qualify. A non-positive window uses DefaultRetentionWindowDays.
func Summarize(items []*domain.Question, now time.Time, windowDays int) Summary {
	if windowDays <= 0 {
		windowDays = DefaultRetentionWindowDays
	}
	windowStart := now.AddDate(0, 0, -windowDays)

	var s Summary
	var recent, successful int
	for _, q := range items {
		s.TotalQuestions++

		if !q.NextReviewAt.After(now) {
			s.DueQuestions++
			if q.IsNew {
				s.NewQuestions++
			} else {
				s.ReviewQuestions++
			}
		}

		if reviewedSince(q, windowStart) {
			recent++
			if q.LastDifficulty != nil && q.LastDifficulty.Successful() {
				successful++
			}
		}
	}

	s.RetentionRate = retentionRate(successful, recent)
	return s
}

// PeriodStats summarises review outcomes over a trailing number of days.
type PeriodStats struct {
	Period            string `json:"period"`
	TotalReviewed     int    `json:"totalReviewed"`
	SuccessfulReviews int    `json:"successfulReviews"`
	RetentionRate     int    `json:"retentionRate"`
}

// SummarizePeriod counts items last reviewed since the start of the calendar
// day that is days days before now in tz.
func SummarizePeriod(items []*domain.Question, now time.Time, days int, tz *time.Location) PeriodStats {
	if days < 1 {
		days = 1
	}
	start := AddDays(now, -days, tz)

	ps := PeriodStats{Period: fmt.Sprintf("%d days", days)}
	for _, q := range items {
		if !reviewedSince(q, start) {
			continue
		}
		ps.TotalReviewed++
		if q.LastDifficulty != nil && q.LastDifficulty.Successful() {
			ps.SuccessfulReviews++
		}
	}
	ps.RetentionRate = retentionRate(ps.SuccessfulReviews, ps.TotalReviewed)
	return ps
}

func reviewedSince(q *domain.Question, since time.Time) bool {
	return q.ReviewCount > 0 && q.LastReviewedAt != nil && !q.LastReviewedAt.Before(since)
}

func retentionRate(successful, total int) int {
	if total == 0 {
		return 0
	}
	rate := int(math.Round(float64(successful) / float64(total) * 100))
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
