package progress

import (
	"time"

	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// RecordReview applies one completed review to a user's statistics record.
//
// The total is incremented and today's activity entry is created or
// incremented. The streak continues when the previous activity was
// yesterday, is left unchanged for a second review on the same day, and
// restarts at 1 after a gap or for a first-ever review. The longest streak
// never decreases.
func RecordReview(stats *domain.UserStats, now time.Time, tz *time.Location) {
	today := DayStart(now, tz)

	stats.TotalQuestionsAnswered++
	stats.DailyActivity.Record(today)

	switch {
	case stats.LastActivityDate == nil:
		stats.CurrentStreak = 1
	default:
		last := DayStart(*stats.LastActivityDate, tz)
		switch {
		case last.Equal(today):
		case last.Equal(AddDays(today, -1, tz)):
			stats.CurrentStreak++
		default:
			stats.CurrentStreak = 1
		}
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	stats.LastActivityDate = &today
	stats.UpdatedAt = now
}
