package progress

import (
	"time"

	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// DefaultTrendDays is the length of the activity trend shown on dashboards.
const DefaultTrendDays = 7

// TrendPoint is one day of the activity trend.
type TrendPoint struct {
	Date              string `json:"date"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	DayOfWeek         string `json:"dayOfWeek"`
}

// Trend returns one point per calendar day for the last days days ending
// today, oldest first. Days without activity report zero.
func Trend(log *domain.ActivityLog, now time.Time, days int, tz *time.Location) []TrendPoint {
	if days < 1 {
		days = DefaultTrendDays
	}
	if tz == nil {
		tz = time.UTC
	}

	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := AddDays(now, -i, tz)
		local := day.In(tz)
		points = append(points, TrendPoint{
			Date:              local.Format("2006-01-02"),
			QuestionsAnswered: log.Count(day),
			DayOfWeek:         local.Format("Mon"),
		})
	}
	return points
}

// DailyAttempted returns the number of reviews recorded today.
func DailyAttempted(log *domain.ActivityLog, now time.Time, tz *time.Location) int {
	return log.Count(DayStart(now, tz))
}
