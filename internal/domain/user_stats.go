package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ActivityLogCapacity is the number of distinct days retained in a user's
// activity log.
const ActivityLogCapacity = 30

// ErrEmptyStatsUserID is returned when a stats record has no user.
var ErrEmptyStatsUserID = errors.New("user stats user ID cannot be empty")

// DailyActivity is the number of reviews a user completed on one calendar day.
type DailyActivity struct {
	Date              time.Time `json:"date"`
	QuestionsAnswered int       `json:"questionsAnswered"`
}

// ActivityLog holds at most ActivityLogCapacity per-day entries, ordered most
// recent first, with unique dates. When full, recording a new day evicts the
// oldest entry.
//
// The zero value is an empty log ready for use.
type ActivityLog struct {
	entries [ActivityLogCapacity]DailyActivity
	n       int
}

// NewActivityLog builds a log from arbitrary entries. Entries with duplicate
// dates are merged, and only the most recent ActivityLogCapacity days are kept.
func NewActivityLog(entries []DailyActivity) ActivityLog {
	merged := make(map[time.Time]int, len(entries))
	for _, e := range entries {
		merged[e.Date] += e.QuestionsAnswered
	}

	days := make([]DailyActivity, 0, len(merged))
	for d, c := range merged {
		days = append(days, DailyActivity{Date: d, QuestionsAnswered: c})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})

	var log ActivityLog
	log.n = copy(log.entries[:], days)
	return log
}

// Len returns the number of days recorded.
func (l *ActivityLog) Len() int {
	return l.n
}

// Entries returns a copy of the recorded days, most recent first.
func (l *ActivityLog) Entries() []DailyActivity {
	out := make([]DailyActivity, l.n)
	copy(out, l.entries[:l.n])
	return out
}

// Count returns the number of reviews recorded on day, or 0.
func (l *ActivityLog) Count(day time.Time) int {
	for i := 0; i < l.n; i++ {
		if l.entries[i].Date.Equal(day) {
			return l.entries[i].QuestionsAnswered
		}
	}
	return 0
}

// Record adds one review on day. day must already be normalised to the start
// of a calendar day. An existing entry is incremented; otherwise a new entry
// is inserted in date order, evicting the oldest entry if the log is full.
func (l *ActivityLog) Record(day time.Time) {
	for i := 0; i < l.n; i++ {
		if l.entries[i].Date.Equal(day) {
			l.entries[i].QuestionsAnswered++
			return
		}
	}

	pos := 0
	for pos < l.n && l.entries[pos].Date.After(day) {
		pos++
	}
	if pos == ActivityLogCapacity {
		// older than everything in a full log
		return
	}

	last := l.n
	if last == ActivityLogCapacity {
		last--
	} else {
		l.n++
	}
	copy(l.entries[pos+1:last+1], l.entries[pos:last])
	l.entries[pos] = DailyActivity{Date: day, QuestionsAnswered: 1}
}

// MarshalJSON encodes the log as a JSON array, most recent day first.
func (l ActivityLog) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Entries())
}

// UnmarshalJSON decodes a JSON array of daily entries. A null value yields an
// empty log.
func (l *ActivityLog) UnmarshalJSON(data []byte) error {
	var entries []DailyActivity
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("%w: activity log: %v", ErrValidation, err)
	}
	*l = NewActivityLog(entries)
	return nil
}

// UserStats is the per-user learning statistics record maintained by the
// streak tracker.
type UserStats struct {
	UserID                 uuid.UUID   `json:"user_id"`
	TotalQuestionsAnswered int         `json:"total_questions_answered"`
	CurrentStreak          int         `json:"current_streak"`
	LongestStreak          int         `json:"longest_streak"`
	LastActivityDate       *time.Time  `json:"last_activity_date,omitempty"`
	DailyActivity          ActivityLog `json:"daily_activity"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

// NewUserStats returns an empty stats record for a user.
func NewUserStats(userID uuid.UUID) (*UserStats, error) {
	s := &UserStats{UserID: userID}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks if the UserStats has valid data.
func (s *UserStats) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStatsUserID
	}
	if s.TotalQuestionsAnswered < 0 || s.CurrentStreak < 0 || s.LongestStreak < 0 {
		return fmt.Errorf("%w: counters cannot be negative", ErrValidation)
	}
	return nil
}
