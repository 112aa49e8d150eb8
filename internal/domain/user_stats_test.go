package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestActivityLog_RecordIncrementsSameDay(t *testing.T) {
	var log ActivityLog
	log.Record(day(0))
	log.Record(day(0))
	log.Record(day(0))

	assert.Equal(t, 1, log.Len())
	assert.Equal(t, 3, log.Count(day(0)))
}

func TestActivityLog_OrderedMostRecentFirst(t *testing.T) {
	var log ActivityLog
	log.Record(day(2))
	log.Record(day(0))
	log.Record(day(5))
	log.Record(day(1))

	entries := log.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, day(5), entries[0].Date)
	assert.Equal(t, day(2), entries[1].Date)
	assert.Equal(t, day(1), entries[2].Date)
	assert.Equal(t, day(0), entries[3].Date)
}

func TestActivityLog_EvictsOldest(t *testing.T) {
	var log ActivityLog
	for i := 0; i < 31; i++ {
		log.Record(day(i))
	}

	require.Equal(t, ActivityLogCapacity, log.Len())
	entries := log.Entries()
	assert.Equal(t, day(30), entries[0].Date)
	assert.Equal(t, day(1), entries[ActivityLogCapacity-1].Date)
	assert.Equal(t, 0, log.Count(day(0)))

	// a day older than everything in a full log is not retained
	log.Record(day(-5))
	assert.Equal(t, ActivityLogCapacity, log.Len())
	assert.Equal(t, 0, log.Count(day(-5)))
}

func TestActivityLog_JSONRoundTrip(t *testing.T) {
	var log ActivityLog
	log.Record(day(3))
	log.Record(day(3))
	log.Record(day(1))

	data, err := json.Marshal(log)
	require.NoError(t, err)

	var decoded ActivityLog
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, log.Entries(), decoded.Entries())
}

func TestActivityLog_UnmarshalMergesAndTrims(t *testing.T) {
	entries := make([]DailyActivity, 0, 40)
	for i := 0; i < 35; i++ {
		entries = append(entries, DailyActivity{Date: day(i), QuestionsAnswered: 1})
	}
	entries = append(entries, DailyActivity{Date: day(34), QuestionsAnswered: 2})
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	var log ActivityLog
	require.NoError(t, json.Unmarshal(data, &log))

	assert.Equal(t, ActivityLogCapacity, log.Len())
	assert.Equal(t, 3, log.Count(day(34)))
	assert.Equal(t, 0, log.Count(day(4)))
	assert.Equal(t, 1, log.Count(day(5)))
}

func TestActivityLog_UnmarshalNull(t *testing.T) {
	var log ActivityLog
	require.NoError(t, json.Unmarshal([]byte("null"), &log))
	assert.Equal(t, 0, log.Len())
}

func TestNewUserStats(t *testing.T) {
	_, err := NewUserStats(uuid.Nil)
	assert.ErrorIs(t, err, ErrEmptyStatsUserID)

	s, err := NewUserStats(uuid.New())
	require.NoError(t, err)
	assert.Zero(t, s.CurrentStreak)
	assert.Nil(t, s.LastActivityDate)
	assert.Equal(t, 0, s.DailyActivity.Len())
}
