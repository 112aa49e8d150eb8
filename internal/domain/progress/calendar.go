package progress

import "time"

// DayStart returns the start of the calendar day containing now in tz,
// converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	if tz == nil {
		tz = time.UTC
	}
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// AddDays returns the start of the calendar day n days after the day
// containing t in tz, converted to UTC. n may be negative.
func AddDays(t time.Time, n int, tz *time.Location) time.Time {
	if tz == nil {
		tz = time.UTC
	}
	// AddDate handles DST correctly, Add(24h) does not
	shifted := DayStart(t, tz).In(tz).AddDate(0, 0, n)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, tz).UTC()
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
