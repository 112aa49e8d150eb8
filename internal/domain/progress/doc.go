// Package progress derives learning progress from questions and the per-user
// statistics record: calendar-day arithmetic, the daily streak tracker, and
// the dashboard aggregates (due counts, retention, activity trend).
//
// Every function takes the current time explicitly so results are
// deterministic for a given input.
package progress
