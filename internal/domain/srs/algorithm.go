package srs

import (
	"math"
	"time"

	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// easePrecision is the number of decimal places ease factors are kept to.
const easePrecision = 1e4

// CalculateEaseFactor determines the new ease factor for a review.
//
// The ease factor is a per-question multiplier: higher values make intervals
// grow faster. A current value that is NaN or outside the configured bounds is
// treated as the default before the adjustment is applied. The result is
// clamped to [MinEaseFactor, MaxEaseFactor] and rounded to four decimal places
// so that repeated reviews do not accumulate binary drift.
//
// Adjustments with default params:
//   - "no idea": -0.20
//   - "hard":    -0.15
//   - "medium":   0.00
//   - "easy":    +0.15
func CalculateEaseFactor(current float64, d domain.Difficulty, params *Params) (float64, error) {
	if !d.Valid() {
		return 0, ErrInvalidDifficulty
	}
	return calculateNewEaseFactor(current, d, params), nil
}

func calculateNewEaseFactor(current float64, d domain.Difficulty, params *Params) float64 {
	if math.IsNaN(current) || !params.validEase(current) {
		current = params.DefaultEaseFactor
	}

	newEF := current + params.EaseFactorAdjustment[d]

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}
	if newEF > params.MaxEaseFactor {
		newEF = params.MaxEaseFactor
	}

	return math.Round(newEF*easePrecision) / easePrecision
}

// CalculateInterval determines the number of days until the next review.
//
// Algorithm behavior:
//   - "no idea" always resets the interval to 1 day
//   - a first review, or a current interval of 1 day or less, uses the base
//     interval for the difficulty (1, 2, 5 or 10 days by default)
//   - otherwise the interval grows to round(current * ease), never dropping
//     below the base interval for the difficulty
//
// A current interval below 1 is treated as 1, and an invalid ease is treated
// as the default ease.
func CalculateInterval(
	current int,
	easeFactor float64,
	d domain.Difficulty,
	isFirstReview bool,
	params *Params,
) (int, error) {
	if !d.Valid() {
		return 0, ErrInvalidDifficulty
	}
	return calculateNewInterval(current, easeFactor, d, isFirstReview, params), nil
}

func calculateNewInterval(
	current int,
	easeFactor float64,
	d domain.Difficulty,
	isFirstReview bool,
	params *Params,
) int {
	if current < 1 {
		current = 1
	}
	if math.IsNaN(easeFactor) || !params.validEase(easeFactor) {
		easeFactor = params.DefaultEaseFactor
	}

	if d == domain.DifficultyNoIdea {
		return 1
	}

	base := params.BaseIntervals[d]
	if base < 1 {
		base = 1
	}

	if isFirstReview || current <= 1 {
		return base
	}

	// Snap the product to 6 decimal places first so that values such as
	// 26.4999999999 round the same way as their decimal form.
	grown := math.Round(float64(current)*easeFactor*1e6) / 1e6
	next := int(math.Round(grown))
	if next < base {
		return base
	}
	return next
}

// CalculateNextReviewDate returns from advanced by the given number of
// calendar days. A day count below 1 is treated as 1, and a zero from time
// is treated as the current time.
func CalculateNextReviewDate(days int, from time.Time) time.Time {
	if from.IsZero() {
		from = time.Now()
	}
	return calculateNextReviewDate(days, from)
}

func calculateNextReviewDate(days int, from time.Time) time.Time {
	if days < 1 {
		days = 1
	}
	return from.AddDate(0, 0, days)
}

// calculateNextQuestion derives the post-review state of a question.
// The input is never modified.
func calculateNextQuestion(
	q *domain.Question,
	d domain.Difficulty,
	now time.Time,
	params *Params,
) *domain.Question {
	next := q.Clone()

	next.ReviewCount = q.ReviewCount + 1
	isFirstReview := next.ReviewCount == 1

	next.EaseFactor = calculateNewEaseFactor(q.EaseFactor, d, params)
	next.Interval = calculateNewInterval(q.Interval, next.EaseFactor, d, isFirstReview, params)
	next.NextReviewAt = calculateNextReviewDate(next.Interval, now)

	reviewedAt := now
	next.LastReviewedAt = &reviewedAt
	difficulty := d
	next.LastDifficulty = &difficulty
	next.IsNew = false
	next.UpdatedAt = now

	return next
}
