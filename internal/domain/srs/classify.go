package srs

import (
	"time"

	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// State is the review eligibility of a question at a point in time.
type State int

// Question states. A question that is both new and due reports StateNew.
const (
	StateFuture State = iota
	StateDue
	StateNew
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateDue:
		return "due"
	default:
		return "future"
	}
}

// IsNew reports whether the question is flagged new or has never been
// reviewed.
func IsNew(q *domain.Question) bool {
	return q.IsNew || q.ReviewCount == 0
}

// IsDue reports whether the question has no next review time or that time
// has arrived.
func IsDue(q *domain.Question, now time.Time) bool {
	return q.NextReviewAt.IsZero() || !q.NextReviewAt.After(now)
}

// IsDisplayable reports whether the question should be presented for review.
func IsDisplayable(q *domain.Question, now time.Time) bool {
	return IsNew(q) || IsDue(q, now)
}

// Classify returns the state of q at now.
func Classify(q *domain.Question, now time.Time) State {
	switch {
	case IsNew(q):
		return StateNew
	case IsDue(q, now):
		return StateDue
	default:
		return StateFuture
	}
}

// FilterDisplayable returns the questions that are New or Due at now,
// preserving their order.
func FilterDisplayable(qs []*domain.Question, now time.Time) []*domain.Question {
	out := make([]*domain.Question, 0, len(qs))
	for _, q := range qs {
		if IsDisplayable(q, now) {
			out = append(out, q)
		}
	}
	return out
}
