package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// Common errors
var (
	ErrNilQuestion = errors.New("question cannot be nil")

	// ErrInvalidDifficulty wraps domain.ErrInvalidDifficulty so callers can
	// match either.
	ErrInvalidDifficulty = fmt.Errorf("srs: %w", domain.ErrInvalidDifficulty)
)

// Service defines the interface for SRS algorithm operations
type Service interface {
	// ProcessReview computes the post-review state of a question. The input
	// question is not modified.
	ProcessReview(
		q *domain.Question,
		d domain.Difficulty,
		now time.Time,
	) (*domain.Question, error)

	// Params returns the parameters the service schedules with.
	Params() *Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// ProcessReview implements the Service interface
func (s *defaultService) ProcessReview(
	q *domain.Question,
	d domain.Difficulty,
	now time.Time,
) (*domain.Question, error) {
	if q == nil {
		return nil, ErrNilQuestion
	}

	if !d.Valid() {
		return nil, ErrInvalidDifficulty
	}

	return calculateNextQuestion(q, d, now, s.params), nil
}

// Params implements the Service interface
func (s *defaultService) Params() *Params {
	return s.params
}
