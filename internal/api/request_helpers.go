package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
)

// defaultPeriodDays is used when the period parameter is present but not a
// positive number.
const defaultPeriodDays = 7

// getPathUUID extracts a UUID from the URL path parameters.
// It returns an error wrapping domain.ErrInvalidID if the parameter is
// missing or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getQueryUUID parses an optional UUID query parameter. An absent or empty
// parameter yields uuid.Nil.
func getQueryUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, name)
	}
	return id, nil
}

// parseScope reads the subjectId and topicId query parameters.
func parseScope(r *http.Request) (progress.Scope, error) {
	subjectID, err := getQueryUUID(r, "subjectId")
	if err != nil {
		return progress.Scope{}, err
	}
	topicID, err := getQueryUUID(r, "topicId")
	if err != nil {
		return progress.Scope{}, err
	}
	return progress.Scope{SubjectID: subjectID, TopicID: topicID}, nil
}

// parsePeriod reads the period query parameter as a number of days.
//
// An absent or empty parameter returns 0, meaning no period statistics. A
// value that is not a number, or is zero, returns defaultPeriodDays. Negative
// values are passed through for the stats service to reject.
func parsePeriod(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get("period"))
	if raw == "" {
		return 0
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days == 0 {
		return defaultPeriodDays
	}
	return days
}
