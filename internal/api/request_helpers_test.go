package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
	"github.com/keshavkumar4699/cloro-questions/internal/domain/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithPathParam(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathUUID(t *testing.T) {
	id := uuid.New()

	got, err := getPathUUID(requestWithPathParam("userID", id.String()), "userID")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "not-a-uuid", uuid.Nil.String()} {
		_, err := getPathUUID(requestWithPathParam("userID", bad), "userID")
		assert.ErrorIs(t, err, domain.ErrInvalidID, "value %q", bad)
	}
}

func TestParseScope(t *testing.T) {
	subjectID := uuid.New()
	topicID := uuid.New()

	tests := []struct {
		name    string
		query   string
		want    progress.Scope
		wantErr bool
	}{
		{name: "global", query: "", want: progress.Scope{}},
		{name: "subject", query: "?subjectId=" + subjectID.String(), want: progress.Scope{SubjectID: subjectID}},
		{
			name:  "subject and topic",
			query: "?subjectId=" + subjectID.String() + "&topicId=" + topicID.String(),
			want:  progress.Scope{SubjectID: subjectID, TopicID: topicID},
		},
		{name: "bad topic", query: "?topicId=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats"+tt.query, nil)
			got, err := parseScope(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"?period=", 0},
		{"?period=30", 30},
		{"?period=week", defaultPeriodDays},
		{"?period=0", defaultPeriodDays},
		{"?period=-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats"+tt.query, nil)
			assert.Equal(t, tt.want, parsePeriod(req))
		})
	}
}
