package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/keshavkumar4699/cloro-questions/internal/service/stats"
)

// MockStatsService implements stats.Service for testing
type MockStatsService struct {
	GetStatsFn func(ctx context.Context, userID uuid.UUID, req stats.Request) (*stats.Response, error)

	Response *stats.Response
	Err      error

	GetStatsCalls struct {
		mu       sync.Mutex
		Count    int
		UserIDs  []uuid.UUID
		Requests []stats.Request
	}
}

var _ stats.Service = (*MockStatsService)(nil)

// GetStats implements the stats.Service interface
func (m *MockStatsService) GetStats(
	ctx context.Context,
	userID uuid.UUID,
	req stats.Request,
) (*stats.Response, error) {
	m.GetStatsCalls.mu.Lock()
	m.GetStatsCalls.Count++
	m.GetStatsCalls.UserIDs = append(m.GetStatsCalls.UserIDs, userID)
	m.GetStatsCalls.Requests = append(m.GetStatsCalls.Requests, req)
	m.GetStatsCalls.mu.Unlock()

	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx, userID, req)
	}
	return m.Response, m.Err
}

// LastRequest returns the request of the most recent GetStats call.
func (m *MockStatsService) LastRequest() (stats.Request, bool) {
	m.GetStatsCalls.mu.Lock()
	defer m.GetStatsCalls.mu.Unlock()
	if len(m.GetStatsCalls.Requests) == 0 {
		return stats.Request{}, false
	}
	return m.GetStatsCalls.Requests[len(m.GetStatsCalls.Requests)-1], true
}
