package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eventcal/scheduler/internal/application/event"
	"github.com/eventcal/scheduler/internal/config"
	"github.com/eventcal/scheduler/internal/domain"
	"github.com/eventcal/scheduler/internal/transport/http/handlers"
)

type stubClock struct{}

func (stubClock) Now() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }

type stubRepo struct{}

func (s *stubRepo) Create(ctx context.Context, e *domain.Event) error { return nil }
func (s *stubRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return &domain.Event{ID: id}, nil
}
func (s *stubRepo) Update(ctx context.Context, e *domain.Event) error { return nil }
func (s *stubRepo) Delete(ctx context.Context, id string) error       { return nil }
func (s *stubRepo) List(ctx context.Context) ([]*domain.Event, error) {
	return []*domain.Event{}, nil
}
func (s *stubRepo) ListRange(ctx context.Context, startDate, endDate string) ([]*domain.Event, error) {
	return []*domain.Event{}, nil
}

func newTestRouter() http.Handler {
	svc := event.New(&stubRepo{}, stubClock{})
	h := handlers.NewEventsHandler(svc)
	z := handlers.NewHealthHandler(stubClock{})
	cfg := &config.Config{
		RLEnabled:          false,
		CORSAllowedOrigins: []string{"*"},
	}
	return New(h, z, cfg)
}

func TestRouter_Routing(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{"GET", "/api/health", "", http.StatusOK},
		{"GET", "/api/events", "", http.StatusOK},
		{"GET", "/api/events/evt_1", "", http.StatusOK},
		{"GET", "/api/events/range/2025-01-01/2025-01-31", "", http.StatusOK},
		{"PUT", "/api/events/evt_1", `{"title":"x"}`, http.StatusOK},
		{"DELETE", "/api/events/evt_1", "", http.StatusOK},
		{"GET", "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+"_"+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestRouter_SetsRequestIDHeader(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest("GET", "/api/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}
