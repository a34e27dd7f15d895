package event

import (
	"context"

	"github.com/eventcal/scheduler/internal/domain"
)

// List returns every event ordered by (start_date ASC, start_time ASC).
// No pagination and no server-side filtering beyond that ordering contract.
func (s *Service) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ListRange returns events whose start_date falls within the inclusive
// [startDate, endDate] interval, compared lexicographically on the ISO date
// strings. end_date is not considered: an event spanning into the range but
// starting outside it is excluded.
func (s *Service) ListRange(ctx context.Context, startDate, endDate string) ([]*domain.Event, error) {
	return s.repo.ListRange(ctx, startDate, endDate)
}
