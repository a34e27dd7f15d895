package event

import (
	"context"
	"time"

	"github.com/eventcal/scheduler/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// EventRepo is the single-table event store. List and ListRange return rows
// ordered by (start_date ASC, start_time ASC). Update and Delete return
// domain.ErrNotFound when no row matches the id.
type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]*domain.Event, error)
	ListRange(ctx context.Context, startDate, endDate string) ([]*domain.Event, error)
}
