package event

import (
	"context"

	"github.com/eventcal/scheduler/internal/domain"
)

func (s *Service) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}
