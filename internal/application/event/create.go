package event

import (
	"context"

	"github.com/eventcal/scheduler/internal/domain"
)

type CreateCmd struct {
	Title        string
	Description  string
	StartDate    string
	EndDate      string
	StartTime    string
	EndTime      string
	CreatorName  string
	CreatorEmail string
	Location     string
}

// Create rejects the command when any required field is empty, otherwise
// persists a fresh event and returns the full stored record including the
// server-assigned id and timestamps.
func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Event, error) {
	e, err := domain.New(cmd.Title, cmd.Description, cmd.StartDate, cmd.EndDate, cmd.StartTime, cmd.EndTime, cmd.CreatorName, cmd.CreatorEmail, cmd.Location, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
