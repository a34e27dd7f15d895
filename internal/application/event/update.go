package event

import (
	"context"

	"github.com/eventcal/scheduler/internal/domain"
)

type UpdateCmd struct {
	EventID string

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

// Update overwrites every mutable field of the event with the command's
// values (fields not supplied arrive as empty strings and overwrite all the
// same) and stamps updated_at. Returns domain.ErrNotFound when no row with
// that id exists. There is no required-field validation on update and no
// conflict detection: concurrent updates are last-write-wins.
func (s *Service) Update(ctx context.Context, cmd UpdateCmd) error {
	e := &domain.Event{ID: cmd.EventID}
	e.Overwrite(cmd.Title, cmd.Description, cmd.StartDate, cmd.EndDate, cmd.StartTime, cmd.EndTime, cmd.CreatorName, cmd.CreatorEmail, cmd.Location, s.clock.Now())
	return s.repo.Update(ctx, e)
}
