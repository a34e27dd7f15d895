package event

import "context"

// Delete removes the row outright. Hard delete, no tombstone; deleting the
// same id twice yields domain.ErrNotFound on the second call.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
