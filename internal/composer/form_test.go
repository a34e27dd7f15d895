package composer

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eventcal/scheduler/internal/client"
)

type stubCreator struct {
	created *client.Event
	err     error
	got     *client.EventInput
}

func (s *stubCreator) CreateEvent(ctx context.Context, in client.EventInput) (*client.Event, error) {
	s.got = &in
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func fill(f *Form) {
	f.Fields.Title = "Team Meeting"
	f.Fields.StartTime = "10:00"
	f.Fields.EndTime = "11:00"
	f.Fields.CreatorName = "John Doe"
	f.Fields.CreatorEmail = "john@example.com"
}

func TestNewForm_DefaultsToToday(t *testing.T) {
	now := time.Date(2025, 9, 20, 15, 0, 0, 0, time.UTC)
	f := NewForm(now)

	assert.Equal(t, "2025-09-20", f.Fields.StartDate)
	assert.Equal(t, "2025-09-20", f.Fields.EndDate)
	assert.Empty(t, f.Fields.Title)
}

func TestForm_Validate(t *testing.T) {
	now := time.Date(2025, 9, 20, 15, 0, 0, 0, time.UTC)

	t.Run("rejects_missing_required_fields", func(t *testing.T) {
		f := NewForm(now)
		assert.Error(t, f.Validate(), "dates are prefilled but the rest is required")
	})

	t.Run("passes_with_required_fields_set", func(t *testing.T) {
		f := NewForm(now)
		fill(f)
		assert.NoError(t, f.Validate())
	})

	t.Run("optional_fields_stay_optional", func(t *testing.T) {
		f := NewForm(now)
		fill(f)
		f.Fields.Description = ""
		f.Fields.Location = ""
		assert.NoError(t, f.Validate())
	})
}

func TestForm_Submit(t *testing.T) {
	now := time.Date(2025, 9, 20, 15, 0, 0, 0, time.UTC)

	t.Run("success_resets_form_to_defaults", func(t *testing.T) {
		creator := &stubCreator{created: &client.Event{ID: "evt_1"}}
		f := NewForm(now)
		fill(f)
		f.Fields.Location = "Room A"

		ev, err := f.Submit(context.Background(), creator, now)
		assert.NoError(t, err)
		assert.Equal(t, "evt_1", ev.ID)
		assert.Equal(t, "success", f.Message.Type)

		assert.Empty(t, f.Fields.Title, "form cleared")
		assert.Empty(t, f.Fields.Location)
		assert.Equal(t, "2025-09-20", f.Fields.StartDate, "dates back to today")

		assert.Equal(t, "Room A", creator.got.Location, "full payload was sent")
	})

	t.Run("local_validation_failure_never_hits_the_server", func(t *testing.T) {
		creator := &stubCreator{}
		f := NewForm(now)

		_, err := f.Submit(context.Background(), creator, now)
		assert.Error(t, err)
		assert.Nil(t, creator.got)
		assert.Equal(t, "error", f.Message.Type)
	})

	t.Run("server_error_message_surfaces_verbatim_and_preserves_input", func(t *testing.T) {
		creator := &stubCreator{err: &client.APIError{StatusCode: http.StatusBadRequest, Message: "Missing required fields"}}
		f := NewForm(now)
		fill(f)

		_, err := f.Submit(context.Background(), creator, now)
		assert.Error(t, err)
		assert.Equal(t, "Missing required fields", f.Message.Text)
		assert.Equal(t, "Team Meeting", f.Fields.Title, "form not cleared on failure")
	})

	t.Run("transport_error_falls_back_to_generic_message", func(t *testing.T) {
		creator := &stubCreator{err: errors.New("connection refused")}
		f := NewForm(now)
		fill(f)

		_, err := f.Submit(context.Background(), creator, now)
		assert.Error(t, err)
		assert.Equal(t, "Failed to create event. Please try again.", f.Message.Text)
		assert.Equal(t, "Team Meeting", f.Fields.Title)
	})
}
