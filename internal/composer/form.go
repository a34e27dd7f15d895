package composer

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eventcal/scheduler/internal/client"
)

const (
	msgCreated      = "Event created successfully!"
	msgCreateFailed = "Failed to create event. Please try again."
)

var validate = validator.New()

// EventCreator is the write side the composer needs from the API client.
type EventCreator interface {
	CreateEvent(ctx context.Context, in client.EventInput) (*client.Event, error)
}

// Fields mirrors the server's required-field set. The tags give fast local
// feedback only; the server remains the authority.
type Fields struct {
	Title        string `validate:"required"`
	Description  string
	StartDate    string `validate:"required"`
	EndDate      string `validate:"required"`
	StartTime    string `validate:"required"`
	EndTime      string `validate:"required"`
	CreatorName  string `validate:"required"`
	CreatorEmail string `validate:"required"`
	Location     string
}

// Message is the user-facing outcome of the last submit.
type Message struct {
	Type string // "success" or "error"
	Text string
}

// Form collects event input. A successful submit clears it back to defaults
// (today's dates, everything else empty); a failed one preserves the input so
// the user can correct and resubmit.
type Form struct {
	Fields  Fields
	Message Message
}

func NewForm(now time.Time) *Form {
	f := &Form{}
	f.Reset(now)
	return f
}

func (f *Form) Reset(now time.Time) {
	today := now.Format("2006-01-02")
	f.Fields = Fields{StartDate: today, EndDate: today}
}

// Validate runs the client-side mirror of server validation.
func (f *Form) Validate() error {
	return validate.Struct(f.Fields)
}

// Submit validates locally, posts the full payload, and updates Message. The
// server's error message is surfaced verbatim when present, else a generic
// fallback; the form is only cleared on success.
func (f *Form) Submit(ctx context.Context, creator EventCreator, now time.Time) (*client.Event, error) {
	if err := f.Validate(); err != nil {
		f.Message = Message{Type: "error", Text: "Missing required fields"}
		return nil, err
	}

	ev, err := creator.CreateEvent(ctx, client.EventInput{
		Title:        f.Fields.Title,
		Description:  f.Fields.Description,
		StartDate:    f.Fields.StartDate,
		EndDate:      f.Fields.EndDate,
		StartTime:    f.Fields.StartTime,
		EndTime:      f.Fields.EndTime,
		CreatorName:  f.Fields.CreatorName,
		CreatorEmail: f.Fields.CreatorEmail,
		Location:     f.Fields.Location,
	})
	if err != nil {
		text := msgCreateFailed
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			text = apiErr.Message
		}
		f.Message = Message{Type: "error", Text: text}
		return nil, err
	}

	f.Reset(now)
	f.Message = Message{Type: "success", Text: msgCreated}
	return ev, nil
}
