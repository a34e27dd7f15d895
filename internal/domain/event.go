package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single calendar entry. Dates are ISO 8601 YYYY-MM-DD strings and
// times are zero-padded HH:MM strings; both sort chronologically as plain
// strings, which is the comparison contract used by the store and the browser
// projection. No calendar arithmetic is performed anywhere.
type Event struct {
	ID           string
	Title        string
	Description  string
	StartDate    string
	EndDate      string
	StartTime    string
	EndTime      string
	CreatorName  string
	CreatorEmail string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// New validates the required field set and assembles a fresh event with a
// server-generated id and created_at = updated_at = now. Description and
// location may be empty. No ordering between start and end is enforced, and
// the creator email is not format-checked; both match the stored contract.
func New(title, description, startDate, endDate, startTime, endTime, creatorName, creatorEmail, location string, now time.Time) (*Event, error) {
	if title == "" || startDate == "" || endDate == "" || startTime == "" || endTime == "" || creatorName == "" || creatorEmail == "" {
		return nil, ErrValidation("Missing required fields")
	}

	t := now.UTC()
	return &Event{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		StartDate:    startDate,
		EndDate:      endDate,
		StartTime:    startTime,
		EndTime:      endTime,
		CreatorName:  creatorName,
		CreatorEmail: creatorEmail,
		Location:     location,
		CreatedAt:    t,
		UpdatedAt:    t,
	}, nil
}

// Overwrite replaces every mutable field with the supplied values and stamps
// updated_at. Unlike New it performs no required-field validation: an update
// may store empty required fields. Intentionally kept that way rather than
// guessing whether the surface meant to allow partial clearing.
func (e *Event) Overwrite(title, description, startDate, endDate, startTime, endTime, creatorName, creatorEmail, location string, now time.Time) {
	e.Title = title
	e.Description = description
	e.StartDate = startDate
	e.EndDate = endDate
	e.StartTime = startTime
	e.EndTime = endTime
	e.CreatorName = creatorName
	e.CreatorEmail = creatorEmail
	e.Location = location
	e.UpdatedAt = now.UTC()
}
