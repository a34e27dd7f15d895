package browser

import (
	"context"
	"time"

	"github.com/eventcal/scheduler/internal/client"
)

const (
	msgNoEvents        = "No events scheduled yet."
	msgNoEventsForDate = "No events found for the selected date."
	msgFetchFailed     = "Failed to load events. Please try again."
)

// EventSource is the read side the browser needs from the API client.
type EventSource interface {
	ListEvents(ctx context.Context) ([]client.Event, error)
}

// Browser holds the transient, disposable copy of the event list for the
// current view plus the filter and selection state. The grouped view is
// re-derived from the raw list on every fetch or filter change; nothing is
// cached across fetches.
type Browser struct {
	source EventSource

	events     []client.Event
	filterDate string
	loaded     bool
	lastErr    error

	Selection Selection
}

func New(source EventSource) *Browser {
	return &Browser{source: source}
}

// Refresh re-fetches the full event list. One request, no retry: a failure
// is surfaced in the view until the caller explicitly refreshes again.
func (b *Browser) Refresh(ctx context.Context) error {
	events, err := b.source.ListEvents(ctx)
	if err != nil {
		b.lastErr = err
		return err
	}
	b.events = events
	b.lastErr = nil
	b.loaded = true
	return nil
}

func (b *Browser) SetFilter(date string) { b.filterDate = date }

func (b *Browser) ClearFilter() { b.filterDate = "" }

func (b *Browser) FilterDate() string { return b.filterDate }

// View is the render-ready state for one paint of the browser.
type View struct {
	Projection Projection
	Filtered   bool
	Total      int
	// Empty holds the "no events" message when the projection has no days.
	Empty string
	// Err holds the fetch-failure message when the last refresh failed.
	Err string
}

// View derives the display structure for the current moment. Calling it
// repeatedly without state changes yields identical output.
func (b *Browser) View(now time.Time) View {
	if b.lastErr != nil {
		return View{Err: msgFetchFailed}
	}

	filtered := FilterByDate(b.events, b.filterDate)
	v := View{
		Projection: Project(filtered, now),
		Filtered:   b.filterDate != "",
		Total:      len(b.events),
	}
	if len(filtered) == 0 {
		if b.filterDate != "" {
			v.Empty = msgNoEventsForDate
		} else {
			v.Empty = msgNoEvents
		}
	}
	return v
}
