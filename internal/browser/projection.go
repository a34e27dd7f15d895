package browser

import (
	"sort"
	"time"

	"github.com/eventcal/scheduler/internal/client"
)

// DayStatus classifies a date relative to the current clock for display
// emphasis. Purely derived, never stored.
type DayStatus string

const (
	StatusToday    DayStatus = "today"
	StatusUpcoming DayStatus = "upcoming"
	StatusPast     DayStatus = "past"
)

// DayGroup is one date's worth of events, time-sorted.
type DayGroup struct {
	Date   string
	Status DayStatus
	Events []client.Event
}

// Projection is the date-grouped, time-sorted display structure derived from
// a flat event list. It is a pure function of (events, filterDate, now):
// recomputing it on the same inputs yields identical output, and building it
// never mutates the input slice.
type Projection struct {
	Days []DayGroup
}

// FilterByDate keeps events whose start_date or end_date equals the chosen
// date exactly (string equality, not a range). An empty filter keeps
// everything.
func FilterByDate(events []client.Event, filterDate string) []client.Event {
	if filterDate == "" {
		out := make([]client.Event, len(events))
		copy(out, events)
		return out
	}
	out := make([]client.Event, 0, len(events))
	for _, e := range events {
		if e.StartDate == filterDate || e.EndDate == filterDate {
			out = append(out, e)
		}
	}
	return out
}

// Project groups the (already filtered) list by start_date, sorts the dates
// and each group's events lexicographically, and classifies each date against
// now. ISO dates and zero-padded HH:MM times sort chronologically as plain
// strings, so no calendar arithmetic is needed.
func Project(events []client.Event, now time.Time) Projection {
	grouped := map[string][]client.Event{}
	for _, e := range events {
		grouped[e.StartDate] = append(grouped[e.StartDate], e)
	}

	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]DayGroup, 0, len(dates))
	for _, d := range dates {
		evs := grouped[d]
		sort.SliceStable(evs, func(i, j int) bool {
			return evs[i].StartTime < evs[j].StartTime
		})
		days = append(days, DayGroup{
			Date:   d,
			Status: StatusFor(d, now),
			Events: evs,
		})
	}
	return Projection{Days: days}
}

// StatusFor classifies a date as today, upcoming, or past by comparing the
// ISO date strings.
func StatusFor(date string, now time.Time) DayStatus {
	today := now.Format("2006-01-02")
	switch {
	case date == today:
		return StatusToday
	case date > today:
		return StatusUpcoming
	default:
		return StatusPast
	}
}

// Selection tracks which event's extended detail is expanded. At most one
// event is expanded at a time; toggling the expanded event collapses it.
type Selection struct {
	id string
}

func (s *Selection) Toggle(eventID string) {
	if s.id == eventID {
		s.id = ""
		return
	}
	s.id = eventID
}

func (s *Selection) Expanded(eventID string) bool {
	return s.id != "" && s.id == eventID
}

func (s *Selection) Clear() { s.id = "" }
