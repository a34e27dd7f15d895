package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eventcal/scheduler/internal/client"
)

func ev(id, startDate, endDate, startTime string) client.Event {
	return client.Event{
		ID:        id,
		Title:     "Event " + id,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
	}
}

func TestProject_GroupingAndOrdering(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	events := []client.Event{
		ev("a", "2025-01-02", "2025-01-02", "09:00"),
		ev("b", "2025-01-01", "2025-01-01", "10:00"),
		ev("c", "2025-01-01", "2025-01-01", "08:00"),
	}

	p := Project(events, now)

	assert.Len(t, p.Days, 2)
	assert.Equal(t, "2025-01-01", p.Days[0].Date)
	assert.Equal(t, "2025-01-02", p.Days[1].Date)

	assert.Equal(t, []string{"c", "b"}, []string{p.Days[0].Events[0].ID, p.Days[0].Events[1].ID}, "time-sorted within group")
	assert.Equal(t, "a", p.Days[1].Events[0].ID)
}

func TestProject_Idempotent(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	events := []client.Event{
		ev("a", "2025-01-03", "2025-01-03", "12:00"),
		ev("b", "2025-01-01", "2025-01-01", "10:00"),
		ev("c", "2025-01-02", "2025-01-02", "08:00"),
	}

	first := Project(events, now)
	second := Project(events, now)
	assert.Equal(t, first, second, "same input and same now yield identical output")

	// input order must be untouched
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "c", events[2].ID)
}

func TestFilterByDate(t *testing.T) {
	events := []client.Event{
		ev("a", "2025-01-01", "2025-01-02", "09:00"),
		ev("b", "2025-01-02", "2025-01-02", "10:00"),
		ev("c", "2025-01-03", "2025-01-04", "11:00"),
	}

	t.Run("empty_filter_keeps_all", func(t *testing.T) {
		assert.Len(t, FilterByDate(events, ""), 3)
	})

	t.Run("matches_start_or_end_date_exactly", func(t *testing.T) {
		got := FilterByDate(events, "2025-01-02")
		assert.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID, "end_date match counts")
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("no_range_semantics", func(t *testing.T) {
		// c spans 01-03..01-04 but neither endpoint equals 2025-01-05
		assert.Empty(t, FilterByDate(events, "2025-01-05"))
	})
}

func TestStatusFor(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, StatusToday, StatusFor("2025-06-15", now))
	assert.Equal(t, StatusUpcoming, StatusFor("2025-06-16", now))
	assert.Equal(t, StatusPast, StatusFor("2025-06-14", now))
	assert.Equal(t, StatusPast, StatusFor("2024-12-31", now))
}

func TestSelection_Toggle(t *testing.T) {
	var s Selection

	assert.False(t, s.Expanded("a"))

	s.Toggle("a")
	assert.True(t, s.Expanded("a"))
	assert.False(t, s.Expanded("b"))

	// selecting another event moves the expansion
	s.Toggle("b")
	assert.False(t, s.Expanded("a"))
	assert.True(t, s.Expanded("b"))

	// toggling the expanded event collapses it
	s.Toggle("b")
	assert.False(t, s.Expanded("b"))

	s.Toggle("a")
	s.Clear()
	assert.False(t, s.Expanded("a"))
}
