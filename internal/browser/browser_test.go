package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eventcal/scheduler/internal/client"
)

type stubSource struct {
	events []client.Event
	err    error
	calls  int
}

func (s *stubSource) ListEvents(ctx context.Context) ([]client.Event, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func TestBrowser_RefreshAndView(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	src := &stubSource{events: []client.Event{
		ev("a", "2025-01-02", "2025-01-02", "09:00"),
		ev("b", "2025-01-01", "2025-01-01", "10:00"),
	}}
	b := New(src)

	assert.NoError(t, b.Refresh(context.Background()))

	v := b.View(now)
	assert.Empty(t, v.Err)
	assert.Empty(t, v.Empty)
	assert.Equal(t, 2, v.Total)
	assert.Len(t, v.Projection.Days, 2)
	assert.Equal(t, StatusToday, v.Projection.Days[0].Status)
	assert.Equal(t, StatusUpcoming, v.Projection.Days[1].Status)

	t.Run("view_is_stable_across_repeated_calls", func(t *testing.T) {
		assert.Equal(t, b.View(now), b.View(now))
	})
}

func TestBrowser_Filter(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	src := &stubSource{events: []client.Event{
		ev("a", "2025-01-02", "2025-01-02", "09:00"),
	}}
	b := New(src)
	assert.NoError(t, b.Refresh(context.Background()))

	t.Run("filter_with_no_matches_shows_message_not_error", func(t *testing.T) {
		b.SetFilter("2025-03-01")
		v := b.View(now)
		assert.Empty(t, v.Err)
		assert.Equal(t, "No events found for the selected date.", v.Empty)
		assert.Empty(t, v.Projection.Days)
	})

	t.Run("clearing_filter_restores_full_list", func(t *testing.T) {
		b.ClearFilter()
		v := b.View(now)
		assert.Empty(t, v.Empty)
		assert.Len(t, v.Projection.Days, 1)
	})
}

func TestBrowser_EmptyList(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	b := New(&stubSource{})
	assert.NoError(t, b.Refresh(context.Background()))

	v := b.View(now)
	assert.Equal(t, "No events scheduled yet.", v.Empty)
}

func TestBrowser_FetchFailure(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	src := &stubSource{err: errors.New("connection refused")}
	b := New(src)

	assert.Error(t, b.Refresh(context.Background()))

	v := b.View(now)
	assert.Equal(t, "Failed to load events. Please try again.", v.Err)

	t.Run("no_automatic_retry", func(t *testing.T) {
		b.View(now)
		b.View(now)
		assert.Equal(t, 1, src.calls, "only an explicit refresh re-issues the fetch")
	})

	t.Run("explicit_retry_recovers", func(t *testing.T) {
		src.err = nil
		src.events = []client.Event{ev("a", "2025-01-01", "2025-01-01", "09:00")}
		assert.NoError(t, b.Refresh(context.Background()))
		v := b.View(now)
		assert.Empty(t, v.Err)
		assert.Equal(t, 1, v.Total)
	})
}
