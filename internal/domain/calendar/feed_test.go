package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://example.com/cal.ics", "https://example.com/cal.ics", false},
		{"http://example.com/cal.ics", "http://example.com/cal.ics", false},
		{"webcal://p01-calendars.icloud.com/published/2/abc", "https://p01-calendars.icloud.com/published/2/abc", false},
		{"  WEBCAL://example.com/a.ics ", "https://example.com/a.ics", false},
		{"ftp://example.com/cal.ics", "", true},
		{"not a url", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeURL(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFeedURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFeed(t *testing.T) {
	f, err := NewFeed("Family", "webcal://example.com/family.ics", "", true)
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID())
	assert.Equal(t, "https://example.com/family.ics", f.URL())
	assert.Equal(t, DefaultColor, f.Color())
	assert.True(t, f.Enabled())

	_, err = NewFeed("  ", "https://example.com/a.ics", "", true)
	assert.ErrorIs(t, err, ErrInvalidFeedName)
}

func TestFeed_ApplyIsAtomic(t *testing.T) {
	f, _ := NewFeed("Work", "https://example.com/work.ics", "#111111", true)

	name := "Office"
	bad := "gopher://x"
	err := f.Apply(FeedPatch{Name: &name, URL: &bad})
	assert.ErrorIs(t, err, ErrInvalidFeedURL)
	assert.Equal(t, "Work", f.Name())

	off := false
	require.NoError(t, f.Apply(FeedPatch{Name: &name, Enabled: &off}))
	assert.Equal(t, "Office", f.Name())
	assert.False(t, f.Enabled())
}

func TestEvent_Overlaps(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	from, to := day, day.AddDate(0, 0, 7)

	inside := Event{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)}
	before := Event{Start: day.Add(-48 * time.Hour), End: day.Add(-47 * time.Hour)}
	spanning := Event{Start: day.Add(-time.Hour), End: day.Add(time.Hour)}
	instant := Event{Start: to}

	assert.True(t, inside.Overlaps(from, to))
	assert.False(t, before.Overlaps(from, to))
	assert.True(t, spanning.Overlaps(from, to))
	assert.False(t, instant.Overlaps(from, to))
}

func TestSortEvents(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{Title: "lunch", Start: day.Add(12 * time.Hour)},
		{Title: "meeting", Start: day},
		{Title: "holiday", Start: day, AllDay: true},
	}
	SortEvents(events)

	assert.Equal(t, []string{"holiday", "meeting", "lunch"}, []string{events[0].Title, events[1].Title, events[2].Title})
}

func TestFailureKind_Message(t *testing.T) {
	for _, k := range []FailureKind{FailureUnreachable, FailureNotFound, FailureUnauthorized, FailureInvalidFormat} {
		assert.NotEmpty(t, k.Message())
	}
	err := &FeedError{Kind: FailureNotFound}
	assert.Equal(t, "not-found", err.Error())
}
