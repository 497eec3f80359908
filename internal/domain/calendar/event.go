package calendar

import (
	"sort"
	"time"
)

// Event is a normalized calendar entry ready for display.
type Event struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Location string
	FeedID   string
	FeedName string
	Color    string
}

// Overlaps reports whether the event intersects [from, to).
func (e Event) Overlaps(from, to time.Time) bool {
	end := e.End
	if end.IsZero() || end.Before(e.Start) {
		end = e.Start
	}
	if end.Equal(e.Start) {
		return !e.Start.Before(from) && e.Start.Before(to)
	}
	return e.Start.Before(to) && end.After(from)
}

// SortEvents orders events by start time; all-day events come first on ties.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		if events[i].AllDay != events[j].AllDay {
			return events[i].AllDay
		}
		return events[i].Title < events[j].Title
	})
}
