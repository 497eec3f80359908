// Package biztime keeps wall-clock calculations in the household timezone.
// Storage and transport stay in UTC; the household zone decides what "today",
// "this morning" and "Monday" mean for the display.
package biztime

import (
	"fmt"
	"sync"
	"time"

	// Mirror hosts are often minimal images without a zone database.
	_ "time/tzdata"
)

// DefaultTimezone is used until Init is called.
const DefaultTimezone = "America/New_York"

var (
	mu       sync.RWMutex
	location *time.Location
)

// Init sets the household timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	location = loc
	mu.Unlock()
	return nil
}

// Location returns the household timezone, falling back to UTC when the
// default zone database entry is unavailable.
func Location() *time.Location {
	mu.RLock()
	loc := location
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Local converts t into the household timezone.
func Local(t time.Time) time.Time {
	return t.In(Location())
}

// StartOfDay returns local midnight of t's household day.
func StartOfDay(t time.Time) time.Time {
	l := Local(t)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, Location())
}

// AtClock returns the instant hh:mm on t's household day.
func AtClock(t time.Time, hour, minute int) time.Time {
	l := Local(t)
	return time.Date(l.Year(), l.Month(), l.Day(), hour, minute, 0, 0, Location())
}

var weekdayKeys = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayKey returns the three-letter lowercase key ("mon") of t's household day.
func WeekdayKey(t time.Time) string {
	return weekdayKeys[Local(t).Weekday()]
}
