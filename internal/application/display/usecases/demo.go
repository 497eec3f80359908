package usecases

import (
	"time"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/shared/biztime"
)

func demoEvents(now time.Time) []calendar.Event {
	today := biztime.StartOfDay(now)
	at := func(days, hour, minute int) time.Time {
		return biztime.AtClock(today.AddDate(0, 0, days), hour, minute)
	}
	events := []calendar.Event{
		{ID: "demo-1", Title: "Team standup", Start: at(0, 9, 0), End: at(0, 9, 30), Color: calendar.DefaultColor},
		{ID: "demo-2", Title: "Lunch with Sam", Start: at(0, 12, 30), End: at(0, 13, 30), Location: "Corner Cafe", Color: "#34c759"},
		{ID: "demo-3", Title: "Soccer practice", Start: at(1, 17, 30), End: at(1, 19, 0), Color: "#ff9500"},
		{ID: "demo-4", Title: "Recycling day", Start: today.AddDate(0, 0, 2), End: today.AddDate(0, 0, 3), AllDay: true, Color: "#af52de"},
	}
	for i := range events {
		events[i].FeedName = "Demo"
	}
	calendar.SortEvents(events)
	return events
}

// demoEstimate stands in for a route whose live estimate is unavailable.
func demoEstimate(r *commute.Route, now time.Time) commute.Estimate {
	return commute.NewEstimate(r, now, 25*time.Minute, 3*time.Minute, 14200)
}

func demoEstimates(now time.Time) []commute.Estimate {
	route := commute.ReconstructRoute("demo", commute.RouteSpec{
		Name:        "Work",
		ArrivalTime: "09:00",
		ActiveDays:  commute.Weekdays,
		Enabled:     true,
	}, now, now)
	return []commute.Estimate{demoEstimate(route, now)}
}
