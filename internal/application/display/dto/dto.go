package dto

import (
	"time"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/liturgy"
)

type EventDTO struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	AllDay   bool      `json:"allDay"`
	Location string    `json:"location,omitempty"`
	Calendar string    `json:"calendar,omitempty"`
	Color    string    `json:"color"`
}

type CalendarResponse struct {
	Events []EventDTO `json:"events"`
	IsDemo bool       `json:"isDemo"`
}

type EstimateDTO struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	DurationMinutes     int            `json:"durationMinutes"`
	TrafficDelayMinutes int            `json:"trafficDelayMinutes"`
	DistanceKm          float64        `json:"distanceKm"`
	LeaveBy             time.Time      `json:"leaveBy"`
	Status              commute.Status `json:"status"`
}

type CommuteResponse struct {
	Routes []EstimateDTO `json:"routes"`
	IsDemo bool          `json:"isDemo"`
}

type FeastDayResponse struct {
	Date       string        `json:"date"`
	Season     string        `json:"season"`
	SeasonName string        `json:"seasonName"`
	Week       int           `json:"week,omitempty"`
	Feast      string        `json:"feast,omitempty"`
	Rank       liturgy.Rank  `json:"rank"`
	Color      liturgy.Color `json:"color"`
}

func ToEventDTOs(events []calendar.Event) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, EventDTO{
			ID:       e.ID,
			Title:    e.Title,
			Start:    e.Start,
			End:      e.End,
			AllDay:   e.AllDay,
			Location: e.Location,
			Calendar: e.FeedName,
			Color:    e.Color,
		})
	}
	return out
}

func ToEstimateDTOs(estimates []commute.Estimate) []EstimateDTO {
	out := make([]EstimateDTO, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, EstimateDTO{
			ID:                  e.RouteID,
			Name:                e.RouteName,
			DurationMinutes:     e.DurationMinutes,
			TrafficDelayMinutes: e.TrafficDelayMinutes,
			DistanceKm:          e.DistanceKm,
			LeaveBy:             e.LeaveBy,
			Status:              e.Status,
		})
	}
	return out
}

func ToFeastDayResponse(d liturgy.Day) FeastDayResponse {
	return FeastDayResponse{
		Date:       d.Date.Format(time.DateOnly),
		Season:     string(d.Season),
		SeasonName: d.Season.Name(),
		Week:       d.Week,
		Feast:      d.Feast,
		Rank:       d.Rank,
		Color:      d.Color,
	}
}
