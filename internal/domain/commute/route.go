// Package commute models saved commute routes and their travel estimates.
package commute

import (
	"fmt"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/id"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// Weekdays lists the accepted active-day keys in calendar order.
var Weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinate is within [-90,90] x [-180,180].
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}

// Route is a saved trip the mirror estimates each active day.
type Route struct {
	id               string
	name             string
	origin           Coordinate
	destination      Coordinate
	originLabel      string
	destinationLabel string
	arrivalTime      string
	activeDays       []string
	enabled          bool
	createdAt        time.Time
	updatedAt        time.Time
}

// RouteSpec carries the user-editable fields of a route.
type RouteSpec struct {
	Name             string
	Origin           Coordinate
	Destination      Coordinate
	OriginLabel      string
	DestinationLabel string
	ArrivalTime      string
	ActiveDays       []string
	Enabled          bool
}

// Validate checks the spec's invariants.
func (s RouteSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidRouteName
	}
	if !s.Origin.Valid() || !s.Destination.Valid() {
		return ErrInvalidCoordinate
	}
	if !utils.IsHHMM(s.ArrivalTime) {
		return ErrInvalidArrivalTime
	}
	if len(s.ActiveDays) == 0 {
		return ErrInvalidActiveDays
	}
	for _, d := range s.ActiveDays {
		if !isWeekday(d) {
			return ErrInvalidActiveDays
		}
	}
	return nil
}

// NewRoute validates spec and creates a route with a fresh id.
func NewRoute(spec RouteSpec) (*Route, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	routeID, err := id.NewCommuteRouteID()
	if err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	r := &Route{id: routeID, createdAt: now}
	r.assign(spec, now)
	return r, nil
}

// ReconstructRoute rebuilds a Route from persistence.
func ReconstructRoute(id string, spec RouteSpec, createdAt, updatedAt time.Time) *Route {
	r := &Route{id: id, createdAt: createdAt}
	r.assign(spec, updatedAt)
	return r
}

// Update replaces the editable fields after validation.
func (r *Route) Update(spec RouteSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	r.assign(spec, biztime.NowUTC())
	return nil
}

func (r *Route) assign(spec RouteSpec, at time.Time) {
	r.name = strings.TrimSpace(spec.Name)
	r.origin = spec.Origin
	r.destination = spec.Destination
	r.originLabel = spec.OriginLabel
	r.destinationLabel = spec.DestinationLabel
	r.arrivalTime = spec.ArrivalTime
	r.activeDays = normalizeDays(spec.ActiveDays)
	r.enabled = spec.Enabled
	r.updatedAt = at
}

func (r *Route) ID() string               { return r.id }
func (r *Route) Name() string             { return r.name }
func (r *Route) Origin() Coordinate       { return r.origin }
func (r *Route) Destination() Coordinate  { return r.destination }
func (r *Route) OriginLabel() string      { return r.originLabel }
func (r *Route) DestinationLabel() string { return r.destinationLabel }
func (r *Route) ArrivalTime() string      { return r.arrivalTime }
func (r *Route) ActiveDays() []string     { return append([]string(nil), r.activeDays...) }
func (r *Route) Enabled() bool            { return r.enabled }
func (r *Route) CreatedAt() time.Time     { return r.createdAt }
func (r *Route) UpdatedAt() time.Time     { return r.updatedAt }

// Spec returns the route's editable fields.
func (r *Route) Spec() RouteSpec {
	return RouteSpec{
		Name:             r.name,
		Origin:           r.origin,
		Destination:      r.destination,
		OriginLabel:      r.originLabel,
		DestinationLabel: r.destinationLabel,
		ArrivalTime:      r.arrivalTime,
		ActiveDays:       r.ActiveDays(),
		Enabled:          r.enabled,
	}
}

// IsActiveOn reports whether the route runs on the given local day.
func (r *Route) IsActiveOn(day time.Time) bool {
	key := biztime.WeekdayKey(day)
	for _, d := range r.activeDays {
		if d == key {
			return true
		}
	}
	return false
}

// ArrivalOn returns the desired arrival instant on day in day's location.
func (r *Route) ArrivalOn(day time.Time) time.Time {
	var h, m int
	_, _ = fmt.Sscanf(r.arrivalTime, "%d:%d", &h, &m)
	return biztime.AtClock(day, h, m)
}

func isWeekday(d string) bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// normalizeDays dedupes and sorts days into calendar order.
func normalizeDays(days []string) []string {
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		seen[d] = true
	}
	out := make([]string, 0, len(seen))
	for _, w := range Weekdays {
		if seen[w] {
			out = append(out, w)
		}
	}
	return out
}
