package commute

import "time"

// Status classifies how much slack is left before the leave-by time.
type Status string

const (
	StatusOnTime    Status = "on-time"
	StatusLeaveSoon Status = "leave-soon"
	StatusLate      Status = "late"
)

// leaveSoonWindow is how close to leave-by a route turns "leave-soon".
const leaveSoonWindow = 10 * time.Minute

// Estimate is the routing result for one route.
type Estimate struct {
	RouteID             string
	RouteName           string
	DurationMinutes     int
	TrafficDelayMinutes int
	DistanceKm          float64
	LeaveBy             time.Time
	Status              Status
}

// NewEstimate derives leave-by and status from the travel time.
func NewEstimate(r *Route, now time.Time, travel, delay time.Duration, distanceMeters float64) Estimate {
	leaveBy := r.ArrivalOn(now).Add(-travel)
	return Estimate{
		RouteID:             r.ID(),
		RouteName:           r.Name(),
		DurationMinutes:     int(travel.Round(time.Minute) / time.Minute),
		TrafficDelayMinutes: int(delay.Round(time.Minute) / time.Minute),
		DistanceKm:          float64(int(distanceMeters/100+0.5)) / 10,
		LeaveBy:             leaveBy,
		Status:              StatusAt(now, leaveBy),
	}
}

// StatusAt classifies now relative to leaveBy.
func StatusAt(now, leaveBy time.Time) Status {
	switch {
	case now.After(leaveBy):
		return StatusLate
	case leaveBy.Sub(now) <= leaveSoonWindow:
		return StatusLeaveSoon
	default:
		return StatusOnTime
	}
}
