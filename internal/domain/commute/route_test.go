package commute

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/shared/biztime"
)

func TestMain(m *testing.M) {
	_ = biztime.Init("UTC")
	os.Exit(m.Run())
}

func validSpec() RouteSpec {
	return RouteSpec{
		Name:        "Work",
		Origin:      Coordinate{Lat: 41.88, Lon: -87.63},
		Destination: Coordinate{Lat: 41.97, Lon: -87.90},
		ArrivalTime: "09:00",
		ActiveDays:  []string{"fri", "mon", "mon"},
		Enabled:     true,
	}
}

func TestNewRoute(t *testing.T) {
	r, err := NewRoute(validSpec())
	require.NoError(t, err)

	assert.Contains(t, r.ID(), "route_")
	assert.Equal(t, []string{"mon", "fri"}, r.ActiveDays())
}

func TestRouteSpec_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RouteSpec)
		want   error
	}{
		{"lat 90 accepted", func(s *RouteSpec) { s.Origin.Lat = 90 }, nil},
		{"lat 91 rejected", func(s *RouteSpec) { s.Origin.Lat = 91 }, ErrInvalidCoordinate},
		{"lon -181 rejected", func(s *RouteSpec) { s.Destination.Lon = -181 }, ErrInvalidCoordinate},
		{"empty name", func(s *RouteSpec) { s.Name = " " }, ErrInvalidRouteName},
		{"bad time", func(s *RouteSpec) { s.ArrivalTime = "24:00" }, ErrInvalidArrivalTime},
		{"midnight ok", func(s *RouteSpec) { s.ArrivalTime = "00:00" }, nil},
		{"no days", func(s *RouteSpec) { s.ActiveDays = nil }, ErrInvalidActiveDays},
		{"bad day", func(s *RouteSpec) { s.ActiveDays = []string{"monday"} }, ErrInvalidActiveDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRoute_IsActiveOnAndArrival(t *testing.T) {
	r, _ := NewRoute(validSpec())

	monday := time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	assert.True(t, r.IsActiveOn(monday))
	assert.False(t, r.IsActiveOn(tuesday))
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), r.ArrivalOn(monday))
}

func TestNewEstimate(t *testing.T) {
	r, _ := NewRoute(validSpec())
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	e := NewEstimate(r, now, 35*time.Minute, 5*time.Minute, 23456)
	assert.Equal(t, 35, e.DurationMinutes)
	assert.Equal(t, 5, e.TrafficDelayMinutes)
	assert.InDelta(t, 23.5, e.DistanceKm, 0.001)
	assert.Equal(t, time.Date(2026, 3, 9, 8, 25, 0, 0, time.UTC), e.LeaveBy)
	assert.Equal(t, StatusOnTime, e.Status)
}

func TestStatusAt(t *testing.T) {
	leaveBy := time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, StatusOnTime, StatusAt(leaveBy.Add(-time.Hour), leaveBy))
	assert.Equal(t, StatusLeaveSoon, StatusAt(leaveBy.Add(-5*time.Minute), leaveBy))
	assert.Equal(t, StatusLate, StatusAt(leaveBy.Add(time.Minute), leaveBy))
}
