package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettingsValidate(t *testing.T) {
	valid := Settings{Latitude: "41.88", Longitude: "-87.63", Location: "Chicago, IL", Units: UnitsCelsius}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"latitude above range", func(s *Settings) { s.Latitude = "90.5" }, ErrInvalidLatitude},
		{"latitude not a number", func(s *Settings) { s.Latitude = "north" }, ErrInvalidLatitude},
		{"longitude below range", func(s *Settings) { s.Longitude = "-181" }, ErrInvalidLongitude},
		{"empty location", func(s *Settings) { s.Location = "  " }, ErrInvalidLocation},
		{"long location", func(s *Settings) {
			b := make([]byte, 101)
			for i := range b {
				b[i] = 'a'
			}
			s.Location = string(b)
		}, ErrInvalidLocation},
		{"kelvin", func(s *Settings) { s.Units = "kelvin" }, ErrInvalidUnits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tt.want)
		})
	}

	edge := valid
	edge.Latitude, edge.Longitude = "-90", "180"
	assert.NoError(t, edge.Validate())
}

func TestSettingsFromMap(t *testing.T) {
	s := SettingsFromMap(map[string]string{"latitude": "41.88", "units": ""})
	assert.Equal(t, "41.88", s.Latitude)
	assert.Equal(t, "-74.0060", s.Longitude)
	assert.Equal(t, "New York, NY", s.Location)
	assert.Equal(t, UnitsFahrenheit, s.Units)

	assert.Equal(t, DefaultSettings(), SettingsFromMap(nil))
}

func TestCoordinatesFallBackToDefaults(t *testing.T) {
	lat, lon := Settings{Latitude: "bogus", Longitude: "-87.63"}.Coordinates()
	assert.InDelta(t, 40.7128, lat, 1e-9)
	assert.InDelta(t, -87.63, lon, 1e-9)
}

func TestDemoReport(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	r := DemoReport(DefaultSettings(), now)
	assert.True(t, r.IsDemo)
	assert.Len(t, r.Daily, ForecastDays)
	assert.Equal(t, "2026-03-09", r.Daily[0].Date)
	assert.Equal(t, "2026-03-13", r.Daily[4].Date)
	assert.Equal(t, float64(68), r.Current.Temperature)

	c := DemoReport(Settings{Location: "Paris", Units: UnitsCelsius}, now)
	assert.Equal(t, 20.0, c.Current.Temperature)
	assert.Equal(t, "Paris", c.Location)
	assert.Equal(t, UnitsCelsius, c.Units)
}
