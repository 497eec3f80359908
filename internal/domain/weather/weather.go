// Package weather holds the household weather settings and the normalized
// forecast shown on the display.
package weather

import (
	"errors"
	"strconv"
	"strings"
)

const (
	UnitsFahrenheit = "fahrenheit"
	UnitsCelsius    = "celsius"
)

// Setting names under the "weather." namespace.
const (
	KeyLatitude  = "latitude"
	KeyLongitude = "longitude"
	KeyLocation  = "location"
	KeyUnits     = "units"
)

const maxLocationLength = 100

var (
	ErrInvalidLatitude  = errors.New("latitude must be a number between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be a number between -180 and 180")
	ErrInvalidLocation  = errors.New("location is required and must be at most 100 characters")
	ErrInvalidUnits     = errors.New("units must be fahrenheit or celsius")
)

// Settings are stored as strings so they round-trip exactly as entered.
type Settings struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Location  string `json:"location"`
	Units     string `json:"units"`
}

func DefaultSettings() Settings {
	return Settings{
		Latitude:  "40.7128",
		Longitude: "-74.0060",
		Location:  "New York, NY",
		Units:     UnitsFahrenheit,
	}
}

// SettingsFromMap reads flattened "weather.*" values, keeping defaults for
// missing or empty names.
func SettingsFromMap(values map[string]string) Settings {
	s := DefaultSettings()
	if v := values[KeyLatitude]; v != "" {
		s.Latitude = v
	}
	if v := values[KeyLongitude]; v != "" {
		s.Longitude = v
	}
	if v := values[KeyLocation]; v != "" {
		s.Location = v
	}
	if v := values[KeyUnits]; v != "" {
		s.Units = v
	}
	return s
}

// Map returns the settings keyed by name, in write order.
func (s Settings) Map() map[string]string {
	return map[string]string{
		KeyLatitude:  s.Latitude,
		KeyLongitude: s.Longitude,
		KeyLocation:  s.Location,
		KeyUnits:     s.Units,
	}
}

func (s Settings) Validate() error {
	if _, err := parseRange(s.Latitude, 90); err != nil {
		return ErrInvalidLatitude
	}
	if _, err := parseRange(s.Longitude, 180); err != nil {
		return ErrInvalidLongitude
	}
	loc := strings.TrimSpace(s.Location)
	if loc == "" || len([]rune(loc)) > maxLocationLength {
		return ErrInvalidLocation
	}
	if s.Units != UnitsFahrenheit && s.Units != UnitsCelsius {
		return ErrInvalidUnits
	}
	return nil
}

// Coordinates parses the stored coordinates, falling back to the defaults
// when a stored value is unusable.
func (s Settings) Coordinates() (lat, lon float64) {
	def := DefaultSettings()
	lat, err := parseRange(s.Latitude, 90)
	if err != nil {
		lat, _ = parseRange(def.Latitude, 90)
	}
	lon, err = parseRange(s.Longitude, 180)
	if err != nil {
		lon, _ = parseRange(def.Longitude, 180)
	}
	return lat, lon
}

func parseRange(v string, limit float64) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, err
	}
	if f < -limit || f > limit {
		return 0, strconv.ErrRange
	}
	return f, nil
}
