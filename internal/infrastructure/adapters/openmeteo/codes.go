package openmeteo

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type condition struct {
	description string
	icon        string
}

func (c condition) label() string {
	return cases.Title(language.English).String(c.description)
}

// WMO weather interpretation codes.
var conditions = map[int]condition{
	0:  {"clear sky", "sunny"},
	1:  {"mainly clear", "partly-sunny"},
	2:  {"partly cloudy", "partly-sunny"},
	3:  {"overcast", "cloudy"},
	45: {"fog", "fog"},
	48: {"depositing rime fog", "fog"},
	51: {"light drizzle", "drizzle"},
	53: {"moderate drizzle", "drizzle"},
	55: {"dense drizzle", "drizzle"},
	56: {"light freezing drizzle", "sleet"},
	57: {"dense freezing drizzle", "sleet"},
	61: {"slight rain", "rain"},
	63: {"moderate rain", "rain"},
	65: {"heavy rain", "rain"},
	66: {"light freezing rain", "sleet"},
	67: {"heavy freezing rain", "sleet"},
	71: {"slight snow fall", "snow"},
	73: {"moderate snow fall", "snow"},
	75: {"heavy snow fall", "snow"},
	77: {"snow grains", "snow"},
	80: {"slight rain showers", "showers"},
	81: {"moderate rain showers", "showers"},
	82: {"violent rain showers", "showers"},
	85: {"slight snow showers", "snow"},
	86: {"heavy snow showers", "snow"},
	95: {"thunderstorm", "thunderstorm"},
	96: {"thunderstorm with slight hail", "thunderstorm"},
	99: {"thunderstorm with heavy hail", "thunderstorm"},
}

func lookup(code int) condition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return condition{"unknown", "cloudy"}
}
