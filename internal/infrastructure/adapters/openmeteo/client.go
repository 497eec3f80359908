// Package openmeteo reads forecasts from the Open-Meteo API.
package openmeteo

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api.open-meteo.com"
	defaultTimeout = 10 * time.Second
)

type forecastResponse struct {
	Current struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		RelativeHumidity    float64 `json:"relative_humidity_2m"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		WeatherCode         int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time                     []string  `json:"time"`
		WeatherCode              []int     `json:"weather_code"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		PrecipitationProbability []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.WeatherConfig, log logger.Interface) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpclient.New(sharedConfig.Seconds(cfg.TimeoutSeconds, defaultTimeout)),
		logger:     log,
	}
}

// Forecast returns current conditions and a five day outlook for s.
func (c *Client) Forecast(ctx context.Context, s weather.Settings) (weather.Report, error) {
	lat, lon := s.Coordinates()

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,weather_code")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(weather.ForecastDays))
	if s.Units == weather.UnitsCelsius {
		q.Set("temperature_unit", "celsius")
		q.Set("wind_speed_unit", "kmh")
	} else {
		q.Set("temperature_unit", "fahrenheit")
		q.Set("wind_speed_unit", "mph")
	}

	var data forecastResponse
	if err := httpclient.GetJSON(ctx, c.httpClient, c.baseURL+"/v1/forecast?"+q.Encode(), nil, &data); err != nil {
		return weather.Report{}, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	if len(data.Daily.Time) == 0 {
		return weather.Report{}, fmt.Errorf("forecast response has no daily data")
	}

	current := lookup(data.Current.WeatherCode)
	report := weather.Report{
		Current: weather.Current{
			Temperature: round1(data.Current.Temperature),
			FeelsLike:   round1(data.Current.ApparentTemperature),
			Humidity:    int(math.Round(data.Current.RelativeHumidity)),
			WindSpeed:   round1(data.Current.WindSpeed),
			Code:        data.Current.WeatherCode,
			Condition:   current.label(),
			Icon:        current.icon,
		},
		Daily:     make([]weather.Day, 0, weather.ForecastDays),
		Location:  s.Location,
		Units:     s.Units,
		UpdatedAt: time.Now().UTC(),
	}

	for i, date := range data.Daily.Time {
		if i == weather.ForecastDays {
			break
		}
		code := at(data.Daily.WeatherCode, i)
		cond := lookup(code)
		report.Daily = append(report.Daily, weather.Day{
			Date:                date,
			High:                round1(atf(data.Daily.TemperatureMax, i)),
			Low:                 round1(atf(data.Daily.TemperatureMin, i)),
			PrecipitationChance: int(math.Round(atf(data.Daily.PrecipitationProbability, i))),
			Code:                code,
			Condition:           cond.label(),
			Icon:                cond.icon,
		})
	}

	c.logger.Debugw("fetched forecast", "latitude", lat, "longitude", lon, "days", len(report.Daily))
	return report, nil
}

func at(v []int, i int) int {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func atf(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
