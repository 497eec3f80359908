package usecases

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/music"
	"github.com/lumenhq/lumen/internal/domain/news"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/tomtom"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// monday0700 is 07:00 on a Monday in the default household zone.
var monday0700 = time.Date(2026, time.October, 12, 11, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return monday0700 }

func newFetcher(t *testing.T) *resilient.Fetcher {
	t.Helper()
	return resilient.NewFetcher(resilient.Options{Name: "display-" + t.Name()}, logger.NewNop())
}

type mockForecaster struct {
	ForecastFunc func(ctx context.Context, s weather.Settings) (weather.Report, error)
}

func (m *mockForecaster) Forecast(ctx context.Context, s weather.Settings) (weather.Report, error) {
	return m.ForecastFunc(ctx, s)
}

type mockEventSource struct {
	EventsFunc func(ctx context.Context, feed *calendar.Feed, from, to time.Time) ([]calendar.Event, error)
}

func (m *mockEventSource) Events(ctx context.Context, feed *calendar.Feed, from, to time.Time) ([]calendar.Event, error) {
	return m.EventsFunc(ctx, feed, from, to)
}

type mockEstimator struct {
	RouteFunc func(ctx context.Context, key string, origin, destination commute.Coordinate, departAt time.Time) (tomtom.Travel, error)
}

func (m *mockEstimator) Route(ctx context.Context, key string, origin, destination commute.Coordinate, departAt time.Time) (tomtom.Travel, error) {
	return m.RouteFunc(ctx, key, origin, destination, departAt)
}

type mockHeadlines struct {
	FetchFunc func(ctx context.Context, url string) ([]news.Item, error)
}

func (m *mockHeadlines) Fetch(ctx context.Context, url string) ([]news.Item, error) {
	return m.FetchFunc(ctx, url)
}

type mockPlayback struct {
	configured     bool
	NowPlayingFunc func(ctx context.Context) (music.NowPlaying, error)
}

func (m *mockPlayback) Configured() bool { return m.configured }

func (m *mockPlayback) NowPlaying(ctx context.Context) (music.NowPlaying, error) {
	return m.NowPlayingFunc(ctx)
}

type mockAssistant struct {
	CompleteFunc func(ctx context.Context, key, system, user string) (string, error)
	calls        atomic.Int32
}

func (m *mockAssistant) Complete(ctx context.Context, key, system, user string) (string, error) {
	m.calls.Add(1)
	return m.CompleteFunc(ctx, key, system, user)
}

type staticWeather struct {
	settings weather.Settings
	err      error
}

func (s staticWeather) Get(context.Context) (weather.Settings, error) {
	if s.err != nil {
		return weather.DefaultSettings(), s.err
	}
	return s.settings, nil
}

type staticPreferences briefing.Preferences

func (p staticPreferences) Get(context.Context) (briefing.Preferences, error) {
	return briefing.Preferences(p), nil
}

type staticCategory map[string]string

func (c staticCategory) CategoryValues(context.Context, string) (map[string]string, error) {
	return c, nil
}

type staticCredentials map[string]string

func (c staticCredentials) Credential(_ context.Context, key string) string {
	return c[key]
}
