package usecases

import (
	"context"
	"time"

	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/music"
	"github.com/lumenhq/lumen/internal/domain/news"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/tomtom"
)

type Forecaster interface {
	Forecast(ctx context.Context, s weather.Settings) (weather.Report, error)
}

type EventSource interface {
	Events(ctx context.Context, feed *calendar.Feed, from, to time.Time) ([]calendar.Event, error)
}

type TravelEstimator interface {
	Route(ctx context.Context, key string, origin, destination commute.Coordinate, departAt time.Time) (tomtom.Travel, error)
}

type HeadlineSource interface {
	Fetch(ctx context.Context, url string) ([]news.Item, error)
}

type PlaybackSource interface {
	Configured() bool
	NowPlaying(ctx context.Context) (music.NowPlaying, error)
}

type Assistant interface {
	Complete(ctx context.Context, key, system, user string) (string, error)
}

// WeatherSettingsReader returns the stored weather settings, defaults on error.
type WeatherSettingsReader interface {
	Get(ctx context.Context) (weather.Settings, error)
}

type PreferencesReader interface {
	Get(ctx context.Context) (briefing.Preferences, error)
}

// CategoryReader returns a settings category keyed by name.
type CategoryReader interface {
	CategoryValues(ctx context.Context, category string) (map[string]string, error)
}

type CredentialSource interface {
	Credential(ctx context.Context, key string) string
}

type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}
