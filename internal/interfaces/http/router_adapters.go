package http

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/weather"
)

type weatherSettingsSource interface {
	GetWeather(ctx context.Context) (weather.Settings, error)
}

// weatherSettingsAdapter exposes the setting service's weather view to the
// display composition.
type weatherSettingsAdapter struct {
	settings weatherSettingsSource
}

func (a *weatherSettingsAdapter) Get(ctx context.Context) (weather.Settings, error) {
	return a.settings.GetWeather(ctx)
}

type preferencesSource interface {
	GetAIPreferences(ctx context.Context) (briefing.Preferences, error)
}

// preferencesAdapter exposes the stored briefing preferences to the summary.
type preferencesAdapter struct {
	settings preferencesSource
}

func (a *preferencesAdapter) Get(ctx context.Context) (briefing.Preferences, error) {
	return a.settings.GetAIPreferences(ctx)
}
