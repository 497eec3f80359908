package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// WeatherSettingsUseCase reads and writes the "weather.*" settings
type WeatherSettingsUseCase struct {
	settingRepo setting.Repository
	recorder    mirror.ChangeRecorder
	logger      logger.Interface
}

func NewWeatherSettingsUseCase(
	settingRepo setting.Repository,
	recorder mirror.ChangeRecorder,
	logger logger.Interface,
) *WeatherSettingsUseCase {
	return &WeatherSettingsUseCase{
		settingRepo: settingRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// Get always returns usable settings: stored values over the defaults, or
// the defaults alone together with the store error.
func (uc *WeatherSettingsUseCase) Get(ctx context.Context) (weather.Settings, error) {
	stored, err := uc.settingRepo.GetByCategory(ctx, setting.CategoryWeather)
	if err != nil {
		uc.logger.Warnw("failed to read weather settings, using defaults", "error", err)
		return weather.DefaultSettings(), errors.WrapInternal("Failed to fetch weather settings", err)
	}
	return weather.SettingsFromMap(setting.Flatten(stored)), nil
}

func (uc *WeatherSettingsUseCase) Update(ctx context.Context, s weather.Settings, userID string) error {
	if err := s.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	batch, err := categorySettings(setting.CategoryWeather, s.Map(), userID)
	if err != nil {
		return err
	}
	if err := uc.settingRepo.UpsertMany(ctx, batch); err != nil {
		uc.logger.Errorw("failed to update weather settings", "error", err)
		return errors.WrapInternal("Failed to update weather settings", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:   mirror.ActionWeatherUpdate,
		Category: setting.CategoryWeather,
		UserID:   userID,
		Details: map[string]any{
			"location": s.Location,
			"units":    s.Units,
		},
	})
	return nil
}

// categorySettings builds "<category>.<name>" settings from values.
func categorySettings(category string, values map[string]string, userID string) ([]*setting.Setting, error) {
	out := make([]*setting.Setting, 0, len(values))
	for name, value := range values {
		s, err := setting.NewSetting(category+"."+name, "", category)
		if err != nil {
			return nil, errors.WrapInternal("Failed to build settings", err)
		}
		s.SetValue(value, userID)
		out = append(out, s)
	}
	return out, nil
}
