package setting

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/setting/dto"
	"github.com/lumenhq/lumen/internal/application/setting/usecases"
	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ServiceDDD aggregates all setting-related use cases
type ServiceDDD struct {
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	weatherUC        *usecases.WeatherSettingsUseCase
	aiUC             *usecases.AIPreferencesUseCase
	settingProvider  *usecases.SettingProvider
	logger           logger.Interface
}

// NewServiceDDD creates a new setting service. credentials maps override
// keys such as setting.KeyRoutingAPIKey to their configured values.
func NewServiceDDD(
	settingRepo setting.Repository,
	recorder mirror.ChangeRecorder,
	credentials map[string]string,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		getSettingsUC:    usecases.NewGetSettingsUseCase(settingRepo, logger),
		updateSettingsUC: usecases.NewUpdateSettingsUseCase(settingRepo, recorder, logger),
		weatherUC:        usecases.NewWeatherSettingsUseCase(settingRepo, recorder, logger),
		aiUC:             usecases.NewAIPreferencesUseCase(settingRepo, recorder, logger),
		settingProvider:  usecases.NewSettingProvider(settingRepo, credentials, logger),
		logger:           logger,
	}
}

// List returns settings for the admin portal, masking encrypted values
func (s *ServiceDDD) List(ctx context.Context, category string) (*dto.SettingsListResponse, error) {
	return s.getSettingsUC.List(ctx, category)
}

// CategoryValues returns the raw values of a category with the prefix stripped
func (s *ServiceDDD) CategoryValues(ctx context.Context, category string) (map[string]string, error) {
	return s.getSettingsUC.CategoryValues(ctx, category)
}

// Update batch writes generic settings
func (s *ServiceDDD) Update(ctx context.Context, req dto.UpdateSettingsRequest, userID string) error {
	return s.updateSettingsUC.Execute(ctx, req, userID)
}

func (s *ServiceDDD) GetWeather(ctx context.Context) (weather.Settings, error) {
	return s.weatherUC.Get(ctx)
}

func (s *ServiceDDD) UpdateWeather(ctx context.Context, settings weather.Settings, userID string) error {
	return s.weatherUC.Update(ctx, settings, userID)
}

func (s *ServiceDDD) GetAIPreferences(ctx context.Context) (briefing.Preferences, error) {
	return s.aiUC.Get(ctx)
}

func (s *ServiceDDD) UpdateAIPreferences(ctx context.Context, req dto.AIPreferencesRequest, userID string) (briefing.Preferences, error) {
	return s.aiUC.Update(ctx, req, userID)
}

// Credential returns the effective value of a credential setting
func (s *ServiceDDD) Credential(ctx context.Context, key string) string {
	return s.settingProvider.Value(ctx, key)
}
