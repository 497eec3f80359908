package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// GetWeatherUseCase serves the forecast for the stored household location.
type GetWeatherUseCase struct {
	settings   WeatherSettingsReader
	forecaster Forecaster
	fetcher    *resilient.Fetcher
	now        func() time.Time
	logger     logger.Interface
}

func NewGetWeatherUseCase(
	settings WeatherSettingsReader,
	forecaster Forecaster,
	fetcher *resilient.Fetcher,
	logger logger.Interface,
) *GetWeatherUseCase {
	return &GetWeatherUseCase{
		settings:   settings,
		forecaster: forecaster,
		fetcher:    fetcher,
		now:        biztime.NowUTC,
		logger:     logger,
	}
}

func (uc *GetWeatherUseCase) Execute(ctx context.Context) weather.Report {
	s, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Warnw("using default weather settings", "error", err)
	}

	lat, lon := s.Coordinates()
	key := fmt.Sprintf("%.4f,%.4f:%s", lat, lon, s.Units)
	report, _ := resilient.Fetch(ctx, uc.fetcher, key, func(ctx context.Context) (weather.Report, error) {
		return uc.forecaster.Forecast(ctx, s)
	}, weather.DemoReport(s, biztime.Local(uc.now())))

	// The cache is keyed on coordinates; the label may have changed since.
	report.Location = s.Location
	return report
}
