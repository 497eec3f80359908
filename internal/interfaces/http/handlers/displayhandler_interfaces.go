package handlers

import (
	"context"

	displaydto "github.com/lumenhq/lumen/internal/application/display/dto"
	widgetdto "github.com/lumenhq/lumen/internal/application/widget/dto"
	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/music"
	"github.com/lumenhq/lumen/internal/domain/news"
	"github.com/lumenhq/lumen/internal/domain/weather"
)

// Dependencies of DisplayHandler

type displayService interface {
	Weather(ctx context.Context) weather.Report
	Calendar(ctx context.Context) *displaydto.CalendarResponse
	Commute(ctx context.Context) *displaydto.CommuteResponse
	Summary(ctx context.Context) briefing.Summary
	FeastDay() displaydto.FeastDayResponse
	News(ctx context.Context) news.Headlines
	NowPlaying(ctx context.Context) music.NowPlaying
}

type weatherSettingsReader interface {
	GetWeather(ctx context.Context) (weather.Settings, error)
}

type enabledWidgetLister interface {
	ListEnabled(ctx context.Context) *widgetdto.WidgetsResponse
}
