package display

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/display/dto"
	"github.com/lumenhq/lumen/internal/application/display/usecases"
	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/music"
	"github.com/lumenhq/lumen/internal/domain/news"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// Fetchers holds one resilient fetcher per upstream adapter.
type Fetchers struct {
	Weather   *resilient.Fetcher
	Calendar  *resilient.Fetcher
	Routing   *resilient.Fetcher
	News      *resilient.Fetcher
	Spotify   *resilient.Fetcher
	Assistant *resilient.Fetcher
}

type Deps struct {
	FeedRepo      calendar.Repository
	RouteRepo     commute.Repository
	Weather       usecases.WeatherSettingsReader
	Preferences   usecases.PreferencesReader
	Settings      usecases.CategoryReader
	Credentials   usecases.CredentialSource
	Forecaster    usecases.Forecaster
	Events        usecases.EventSource
	Travel        usecases.TravelEstimator
	Headlines     usecases.HeadlineSource
	Playback      usecases.PlaybackSource
	Assistant     usecases.Assistant
	Markdown      usecases.MarkdownRenderer
	Fetchers      Fetchers
	LookaheadDays int
	DefaultFeeds  []string
}

// ServiceDDD serves every public display widget. None of its reads fail;
// unavailable upstreams yield demo-flagged payloads.
type ServiceDDD struct {
	weatherUC    *usecases.GetWeatherUseCase
	calendarUC   *usecases.GetCalendarUseCase
	commuteUC    *usecases.GetCommuteUseCase
	summaryUC    *usecases.GetSummaryUseCase
	feastUC      *usecases.GetFeastDayUseCase
	newsUC       *usecases.GetNewsUseCase
	nowPlayingUC *usecases.GetNowPlayingUseCase
}

func NewServiceDDD(deps Deps, logger logger.Interface) *ServiceDDD {
	weatherUC := usecases.NewGetWeatherUseCase(deps.Weather, deps.Forecaster, deps.Fetchers.Weather, logger)
	calendarUC := usecases.NewGetCalendarUseCase(deps.FeedRepo, deps.Events, deps.Fetchers.Calendar, deps.LookaheadDays, logger)
	commuteUC := usecases.NewGetCommuteUseCase(deps.RouteRepo, deps.Travel, deps.Credentials, deps.Fetchers.Routing, logger)
	feastUC := usecases.NewGetFeastDayUseCase()

	return &ServiceDDD{
		weatherUC:  weatherUC,
		calendarUC: calendarUC,
		commuteUC:  commuteUC,
		feastUC:    feastUC,
		summaryUC: usecases.NewGetSummaryUseCase(
			deps.Preferences, weatherUC, calendarUC, commuteUC, feastUC,
			deps.Assistant, deps.Credentials, deps.Markdown, deps.Fetchers.Assistant, logger,
		),
		newsUC:       usecases.NewGetNewsUseCase(deps.Settings, deps.Headlines, deps.Fetchers.News, deps.DefaultFeeds, logger),
		nowPlayingUC: usecases.NewGetNowPlayingUseCase(deps.Playback, deps.Fetchers.Spotify),
	}
}

func (s *ServiceDDD) Weather(ctx context.Context) weather.Report {
	return s.weatherUC.Execute(ctx)
}

func (s *ServiceDDD) Calendar(ctx context.Context) *dto.CalendarResponse {
	return s.calendarUC.Execute(ctx)
}

func (s *ServiceDDD) Commute(ctx context.Context) *dto.CommuteResponse {
	return s.commuteUC.Execute(ctx)
}

func (s *ServiceDDD) Summary(ctx context.Context) briefing.Summary {
	return s.summaryUC.Execute(ctx)
}

func (s *ServiceDDD) FeastDay() dto.FeastDayResponse {
	return s.feastUC.Execute()
}

func (s *ServiceDDD) News(ctx context.Context) news.Headlines {
	return s.newsUC.Execute(ctx)
}

func (s *ServiceDDD) NowPlaying(ctx context.Context) music.NowPlaying {
	return s.nowPlayingUC.Execute(ctx)
}

// Warm prefetches the widgets whose upstreams are slowest so the display
// reads from cache.
func (s *ServiceDDD) Warm(ctx context.Context) {
	s.weatherUC.Execute(ctx)
	s.newsUC.Execute(ctx)
}
