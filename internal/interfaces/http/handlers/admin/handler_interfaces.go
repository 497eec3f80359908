// Package admin provides HTTP handlers for administrative operations.
package admin

import (
	"context"

	calendardto "github.com/lumenhq/lumen/internal/application/calendar/dto"
	commutedto "github.com/lumenhq/lumen/internal/application/commute/dto"
	mirrordto "github.com/lumenhq/lumen/internal/application/mirror/dto"
	settingdto "github.com/lumenhq/lumen/internal/application/setting/dto"
	widgetdto "github.com/lumenhq/lumen/internal/application/widget/dto"
	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/weather"
)

type settingService interface {
	List(ctx context.Context, category string) (*settingdto.SettingsListResponse, error)
	Update(ctx context.Context, req settingdto.UpdateSettingsRequest, userID string) error
	GetWeather(ctx context.Context) (weather.Settings, error)
	UpdateWeather(ctx context.Context, settings weather.Settings, userID string) error
	GetAIPreferences(ctx context.Context) (briefing.Preferences, error)
	UpdateAIPreferences(ctx context.Context, req settingdto.AIPreferencesRequest, userID string) (briefing.Preferences, error)
}

type calendarService interface {
	List(ctx context.Context) (*calendardto.FeedsResponse, error)
	Create(ctx context.Context, req calendardto.CreateFeedRequest, userID string) (*calendardto.FeedDTO, error)
	Update(ctx context.Context, id string, req calendardto.UpdateFeedRequest, userID string) (*calendardto.FeedDTO, error)
	Delete(ctx context.Context, id, userID string) error
	Validate(ctx context.Context, req calendardto.ValidateFeedRequest) (*calendardto.ValidateFeedResponse, error)
}

type commuteService interface {
	List(ctx context.Context) (*commutedto.RoutesResponse, error)
	Create(ctx context.Context, req commutedto.CreateRouteRequest, userID string) (*commutedto.RouteDTO, error)
	Update(ctx context.Context, id string, req commutedto.UpdateRouteRequest, userID string) (*commutedto.RouteDTO, error)
	Delete(ctx context.Context, id, userID string) error
	SearchPlaces(ctx context.Context, query string) (*commutedto.SearchPlacesResponse, error)
}

type widgetService interface {
	List(ctx context.Context) (*widgetdto.WidgetsResponse, error)
	Update(ctx context.Context, req widgetdto.UpdateWidgetsRequest, userID string) (*widgetdto.WidgetsResponse, error)
}

type mirrorService interface {
	GetStatus(ctx context.Context) (*mirrordto.StatusResponse, error)
	Refresh(ctx context.Context, userID string) error
}
