package admin

import (
	"context"

	calendardto "github.com/lumenhq/lumen/internal/application/calendar/dto"
	commutedto "github.com/lumenhq/lumen/internal/application/commute/dto"
	settingdto "github.com/lumenhq/lumen/internal/application/setting/dto"
	widgetdto "github.com/lumenhq/lumen/internal/application/widget/dto"
	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/weather"
)

// =====================================================================
// Mock services
// =====================================================================

type mockSettingService struct {
	list      *settingdto.SettingsListResponse
	weather   weather.Settings
	prefs     briefing.Preferences
	err       error
	calls     int
	lastUser  string
	lastQuery string
}

func (m *mockSettingService) List(ctx context.Context, category string) (*settingdto.SettingsListResponse, error) {
	m.lastQuery = category
	return m.list, m.err
}

func (m *mockSettingService) Update(ctx context.Context, req settingdto.UpdateSettingsRequest, userID string) error {
	m.calls++
	m.lastUser = userID
	return m.err
}

func (m *mockSettingService) GetWeather(ctx context.Context) (weather.Settings, error) {
	return m.weather, m.err
}

func (m *mockSettingService) UpdateWeather(ctx context.Context, s weather.Settings, userID string) error {
	m.calls++
	m.lastUser = userID
	m.weather = s
	return m.err
}

func (m *mockSettingService) GetAIPreferences(ctx context.Context) (briefing.Preferences, error) {
	return m.prefs, m.err
}

func (m *mockSettingService) UpdateAIPreferences(ctx context.Context, req settingdto.AIPreferencesRequest, userID string) (briefing.Preferences, error) {
	m.calls++
	m.lastUser = userID
	if m.err != nil {
		return briefing.Preferences{}, m.err
	}
	m.prefs = req.Apply(m.prefs)
	return m.prefs, nil
}

type mockCalendarService struct {
	feed     *calendardto.FeedDTO
	validate *calendardto.ValidateFeedResponse
	err      error
	calls    int
	lastID   string
}

func (m *mockCalendarService) List(ctx context.Context) (*calendardto.FeedsResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &calendardto.FeedsResponse{Feeds: []calendardto.FeedDTO{}}, nil
}

func (m *mockCalendarService) Create(ctx context.Context, req calendardto.CreateFeedRequest, userID string) (*calendardto.FeedDTO, error) {
	m.calls++
	return m.feed, m.err
}

func (m *mockCalendarService) Update(ctx context.Context, id string, req calendardto.UpdateFeedRequest, userID string) (*calendardto.FeedDTO, error) {
	m.calls++
	m.lastID = id
	return m.feed, m.err
}

func (m *mockCalendarService) Delete(ctx context.Context, id, userID string) error {
	m.calls++
	m.lastID = id
	return m.err
}

func (m *mockCalendarService) Validate(ctx context.Context, req calendardto.ValidateFeedRequest) (*calendardto.ValidateFeedResponse, error) {
	return m.validate, m.err
}

type mockCommuteService struct {
	route     *commutedto.RouteDTO
	places    *commutedto.SearchPlacesResponse
	err       error
	calls     int
	lastID    string
	lastQuery string
}

func (m *mockCommuteService) List(ctx context.Context) (*commutedto.RoutesResponse, error) {
	return &commutedto.RoutesResponse{Routes: []commutedto.RouteDTO{}}, m.err
}

func (m *mockCommuteService) Create(ctx context.Context, req commutedto.CreateRouteRequest, userID string) (*commutedto.RouteDTO, error) {
	m.calls++
	return m.route, m.err
}

func (m *mockCommuteService) Update(ctx context.Context, id string, req commutedto.UpdateRouteRequest, userID string) (*commutedto.RouteDTO, error) {
	m.calls++
	m.lastID = id
	return m.route, m.err
}

func (m *mockCommuteService) Delete(ctx context.Context, id, userID string) error {
	m.calls++
	m.lastID = id
	return m.err
}

func (m *mockCommuteService) SearchPlaces(ctx context.Context, query string) (*commutedto.SearchPlacesResponse, error) {
	m.lastQuery = query
	return m.places, m.err
}

type mockWidgetService struct {
	result *widgetdto.WidgetsResponse
	err    error
	calls  int
}

func (m *mockWidgetService) List(ctx context.Context) (*widgetdto.WidgetsResponse, error) {
	return m.result, m.err
}

func (m *mockWidgetService) Update(ctx context.Context, req widgetdto.UpdateWidgetsRequest, userID string) (*widgetdto.WidgetsResponse, error) {
	m.calls++
	return m.result, m.err
}
