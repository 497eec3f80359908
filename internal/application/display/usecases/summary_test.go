package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/services/markdown"
)

func newSummaryUseCase(t *testing.T, prefs briefing.Preferences, assistant Assistant, creds staticCredentials) *GetSummaryUseCase {
	t.Helper()
	log := logger.NewNop()
	forecaster := &mockForecaster{ForecastFunc: func(_ context.Context, s weather.Settings) (weather.Report, error) {
		return weather.Report{
			Current: weather.Current{Temperature: 61, Condition: "Partly Cloudy"},
			Daily:   []weather.Day{{High: 70, Low: 52}},
			Units:   s.Units,
		}, nil
	}}
	weatherUC := NewGetWeatherUseCase(staticWeather{settings: weather.DefaultSettings()}, forecaster, newFetcher(t), log)
	calendarUC := NewGetCalendarUseCase(newFeedRepo(t), &mockEventSource{}, newFetcher(t), 7, log)
	commuteUC := NewGetCommuteUseCase(newRouteRepo(t), &mockEstimator{}, creds, newFetcher(t), log)
	feastUC := NewGetFeastDayUseCase()
	weatherUC.now = fixedClock
	calendarUC.now = fixedClock
	commuteUC.now = fixedClock
	feastUC.now = fixedClock

	uc := NewGetSummaryUseCase(staticPreferences(prefs), weatherUC, calendarUC, commuteUC, feastUC,
		assistant, creds, markdown.NewMarkdownService(), newFetcher(t), log)
	uc.now = fixedClock
	return uc
}

func TestGetSummary_ComposedWithoutKey(t *testing.T) {
	assistant := &mockAssistant{}
	uc := newSummaryUseCase(t, briefing.DefaultPreferences(), assistant, staticCredentials{})

	got := uc.Execute(context.Background())
	assert.True(t, got.IsDemo)
	assert.Zero(t, assistant.calls.Load())
	assert.Contains(t, got.Summary, "Good morning")
	assert.Contains(t, got.Summary, "61°")
	assert.Contains(t, got.HTML, "<strong>Good morning!</strong>")
	assert.Equal(t, monday0700, got.GeneratedAt)
}

func TestGetSummary_FromAssistant(t *testing.T) {
	prefs := briefing.DefaultPreferences()
	prefs.IncludeWeather = false
	prefs.CustomPrompt = "Mention the dog."

	assistant := &mockAssistant{CompleteFunc: func(_ context.Context, key, system, user string) (string, error) {
		assert.Equal(t, "sk-test", key)
		assert.NotContains(t, user, "61°")
		assert.Contains(t, user, "Mention the dog.")
		return "Grab a **jacket** today.", nil
	}}
	uc := newSummaryUseCase(t, prefs, assistant, staticCredentials{setting.KeyAssistantAPIKey: "sk-test"})

	got := uc.Execute(context.Background())
	require.False(t, got.IsDemo)
	assert.Equal(t, "Grab a **jacket** today.", got.Summary)
	assert.True(t, strings.Contains(got.HTML, "<strong>jacket</strong>"))
	assert.EqualValues(t, 1, assistant.calls.Load())
}

func TestGetSummary_HTMLIsSanitized(t *testing.T) {
	assistant := &mockAssistant{CompleteFunc: func(context.Context, string, string, string) (string, error) {
		return `Hello <script>alert(1)</script> [link](https://example.com)`, nil
	}}
	uc := newSummaryUseCase(t, briefing.DefaultPreferences(), assistant, staticCredentials{setting.KeyAssistantAPIKey: "k"})

	got := uc.Execute(context.Background())
	assert.NotContains(t, got.HTML, "<script")
	assert.NotContains(t, got.HTML, "<a ")
}
