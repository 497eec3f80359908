package admin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingdto "github.com/lumenhq/lumen/internal/application/setting/dto"
	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/interfaces/http/handlers/testutil"
	"github.com/lumenhq/lumen/internal/shared/errors"
)

func TestSettingHandler_ListSettings_PassesCategory(t *testing.T) {
	svc := &mockSettingService{list: &settingdto.SettingsListResponse{Settings: []settingdto.SettingDTO{}}}
	handler := NewSettingHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/settings?category=news", nil)

	handler.ListSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "news", svc.lastQuery)
}

func TestSettingHandler_UpdateSettings(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockSettingService{}
		handler := NewSettingHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/settings", map[string]any{
			"settings": []map[string]any{{"key": "news.limit", "value": 5}},
		})
		testutil.SetAuthContext(c, "admin")

		handler.UpdateSettings(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.calls)
		assert.Equal(t, "admin", svc.lastUser)
		var resp testutil.SuccessBody
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("malformed body writes nothing", func(t *testing.T) {
		svc := &mockSettingService{}
		handler := NewSettingHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/settings", `{"settings": [`)

		handler.UpdateSettings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.calls)
		var resp testutil.ErrorBody
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Invalid request body", resp.Error)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &mockSettingService{err: errors.NewValidationError("Invalid setting key")}
		handler := NewSettingHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/settings", map[string]any{
			"settings": []map[string]any{{"key": "Bad Key", "value": "x"}},
		})

		handler.UpdateSettings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.ErrorBody
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Invalid setting key", resp.Error)
	})
}

func TestSettingHandler_UpdateWeather_AcceptsNumbers(t *testing.T) {
	svc := &mockSettingService{}
	handler := NewSettingHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/weather",
		`{"latitude": 41.88, "longitude": "-87.63", "location": "Chicago, IL", "units": "celsius"}`)

	handler.UpdateWeather(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, weather.Settings{
		Latitude:  "41.88",
		Longitude: "-87.63",
		Location:  "Chicago, IL",
		Units:     weather.UnitsCelsius,
	}, svc.weather)
}

func TestSettingHandler_UpdateWeather_InternalErrorIsGeneric(t *testing.T) {
	svc := &mockSettingService{err: errors.WrapInternal("Failed to save weather settings", assert.AnError)}
	handler := NewSettingHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/weather",
		`{"latitude": 41.88, "longitude": -87.63, "location": "Chicago, IL", "units": "celsius"}`)

	handler.UpdateWeather(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestSettingHandler_UpdateAISummary(t *testing.T) {
	svc := &mockSettingService{prefs: briefing.DefaultPreferences()}
	handler := NewSettingHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/ai-summary", `{"includeCommute": false, "tone": "concise"}`)

	handler.UpdateAISummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, false, resp["includeCommute"])
	assert.Equal(t, "concise", resp["tone"])
	assert.Equal(t, true, resp["includeWeather"])
}
