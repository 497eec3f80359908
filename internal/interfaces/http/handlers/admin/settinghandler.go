package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/application/setting/dto"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

const invalidBody = "Invalid request body"

// SettingHandler handles generic settings, weather location and AI
// briefing preferences.
type SettingHandler struct {
	service settingService
	logger  logger.Interface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(service settingService, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		service: service,
		logger:  logger,
	}
}

// ListSettings returns settings, optionally limited to one category.
// Encrypted values are masked.
// @Summary List settings
// @Tags admin-settings
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} dto.SettingsListResponse
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/settings [get]
func (h *SettingHandler) ListSettings(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateSettings upserts a batch of settings
// @Summary Update settings
// @Tags admin-settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings batch"
// @Success 200 {object} utils.SuccessBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/settings [put]
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	if err := h.service.Update(c.Request.Context(), req, utils.CurrentUser(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

// @Summary Get weather location
// @Tags admin-settings
// @Produce json
// @Success 200 {object} weather.Settings
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/weather [get]
func (h *SettingHandler) GetWeather(c *gin.Context) {
	s, err := h.service.GetWeather(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, s)
}

// UpdateWeather stores the household location and units
// @Summary Update weather location
// @Tags admin-settings
// @Accept json
// @Produce json
// @Param request body dto.WeatherSettingsRequest true "Location and units"
// @Success 200 {object} weather.Settings
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/weather [put]
func (h *SettingHandler) UpdateWeather(c *gin.Context) {
	var req dto.WeatherSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update weather", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	s := req.ToDomain()
	if err := h.service.UpdateWeather(c.Request.Context(), s, utils.CurrentUser(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, s)
}

// @Summary Get briefing preferences
// @Tags admin-settings
// @Produce json
// @Success 200 {object} briefing.Preferences
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/ai-summary [get]
func (h *SettingHandler) GetAISummary(c *gin.Context) {
	prefs, err := h.service.GetAIPreferences(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, prefs)
}

// @Summary Update briefing preferences
// @Tags admin-settings
// @Accept json
// @Produce json
// @Param request body dto.AIPreferencesRequest true "Preferences"
// @Success 200 {object} briefing.Preferences
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/ai-summary [put]
func (h *SettingHandler) UpdateAISummary(c *gin.Context) {
	var req dto.AIPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ai summary", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	prefs, err := h.service.UpdateAIPreferences(c.Request.Context(), req, utils.CurrentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, prefs)
}
