package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// DisplayHandler serves the widget payloads. Every read answers 200; an
// unavailable upstream shows up as demo data, never as an error.
type DisplayHandler struct {
	display  displayService
	location weatherSettingsReader
	widgets  enabledWidgetLister
	logger   logger.Interface
}

func NewDisplayHandler(display displayService, location weatherSettingsReader, widgets enabledWidgetLister, logger logger.Interface) *DisplayHandler {
	return &DisplayHandler{
		display:  display,
		location: location,
		widgets:  widgets,
		logger:   logger,
	}
}

// WeatherSettings returns the stored household location
// @Summary Weather location
// @Tags display
// @Produce json
// @Success 200 {object} weather.Settings
// @Failure 500 {object} utils.ErrorBody
// @Router /api/weather/settings [get]
func (h *DisplayHandler) WeatherSettings(c *gin.Context) {
	s, err := h.location.GetWeather(c.Request.Context())
	if err != nil {
		h.logger.Warnw("serving default weather settings", "error", err)
		s = weather.DefaultSettings()
	}
	utils.SuccessResponse(c, http.StatusOK, s)
}

// @Summary Current forecast
// @Tags display
// @Produce json
// @Success 200 {object} weather.Report
// @Router /api/weather [get]
func (h *DisplayHandler) Weather(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.display.Weather(c.Request.Context()))
}

// @Summary Upcoming events
// @Tags display
// @Produce json
// @Success 200 {object} displaydto.CalendarResponse
// @Router /api/calendar [get]
func (h *DisplayHandler) Calendar(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.display.Calendar(c.Request.Context()))
}

// @Summary Commute estimates
// @Tags display
// @Produce json
// @Success 200 {object} displaydto.CommuteResponse
// @Router /api/commute [get]
func (h *DisplayHandler) Commute(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.display.Commute(c.Request.Context()))
}

// @Summary Daily briefing
// @Tags display
// @Produce json
// @Success 200 {object} briefing.Summary
// @Router /api/summary [get]
func (h *DisplayHandler) Summary(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.display.Summary(c.Request.Context()))
}

// @Summary Feast day of today
// @Tags display
// @Produce json
// @Success 200 {object} displaydto.FeastDayResponse
// @Router /api/feast-day [get]
func (h *DisplayHandler) FeastDay(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.display.FeastDay())
}

// @Summary News headlines
// @Tags display
// @Produce json
// @Success 200 {object} news.Headlines
// @Router /api/news [get]
func (h *DisplayHandler) News(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.display.News(c.Request.Context()))
}

// @Summary Now playing
// @Tags display
// @Produce json
// @Success 200 {object} music.NowPlaying
// @Router /api/spotify/now-playing [get]
func (h *DisplayHandler) NowPlaying(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	utils.SuccessResponse(c, http.StatusOK, h.display.NowPlaying(c.Request.Context()))
}

// Widgets returns the enabled widgets in display order
// @Summary Enabled widgets
// @Tags display
// @Produce json
// @Success 200 {object} widgetdto.WidgetsResponse
// @Router /api/widgets [get]
func (h *DisplayHandler) Widgets(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.widgets.ListEnabled(c.Request.Context()))
}
