package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/application/calendar/dto"
	"github.com/lumenhq/lumen/internal/shared/id"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

const calendarNotFound = "Calendar not found"

// CalendarHandler manages subscribed iCal feeds
type CalendarHandler struct {
	service calendarService
	logger  logger.Interface
}

func NewCalendarHandler(service calendarService, logger logger.Interface) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary List calendar feeds
// @Tags admin-calendar
// @Produce json
// @Success 200 {object} dto.FeedsResponse
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/calendar [get]
func (h *CalendarHandler) ListFeeds(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Create calendar feed
// @Tags admin-calendar
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedRequest true "Feed"
// @Success 201 {object} dto.FeedDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/calendar [post]
func (h *CalendarHandler) CreateFeed(c *gin.Context) {
	var req dto.CreateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create calendar feed", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	feed, err := h.service.Create(c.Request.Context(), req, utils.CurrentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, feed)
}

// @Summary Update calendar feed
// @Tags admin-calendar
// @Accept json
// @Produce json
// @Param id path string true "Feed ID"
// @Param request body dto.UpdateFeedRequest true "Changed fields"
// @Success 200 {object} dto.FeedDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/calendar/{id} [put]
func (h *CalendarHandler) UpdateFeed(c *gin.Context) {
	feedID, err := utils.ParseIDParam(c, "id", id.PrefixCalendarFeed, calendarNotFound)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update calendar feed", "id", feedID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	feed, err := h.service.Update(c.Request.Context(), feedID, req, utils.CurrentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, feed)
}

// @Summary Delete calendar feed
// @Tags admin-calendar
// @Produce json
// @Param id path string true "Feed ID"
// @Success 200 {object} utils.SuccessBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/calendar/{id} [delete]
func (h *CalendarHandler) DeleteFeed(c *gin.Context) {
	feedID, err := utils.ParseIDParam(c, "id", id.PrefixCalendarFeed, calendarNotFound)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), feedID, utils.CurrentUser(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

// ValidateFeed fetches a URL and reports whether it parses as iCalendar.
// An unreachable or malformed feed is a 200 with valid=false.
// @Summary Validate calendar feed
// @Tags admin-calendar
// @Accept json
// @Produce json
// @Param request body dto.ValidateFeedRequest true "Feed URL"
// @Success 200 {object} dto.ValidateFeedResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/calendar/validate [post]
func (h *CalendarHandler) ValidateFeed(c *gin.Context) {
	var req dto.ValidateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	result, err := h.service.Validate(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
