package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/application/widget/dto"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

type WidgetHandler struct {
	service widgetService
	logger  logger.Interface
}

func NewWidgetHandler(service widgetService, logger logger.Interface) *WidgetHandler {
	return &WidgetHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary List widgets
// @Tags admin-widgets
// @Produce json
// @Success 200 {object} dto.WidgetsResponse
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/widgets [get]
func (h *WidgetHandler) ListWidgets(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateWidgets applies a bulk patch and returns the full widget list
// @Summary Update widgets
// @Tags admin-widgets
// @Accept json
// @Produce json
// @Param request body dto.UpdateWidgetsRequest true "Widget patches"
// @Success 200 {object} dto.WidgetsResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/widgets [put]
func (h *WidgetHandler) UpdateWidgets(c *gin.Context) {
	var req dto.UpdateWidgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update widgets", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	result, err := h.service.Update(c.Request.Context(), req, utils.CurrentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
