package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

type MirrorHandler struct {
	service mirrorService
	logger  logger.Interface
}

func NewMirrorHandler(service mirrorService, logger logger.Interface) *MirrorHandler {
	return &MirrorHandler{
		service: service,
		logger:  logger,
	}
}

// Status reports display liveness, the config version and recent activity
// @Summary Mirror status
// @Tags admin-mirror
// @Produce json
// @Success 200 {object} mirrordto.StatusResponse
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/mirror/status [get]
func (h *MirrorHandler) Status(c *gin.Context) {
	result, err := h.service.GetStatus(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// Refresh bumps the config version so the display reloads
// @Summary Force display refresh
// @Tags admin-mirror
// @Produce json
// @Success 200 {object} utils.SuccessBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/mirror/refresh [post]
func (h *MirrorHandler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context(), utils.CurrentUser(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, "Refresh requested")
}
