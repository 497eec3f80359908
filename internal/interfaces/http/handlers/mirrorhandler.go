package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/application/mirror/dto"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// MirrorHandler serves the endpoints the display polls. None of them
// answers with a non-200 status.
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

// ConfigVersion returns the current config version
// @Summary Config version
// @Tags mirror
// @Produce json
// @Success 200 {object} mirror.VersionView
// @Router /api/config-version [get]
func (h *MirrorHandler) ConfigVersion(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	utils.SuccessResponse(c, http.StatusOK, h.service.GetConfigVersion(c.Request.Context()))
}

// Version returns the build identity the display compares across polls
// @Summary Build identity
// @Tags mirror
// @Produce json
// @Success 200 {object} dto.BuildInfoResponse
// @Router /api/version [get]
func (h *MirrorHandler) Version(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	utils.SuccessResponse(c, http.StatusOK, h.service.BuildInfo())
}

// Heartbeat records display liveness gauges
// @Summary Display heartbeat
// @Tags mirror
// @Accept json
// @Produce json
// @Param request body mirror.Heartbeat false "Host gauges"
// @Success 200 {object} dto.HeartbeatResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /api/mirror/heartbeat [post]
func (h *MirrorHandler) Heartbeat(c *gin.Context) {
	// An empty body is a bare liveness ping.
	var hb mirror.Heartbeat
	if err := c.ShouldBindJSON(&hb); err != nil && !stderrors.Is(err, io.EOF) {
		h.logger.Warnw("invalid heartbeat body", "error", err, "ip", c.ClientIP())
		utils.SuccessResponse(c, http.StatusOK, dto.HeartbeatResponse{Success: false})
		return
	}

	ok := h.service.RecordHeartbeat(c.Request.Context(), hb)
	utils.SuccessResponse(c, http.StatusOK, dto.HeartbeatResponse{Success: ok})
}
