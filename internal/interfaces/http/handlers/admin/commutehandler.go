package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/application/commute/dto"
	"github.com/lumenhq/lumen/internal/shared/id"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

const routeNotFound = "Commute route not found"

// CommuteHandler manages commute routes and the place search used to
// pick their endpoints
type CommuteHandler struct {
	service commuteService
	logger  logger.Interface
}

func NewCommuteHandler(service commuteService, logger logger.Interface) *CommuteHandler {
	return &CommuteHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary List commute routes
// @Tags admin-commute
// @Produce json
// @Success 200 {object} dto.RoutesResponse
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/commute [get]
func (h *CommuteHandler) ListRoutes(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// @Summary Create commute route
// @Tags admin-commute
// @Accept json
// @Produce json
// @Param request body dto.CreateRouteRequest true "Route"
// @Success 201 {object} dto.RouteDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/commute [post]
func (h *CommuteHandler) CreateRoute(c *gin.Context) {
	var req dto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create commute route", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	route, err := h.service.Create(c.Request.Context(), req, utils.CurrentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, route)
}

// @Summary Update commute route
// @Tags admin-commute
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body dto.UpdateRouteRequest true "Changed fields"
// @Success 200 {object} dto.RouteDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/commute/{id} [put]
func (h *CommuteHandler) UpdateRoute(c *gin.Context) {
	routeID, err := utils.ParseIDParam(c, "id", id.PrefixCommuteRoute, routeNotFound)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update commute route", "id", routeID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, invalidBody)
		return
	}

	route, err := h.service.Update(c.Request.Context(), routeID, req, utils.CurrentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, route)
}

// @Summary Delete commute route
// @Tags admin-commute
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.SuccessBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/admin/commute/{id} [delete]
func (h *CommuteHandler) DeleteRoute(c *gin.Context) {
	routeID, err := utils.ParseIDParam(c, "id", id.PrefixCommuteRoute, routeNotFound)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), routeID, utils.CurrentUser(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

// SearchPlaces geocodes a free-text query
// @Summary Search places
// @Tags admin-commute
// @Produce json
// @Param q query string true "Free-text place"
// @Success 200 {object} dto.SearchPlacesResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/geocode/search [get]
func (h *CommuteHandler) SearchPlaces(c *gin.Context) {
	result, err := h.service.SearchPlaces(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
