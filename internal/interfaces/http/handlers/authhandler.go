package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/application/auth/dto"
	"github.com/lumenhq/lumen/internal/application/auth/usecases"
	"github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

type authService interface {
	Login(cmd usecases.LoginCommand) (*auth.Session, error)
	Verify(token string) (*auth.Claims, error)
	SessionExp() int
}

// AuthHandler manages the admin session cookie.
type AuthHandler struct {
	service authService
	cookie  config.CookieConfig
	logger  logger.Interface
}

func NewAuthHandler(service authService, cookie config.CookieConfig, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Login checks the admin credential and sets the session cookie
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin credential"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err, "ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	session, err := h.service.Login(usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookie, session.Token, h.service.SessionExp())
	expiresAt := session.ExpiresAt
	utils.SuccessResponse(c, http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		Username:      req.Username,
		ExpiresAt:     &expiresAt,
	})
}

// Logout clears the session cookie
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} utils.SuccessBody
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookie)
	utils.OKResponse(c)
}

// Session reports whether the caller holds a valid session
// @Summary Current admin session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /api/admin/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	token := utils.SessionToken(c)
	if token == "" {
		utils.SuccessResponse(c, http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}
	claims, err := h.service.Verify(token)
	if err != nil {
		utils.SuccessResponse(c, http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}
	var expiresAt *time.Time
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		expiresAt = &t
	}
	utils.SuccessResponse(c, http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		Username:      claims.Username,
		ExpiresAt:     expiresAt,
	})
}
