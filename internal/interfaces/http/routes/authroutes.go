package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds the configuration for admin session routes
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures login, logout and session lookup. They sit
// beside the admin group and need no session themselves.
func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/admin")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.GET("/session", config.AuthHandler.Session)
	}
}
