package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/interfaces/http/middleware"
	"github.com/lumenhq/lumen/internal/interfaces/http/routes"
)

// SetupRoutes installs the middleware chain and registers every route.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.Metrics())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	c.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.SetupDisplayRoutes(c.engine, &routes.DisplayRouteConfig{
		DisplayHandler: c.hdlrs.displayHandler,
		MirrorHandler:  c.hdlrs.mirrorHandler,
		StreamHandler:  c.hdlrs.streamHandler,
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
	})

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		SettingHandler:  c.hdlrs.settingHandler,
		CalendarHandler: c.hdlrs.calendarHandler,
		CommuteHandler:  c.hdlrs.commuteHandler,
		WidgetHandler:   c.hdlrs.widgetHandler,
		MirrorHandler:   c.hdlrs.adminMirrorHandler,
		AuthMiddleware:  c.authMiddleware,
	})
}
