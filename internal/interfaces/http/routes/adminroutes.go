package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/lumenhq/lumen/internal/interfaces/http/handlers/admin"
	"github.com/lumenhq/lumen/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds the configuration for admin routes
type AdminRouteConfig struct {
	SettingHandler  *adminHandlers.SettingHandler
	CalendarHandler *adminHandlers.CalendarHandler
	CommuteHandler  *adminHandlers.CommuteHandler
	WidgetHandler   *adminHandlers.WidgetHandler
	MirrorHandler   *adminHandlers.MirrorHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin portal API. Every route requires a session.
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(config.AuthMiddleware.RequireAuth())
	{
		admin.GET("/settings", config.SettingHandler.ListSettings)
		admin.PUT("/settings", config.SettingHandler.UpdateSettings)
		admin.GET("/weather", config.SettingHandler.GetWeather)
		admin.PUT("/weather", config.SettingHandler.UpdateWeather)
		admin.GET("/ai-summary", config.SettingHandler.GetAISummary)
		admin.PUT("/ai-summary", config.SettingHandler.UpdateAISummary)

		// Specific paths BEFORE parameterized paths
		admin.POST("/calendar/validate", config.CalendarHandler.ValidateFeed)
		admin.GET("/calendar", config.CalendarHandler.ListFeeds)
		admin.POST("/calendar", config.CalendarHandler.CreateFeed)
		admin.PUT("/calendar/:id", config.CalendarHandler.UpdateFeed)
		admin.DELETE("/calendar/:id", config.CalendarHandler.DeleteFeed)

		admin.GET("/commute", config.CommuteHandler.ListRoutes)
		admin.POST("/commute", config.CommuteHandler.CreateRoute)
		admin.PUT("/commute/:id", config.CommuteHandler.UpdateRoute)
		admin.DELETE("/commute/:id", config.CommuteHandler.DeleteRoute)
		admin.GET("/geocode/search", config.CommuteHandler.SearchPlaces)

		admin.GET("/widgets", config.WidgetHandler.ListWidgets)
		admin.PUT("/widgets", config.WidgetHandler.UpdateWidgets)

		admin.GET("/mirror/status", config.MirrorHandler.Status)
		admin.POST("/mirror/refresh", config.MirrorHandler.Refresh)
	}
}
