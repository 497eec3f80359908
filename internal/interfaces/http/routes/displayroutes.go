package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/interfaces/http/handlers"
)

// DisplayRouteConfig holds the configuration for the public display routes
type DisplayRouteConfig struct {
	DisplayHandler *handlers.DisplayHandler
	MirrorHandler  *handlers.MirrorHandler
	StreamHandler  *handlers.VersionStreamHandler
}

// SetupDisplayRoutes configures the unauthenticated endpoints the display polls
func SetupDisplayRoutes(engine *gin.Engine, config *DisplayRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/config-version", config.MirrorHandler.ConfigVersion)
		api.GET("/config-version/stream", config.StreamHandler.Stream)
		api.GET("/version", config.MirrorHandler.Version)
		api.POST("/mirror/heartbeat", config.MirrorHandler.Heartbeat)

		api.GET("/widgets", config.DisplayHandler.Widgets)

		// Register /weather/settings before /weather so the static path wins
		api.GET("/weather/settings", config.DisplayHandler.WeatherSettings)
		api.GET("/weather", config.DisplayHandler.Weather)
		api.GET("/calendar", config.DisplayHandler.Calendar)
		api.GET("/commute", config.DisplayHandler.Commute)
		api.GET("/summary", config.DisplayHandler.Summary)
		api.GET("/feast-day", config.DisplayHandler.FeastDay)
		api.GET("/news", config.DisplayHandler.News)
		api.GET("/spotify/now-playing", config.DisplayHandler.NowPlaying)
	}
}
