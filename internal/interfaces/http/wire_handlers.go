package http

import (
	"github.com/lumenhq/lumen/internal/interfaces/http/handlers"
	adminHandlers "github.com/lumenhq/lumen/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// Display
	displayHandler *handlers.DisplayHandler
	mirrorHandler  *handlers.MirrorHandler
	streamHandler  *handlers.VersionStreamHandler

	// Auth
	authHandler *handlers.AuthHandler

	// Admin
	settingHandler     *adminHandlers.SettingHandler
	calendarHandler    *adminHandlers.CalendarHandler
	commuteHandler     *adminHandlers.CommuteHandler
	widgetHandler      *adminHandlers.WidgetHandler
	adminMirrorHandler *adminHandlers.MirrorHandler
}

// ============================================================
// Section 6: Handlers and middlewares
// ============================================================

func (c *Container) initHandlers() {
	log := c.log

	c.hdlrs = &allHandlers{
		displayHandler: handlers.NewDisplayHandler(c.displayService, c.settingService, c.widgetService, log),
		mirrorHandler:  handlers.NewMirrorHandler(c.mirrorService, log),
		streamHandler:  handlers.NewVersionStreamHandler(c.mirrorService, c.versionHub, c.cfg.Server.AllowedOrigins, log),

		authHandler: handlers.NewAuthHandler(c.authService, c.cfg.Auth.Cookie, log),

		settingHandler:     adminHandlers.NewSettingHandler(c.settingService, log),
		calendarHandler:    adminHandlers.NewCalendarHandler(c.calendarService, log),
		commuteHandler:     adminHandlers.NewCommuteHandler(c.commuteService, log),
		widgetHandler:      adminHandlers.NewWidgetHandler(c.widgetService, log),
		adminMirrorHandler: adminHandlers.NewMirrorHandler(c.mirrorService, log),
	}
}
