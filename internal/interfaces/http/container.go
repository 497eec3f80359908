package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authApp "github.com/lumenhq/lumen/internal/application/auth"
	calendarApp "github.com/lumenhq/lumen/internal/application/calendar"
	commuteApp "github.com/lumenhq/lumen/internal/application/commute"
	displayApp "github.com/lumenhq/lumen/internal/application/display"
	mirrorApp "github.com/lumenhq/lumen/internal/application/mirror"
	settingApp "github.com/lumenhq/lumen/internal/application/setting"
	widgetApp "github.com/lumenhq/lumen/internal/application/widget"
	"github.com/lumenhq/lumen/internal/infrastructure/cache"
	"github.com/lumenhq/lumen/internal/infrastructure/config"
	"github.com/lumenhq/lumen/internal/infrastructure/pubsub"
	"github.com/lumenhq/lumen/internal/infrastructure/scheduler"
	"github.com/lumenhq/lumen/internal/interfaces/http/middleware"
	"github.com/lumenhq/lumen/internal/shared/goroutine"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// Container holds all infrastructure components, repositories, services,
// handlers and background jobs. It wires everything together and provides
// Shutdown() for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Adapter response cache, Redis-backed when Redis is available
	cache cache.Cache

	// Repositories
	repos *repositories

	// Application services
	mirrorService   *mirrorApp.ServiceDDD
	settingService  *settingApp.ServiceDDD
	widgetService   *widgetApp.ServiceDDD
	calendarService *calendarApp.ServiceDDD
	commuteService  *commuteApp.ServiceDDD
	displayService  *displayApp.ServiceDDD
	authService     *authApp.ServiceDDD

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware

	// Config version fan-out: hub for local subscribers, bus across instances
	versionHub  *pubsub.VersionHub
	versionBus  *pubsub.RedisVersionBus
	busCancel   context.CancelFunc
	busCancelMu sync.Mutex

	// Background jobs
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}
	utils.SetupBindingValidator()

	// Section 1: Infrastructure - Redis, cache, repositories, version fan-out
	c.initInfrastructure()

	// Section 2: Mirror - config version, heartbeats, activity
	c.initMirror()

	// Section 3: Settings & Auth - settings, widgets, feeds, routes, admin session
	c.initSettingsAndAuth()

	// Section 4: Display - adapters, fetchers, composition
	c.initDisplay()

	// Section 5: Scheduler - offline detection, cache warming
	c.initScheduler()

	// Section 6: Handlers and middlewares
	c.initHandlers()

	return c
}

// GetEngine returns the Gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Start launches the background work: the scheduler and the cross-instance
// version relay. It returns immediately.
func (c *Container) Start() {
	if c.versionBus != nil {
		ctx, cancel := context.WithCancel(context.Background())
		c.busCancelMu.Lock()
		c.busCancel = cancel
		c.busCancelMu.Unlock()

		goroutine.SafeGo(c.log, "version-bus", func() {
			if err := c.versionBus.Run(ctx); err != nil && ctx.Err() == nil {
				c.log.Errorw("version bus stopped", "error", err)
			}
		})
	}

	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and releases connections. Safe to call once
// the HTTP server has stopped accepting requests.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Warnw("failed to stop scheduler", "error", err)
		}
	}

	c.busCancelMu.Lock()
	if c.busCancel != nil {
		c.busCancel()
		c.busCancel = nil
	}
	c.busCancelMu.Unlock()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis client", "error", err)
		}
	}
}
