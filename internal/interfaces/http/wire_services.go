package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	authApp "github.com/lumenhq/lumen/internal/application/auth"
	calendarApp "github.com/lumenhq/lumen/internal/application/calendar"
	commuteApp "github.com/lumenhq/lumen/internal/application/commute"
	displayApp "github.com/lumenhq/lumen/internal/application/display"
	mirrorApp "github.com/lumenhq/lumen/internal/application/mirror"
	settingApp "github.com/lumenhq/lumen/internal/application/setting"
	widgetApp "github.com/lumenhq/lumen/internal/application/widget"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/assistant"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/ical"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/openmeteo"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/rss"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/spotify"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/tomtom"
	infraAuth "github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/infrastructure/cache"
	"github.com/lumenhq/lumen/internal/infrastructure/config"
	"github.com/lumenhq/lumen/internal/infrastructure/pubsub"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/infrastructure/scheduler"
	"github.com/lumenhq/lumen/internal/interfaces/http/middleware"
	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
	shareddb "github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/services/markdown"
)

const (
	memoryCacheSize  = 512
	redisCachePrefix = "lumen:cache:"

	routingCacheTTL = 5 * time.Minute
	geocodeCacheTTL = time.Hour
)

// ============================================================
// Section 1: Infrastructure - Redis, cache, repositories, version fan-out
// ============================================================

func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	if c.redis != nil {
		c.cache = cache.NewRedisCache(c.redis, redisCachePrefix)
	} else {
		c.cache = cache.NewMemoryCache(memoryCacheSize)
	}

	c.repos = newRepositories(c.db, log)

	c.versionHub = pubsub.NewVersionHub(log.Named("version-hub"))
	if c.redis != nil {
		c.versionBus = pubsub.NewRedisVersionBus(c.redis, c.versionHub, log.Named("version-bus"))
	}
}

// initRedis connects to Redis when enabled. A mirror must keep working
// without it, so a failed connection degrades to in-process state.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("Redis disabled, using in-memory cache and local version hub")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		log.Warnw("failed to connect to Redis, falling back to in-memory state",
			"addr", cfg.Redis.GetAddr(),
			"error", err,
		)
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())
	return client
}

// versionPublisher prefers the Redis bus so other instances hear about bumps.
func (c *Container) versionPublisher() pubsub.VersionPublisher {
	if c.versionBus != nil {
		return c.versionBus
	}
	return c.versionHub
}

// ============================================================
// Section 2: Mirror - config version, heartbeats, activity
// ============================================================

func (c *Container) initMirror() {
	c.mirrorService = mirrorApp.NewServiceDDD(mirrorApp.Deps{
		TxManager:    shareddb.NewTransactionManager(c.db),
		VersionRepo:  c.repos.versionRepo,
		StateRepo:    c.repos.stateRepo,
		ActivityRepo: c.repos.activityRepo,
		Widgets:      c.repos.widgetRepo,
		Publisher:    c.versionPublisher(),
		OfflineAfter: c.cfg.Scheduler.OfflineAfter(),
		BuildTime:    c.cfg.Server.BuildTime,
	}, c.log)
}

// ============================================================
// Section 3: Settings & Auth - settings, widgets, feeds, routes, admin session
// ============================================================

func (c *Container) initSettingsAndAuth() {
	cfg := c.cfg
	log := c.log
	recorder := c.mirrorService.Recorder()

	c.settingService = settingApp.NewServiceDDD(c.repos.settingRepo, recorder, configuredCredentials(cfg), log)
	c.widgetService = widgetApp.NewServiceDDD(c.repos.widgetRepo, recorder, log)

	icalClient := ical.NewClient(cfg.Integrations.Calendar, log.Named("ical"))
	c.calendarService = calendarApp.NewServiceDDD(c.repos.feedRepo, recorder, icalClient, log)

	tomtomClient := tomtom.NewClient(cfg.Integrations.Routing, cfg.Integrations.Geocode, log.Named("tomtom"))
	geocodeFetcher := resilient.NewFetcher(resilient.Options{
		Name:    "geocode",
		Timeout: sharedConfig.Seconds(cfg.Integrations.Geocode.TimeoutSeconds, 8*time.Second),
		TTL:     geocodeCacheTTL,
		Cache:   c.cache,
	}, log)
	c.commuteService = commuteApp.NewServiceDDD(c.repos.routeRepo, recorder, tomtomClient, c.settingService, geocodeFetcher, log)

	jwtSvc := infraAuth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionExpDays)
	c.authService = authApp.NewServiceDDD(cfg.Auth, jwtSvc, log)
	c.authMiddleware = middleware.NewAuthMiddleware(c.authService, log)
}

// configuredCredentials maps credential setting keys to their config values,
// used when the admin has not stored an override.
func configuredCredentials(cfg *config.Config) map[string]string {
	return map[string]string{
		setting.KeyRoutingAPIKey:   cfg.Integrations.Routing.APIKey,
		setting.KeyGeocodeAPIKey:   cfg.Integrations.Geocode.APIKey,
		setting.KeyAssistantAPIKey: cfg.Integrations.Assistant.APIKey,
	}
}

// ============================================================
// Section 4: Display - adapters, fetchers, composition
// ============================================================

func (c *Container) initDisplay() {
	cfg := c.cfg
	log := c.log
	integrations := cfg.Integrations

	c.displayService = displayApp.NewServiceDDD(displayApp.Deps{
		FeedRepo:    c.repos.feedRepo,
		RouteRepo:   c.repos.routeRepo,
		Weather:     &weatherSettingsAdapter{settings: c.settingService},
		Preferences: &preferencesAdapter{settings: c.settingService},
		Settings:    c.settingService,
		Credentials: c.settingService,
		Forecaster:  openmeteo.NewClient(integrations.Weather, log.Named("openmeteo")),
		Events:      ical.NewClient(integrations.Calendar, log.Named("ical")),
		Travel:      tomtom.NewClient(integrations.Routing, integrations.Geocode, log.Named("tomtom")),
		Headlines:   rss.NewClient(integrations.News, log.Named("rss")),
		Playback:    spotify.NewClient(integrations.Spotify, log.Named("spotify")),
		Assistant:   assistant.NewClient(integrations.Assistant, log.Named("assistant")),
		Markdown:    markdown.NewMarkdownService(),
		Fetchers: displayApp.Fetchers{
			Weather: c.newFetcher("weather", integrations.Weather.TimeoutSeconds, 10*time.Second,
				sharedConfig.Minutes(integrations.Weather.CacheMinutes, 10*time.Minute)),
			Calendar: c.newFetcher("calendar", integrations.Calendar.TimeoutSeconds, 10*time.Second,
				sharedConfig.Minutes(integrations.Calendar.CacheMinutes, 5*time.Minute)),
			Routing: c.newFetcher("routing", integrations.Routing.TimeoutSeconds, 10*time.Second,
				routingCacheTTL),
			News: c.newFetcher("news", integrations.News.TimeoutSeconds, 10*time.Second,
				sharedConfig.Minutes(integrations.News.CacheMinutes, 15*time.Minute)),
			// Playback changes track by track; never served from cache.
			Spotify: c.newFetcher("spotify", integrations.Spotify.TimeoutSeconds, 5*time.Second, 0),
			Assistant: c.newFetcher("assistant", integrations.Assistant.TimeoutSeconds, 20*time.Second,
				sharedConfig.Minutes(integrations.Assistant.CacheMinutes, 30*time.Minute)),
		},
		LookaheadDays: integrations.Calendar.LookaheadDays,
		DefaultFeeds:  integrations.News.DefaultFeeds,
	}, log)
}

func (c *Container) newFetcher(name string, timeoutSeconds int, defTimeout, ttl time.Duration) *resilient.Fetcher {
	return resilient.NewFetcher(resilient.Options{
		Name:    name,
		Timeout: sharedConfig.Seconds(timeoutSeconds, defTimeout),
		TTL:     ttl,
		Cache:   c.cache,
	}, c.log)
}

// ============================================================
// Section 5: Scheduler - offline detection, cache warming
// ============================================================

func (c *Container) initScheduler() {
	if !c.cfg.Scheduler.Enabled {
		c.log.Infow("scheduler disabled")
		return
	}

	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		c.log.Errorw("failed to create scheduler, background jobs disabled", "error", err)
		return
	}

	if err := manager.RegisterOfflineDetector(c.mirrorService); err != nil {
		c.log.Errorw("failed to register offline detector", "error", err)
	}

	interval := sharedConfig.Minutes(c.cfg.Scheduler.WarmCacheMinutes, 0)
	if err := manager.RegisterCacheWarmer(c.displayService, interval); err != nil {
		c.log.Errorw("failed to register cache warmer", "error", err)
	}

	c.schedulerManager = manager
}
