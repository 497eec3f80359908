package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Integrations sharedConfig.IntegrationsConfig `mapstructure:"integrations"`
	Scheduler    sharedConfig.SchedulerConfig    `mapstructure:"scheduler"`
	Location     sharedConfig.LocationConfig     `mapstructure:"location"`
}

// Load loads configuration from file and environment variables.
// A missing config file is not an error; defaults and LUMEN_* variables still apply.
func Load(env string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("LUMEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.build_time", "")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "lumen.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "lumen")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "lumen")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.admin.username", "admin")
	v.SetDefault("auth.admin.password_hash", "")
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.session_exp_days", 7)
	v.SetDefault("auth.cookie.domain", "")
	v.SetDefault("auth.cookie.path", "/")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.cookie.same_site", "Lax")
	v.SetDefault("auth.bcrypt_cost", 12)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Integration defaults
	v.SetDefault("integrations.weather.base_url", "https://api.open-meteo.com")
	v.SetDefault("integrations.weather.timeout_seconds", 10)
	v.SetDefault("integrations.weather.cache_minutes", 10)
	v.SetDefault("integrations.routing.base_url", "https://api.tomtom.com")
	v.SetDefault("integrations.routing.api_key", "")
	v.SetDefault("integrations.routing.timeout_seconds", 10)
	v.SetDefault("integrations.geocode.base_url", "https://api.tomtom.com")
	v.SetDefault("integrations.geocode.api_key", "")
	v.SetDefault("integrations.geocode.timeout_seconds", 8)
	v.SetDefault("integrations.assistant.base_url", "https://api.openai.com/v1")
	v.SetDefault("integrations.assistant.api_key", "")
	v.SetDefault("integrations.assistant.model", "gpt-4o-mini")
	v.SetDefault("integrations.assistant.timeout_seconds", 20)
	v.SetDefault("integrations.assistant.cache_minutes", 30)
	v.SetDefault("integrations.spotify.client_id", "")
	v.SetDefault("integrations.spotify.client_secret", "")
	v.SetDefault("integrations.spotify.refresh_token", "")
	v.SetDefault("integrations.spotify.api_base_url", "https://api.spotify.com/v1")
	v.SetDefault("integrations.spotify.token_url", "https://accounts.spotify.com/api/token")
	v.SetDefault("integrations.spotify.timeout_seconds", 5)
	v.SetDefault("integrations.news.default_feeds", []string{"https://feeds.npr.org/1001/rss.xml"})
	v.SetDefault("integrations.news.timeout_seconds", 10)
	v.SetDefault("integrations.news.cache_minutes", 15)
	v.SetDefault("integrations.calendar.timeout_seconds", 10)
	v.SetDefault("integrations.calendar.lookahead_days", 7)
	v.SetDefault("integrations.calendar.cache_minutes", 5)

	// Scheduler defaults
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.offline_after_seconds", 120)
	v.SetDefault("scheduler.warm_cache_minutes", 10)

	// Location defaults
	v.SetDefault("location.timezone", "America/New_York")
}
